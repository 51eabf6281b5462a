// Package order defines the order data model and the immutable session
// repository the search pipeline reads from.
package order

import (
	"fmt"
	"regexp"
	"time"
)

// Status is the fulfillment state of an order. The set is closed; anything
// else is rejected at the repository boundary.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// AllStatuses returns the statuses in display order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Label returns the human-readable label used for group headers.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// ParseStatus normalizes a raw status string. ok is false for values outside
// the closed set.
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	if s.Valid() {
		return s, true
	}
	return "", false
}

// Order is a single purchase order. Orders are immutable once generated;
// every field is fixed for the lifetime of the session.
type Order struct {
	ID            string
	StoreName     string
	Status        Status
	PaymentAmount float64
	ClientCount   int
	Items         int
	Timestamp     time.Time
}

var idPattern = regexp.MustCompile(`^ORD-\d{4}$`)

// Validate checks the field domains. A failure here means the collaborator
// that produced the order handed us malformed data.
func (o Order) Validate() error {
	if !idPattern.MatchString(o.ID) {
		return fmt.Errorf("order id %q: want format ORD-####", o.ID)
	}
	if o.StoreName == "" {
		return fmt.Errorf("order %s: empty store name", o.ID)
	}
	if !o.Status.Valid() {
		return fmt.Errorf("order %s: unknown status %q", o.ID, o.Status)
	}
	if o.PaymentAmount < 0 {
		return fmt.Errorf("order %s: negative payment amount %.2f", o.ID, o.PaymentAmount)
	}
	if o.ClientCount < 1 || o.ClientCount > 4 {
		return fmt.Errorf("order %s: client count %d outside [1,4]", o.ID, o.ClientCount)
	}
	if o.Items < 1 {
		return fmt.Errorf("order %s: item count %d below 1", o.ID, o.Items)
	}
	return nil
}
