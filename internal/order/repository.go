package order

import (
	"fmt"
	"sort"
)

// Repository holds the fixed working set of orders for one session. It is
// populated once and read-only afterwards; there are no insert, update, or
// delete operations.
type Repository struct {
	orders []Order
}

// NewRepository validates the supplied orders and freezes them as the
// session snapshot, sorted by payment amount descending. Duplicate IDs and
// field-domain violations are caller errors and are rejected.
func NewRepository(orders []Order) (*Repository, error) {
	seen := make(map[string]struct{}, len(orders))
	snapshot := make([]Order, len(orders))
	copy(snapshot, orders)

	for _, o := range snapshot {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("invalid order: %w", err)
		}
		if _, dup := seen[o.ID]; dup {
			return nil, fmt.Errorf("duplicate order id %s", o.ID)
		}
		seen[o.ID] = struct{}{}
	}

	// Default presentation order when no query is active.
	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].PaymentAmount > snapshot[j].PaymentAmount
	})

	return &Repository{orders: snapshot}, nil
}

// Orders returns a copy of the snapshot so callers cannot mutate the
// repository's working set.
func (r *Repository) Orders() []Order {
	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out
}

// Len returns the number of orders in the snapshot.
func (r *Repository) Len() int {
	return len(r.orders)
}
