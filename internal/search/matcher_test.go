package search

import (
	"testing"
	"time"

	"orderscope/internal/order"
)

func testOrders() []order.Order {
	ts := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	return []order.Order{
		{ID: "ORD-0003", StoreName: "Walmart", Status: order.StatusInProgress, PaymentAmount: 200, ClientCount: 1, Items: 2, Timestamp: ts},
		{ID: "ORD-0001", StoreName: "Walmart", Status: order.StatusPending, PaymentAmount: 120, ClientCount: 2, Items: 4, Timestamp: ts},
		{ID: "ORD-0002", StoreName: "Target", Status: order.StatusCompleted, PaymentAmount: 80, ClientCount: 1, Items: 1, Timestamp: ts},
	}
}

func builtMatcher() *Matcher {
	m := NewMatcher(DefaultSensitivity, DefaultMinQueryLength)
	m.Build(testOrders())
	return m
}

func TestBuild_IndexesEveryOrder(t *testing.T) {
	m := builtMatcher()
	if m.Len() != len(testOrders()) {
		t.Errorf("Len = %d, want %d", m.Len(), len(testOrders()))
	}
}

func TestSearch_TypoTolerance(t *testing.T) {
	m := builtMatcher()

	results := m.Search("Walmar")
	if len(results) != 2 {
		t.Fatalf("Expected 2 matches for 'Walmar', got %d", len(results))
	}
	for _, o := range results {
		if o.StoreName != "Walmart" {
			t.Errorf("Unexpected match: %s (%s)", o.ID, o.StoreName)
		}
	}

	if got := m.Search("Zzzzz"); len(got) != 0 {
		t.Errorf("Expected no matches for 'Zzzzz', got %d", len(got))
	}
}

func TestSearch_TiesKeepRepositoryOrder(t *testing.T) {
	m := builtMatcher()

	results := m.Search("Walmar")
	if len(results) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(results))
	}
	// Both Walmart orders score identically; index order (payment
	// descending) breaks the tie.
	if results[0].ID != "ORD-0003" || results[1].ID != "ORD-0001" {
		t.Errorf("Expected [ORD-0003 ORD-0001], got [%s %s]", results[0].ID, results[1].ID)
	}
}

func TestSearch_MatchesOrderID(t *testing.T) {
	m := builtMatcher()

	results := m.Search("ORD-0002")
	if len(results) == 0 {
		t.Fatal("Expected a match for exact id query")
	}
	if results[0].ID != "ORD-0002" {
		t.Errorf("Expected ORD-0002 first, got %s", results[0].ID)
	}
}

func TestSearch_ExactMatchRanksFirst(t *testing.T) {
	m := builtMatcher()

	results := m.Search("Walmart")
	if len(results) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(results))
	}
	if results[0].ID != "ORD-0003" {
		t.Errorf("Expected ORD-0003 first, got %s", results[0].ID)
	}
}

func TestSearch_ShortQueriesNotMatched(t *testing.T) {
	m := builtMatcher()

	for _, q := range []string{"", " ", "W", " t "} {
		if got := m.Search(q); len(got) != 0 {
			t.Errorf("Query %q: expected no fuzzy matches, got %d", q, len(got))
		}
	}
}

func TestSearch_UnbuiltIndex(t *testing.T) {
	m := NewMatcher(DefaultSensitivity, DefaultMinQueryLength)
	if got := m.Search("Walmart"); got != nil {
		t.Errorf("Unbuilt index should yield no matches, got %v", got)
	}
}

func TestSearch_ConfiguredMinQueryLength(t *testing.T) {
	m := NewMatcher(DefaultSensitivity, 4)
	m.Build(testOrders())

	if got := m.Search("Wal"); len(got) != 0 {
		t.Errorf("3-char query below limit 4: expected no matches, got %d", len(got))
	}
	if got := m.Search("Walm"); len(got) == 0 {
		t.Error("4-char query at limit 4: expected matches")
	}
	if m.MinQueryLen() != 4 {
		t.Errorf("MinQueryLen = %d, want 4", m.MinQueryLen())
	}
}

func TestSearch_Deterministic(t *testing.T) {
	m := builtMatcher()

	first := m.Search("Walmar")
	second := m.Search("Walmar")
	if len(first) != len(second) {
		t.Fatalf("Result sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("Position %d differs: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestNewMatcher_ClampsInputs(t *testing.T) {
	low := NewMatcher(-1, DefaultMinQueryLength)
	if low.sensitivity != 0 {
		t.Errorf("Expected sensitivity clamped to 0, got %v", low.sensitivity)
	}
	high := NewMatcher(2, DefaultMinQueryLength)
	if high.sensitivity != 1 {
		t.Errorf("Expected sensitivity clamped to 1, got %v", high.sensitivity)
	}
	bad := NewMatcher(DefaultSensitivity, 0)
	if bad.MinQueryLen() != DefaultMinQueryLength {
		t.Errorf("Non-positive min query length should fall back to %d, got %d",
			DefaultMinQueryLength, bad.MinQueryLen())
	}
}
