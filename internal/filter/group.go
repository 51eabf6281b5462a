package filter

import "orderscope/internal/order"

// Group is one status bucket of the filtered result set.
type Group struct {
	Status order.Status
	Label  string
	Orders []order.Order
}

// Count returns the number of members in the bucket.
func (g Group) Count() int {
	return len(g.Orders)
}

// GroupByStatus partitions filtered orders into status buckets in the fixed
// display order pending, in_progress, completed. Member order follows the
// input sequence, so upstream ranking survives. Empty buckets are dropped.
func GroupByStatus(orders []order.Order) []Group {
	buckets := make(map[order.Status][]order.Order, 3)
	for _, o := range orders {
		buckets[o.Status] = append(buckets[o.Status], o)
	}

	var groups []Group
	for _, s := range order.AllStatuses() {
		members := buckets[s]
		if len(members) == 0 {
			continue
		}
		groups = append(groups, Group{Status: s, Label: s.Label(), Orders: members})
	}
	return groups
}

// RowKind discriminates the flattened rows handed to the renderer.
type RowKind int

const (
	RowHeader RowKind = iota
	RowOrder
)

// Row is one line of the render-ready sequence: a group header followed by
// its members, for every non-empty group, in bucket order.
type Row struct {
	Kind  RowKind
	Label string      // header rows
	Count int         // header rows
	Order order.Order // order rows
}

// Flatten interleaves group headers and members into a single sequence.
func Flatten(groups []Group) []Row {
	var rows []Row
	for _, g := range groups {
		rows = append(rows, Row{Kind: RowHeader, Label: g.Label, Count: g.Count()})
		for _, o := range g.Orders {
			rows = append(rows, Row{Kind: RowOrder, Order: o})
		}
	}
	return rows
}
