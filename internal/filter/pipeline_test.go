package filter

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orderscope/internal/order"
	"orderscope/internal/search"
)

func pipelineOrders() []order.Order {
	ts := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	// Payment-descending, the order a repository snapshot arrives in.
	return []order.Order{
		{ID: "ORD-0003", StoreName: "Walmart", Status: order.StatusInProgress, PaymentAmount: 200, ClientCount: 1, Items: 2, Timestamp: ts},
		{ID: "ORD-0001", StoreName: "Walmart", Status: order.StatusPending, PaymentAmount: 120, ClientCount: 2, Items: 4, Timestamp: ts},
		{ID: "ORD-0002", StoreName: "Target", Status: order.StatusCompleted, PaymentAmount: 80, ClientCount: 1, Items: 1, Timestamp: ts},
	}
}

func newTestPipeline(orders []order.Order) *Pipeline {
	m := search.NewMatcher(search.DefaultSensitivity, search.DefaultMinQueryLength)
	m.Build(orders)
	return NewPipeline(m, NewMetrics(), zap.NewNop())
}

func ids(orders []order.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func TestRun_NoCriteriaReturnsEverything(t *testing.T) {
	orders := pipelineOrders()
	p := newTestPipeline(orders)

	got := p.Run(orders, Criteria{Status: StatusAll})
	assert.Empty(t, cmp.Diff(ids(orders), ids(got)))
}

func TestRun_TypoQueryWithPaymentFloor(t *testing.T) {
	orders := pipelineOrders()
	p := newTestPipeline(orders)

	got := p.Run(orders, Criteria{Query: "Walmar", Status: StatusAll, MinPayment: 100})

	require.Len(t, got, 2)
	assert.Equal(t, []string{"ORD-0003", "ORD-0001"}, ids(got))
}

func TestRun_StatusFilter(t *testing.T) {
	orders := pipelineOrders()
	p := newTestPipeline(orders)

	got := p.Run(orders, Criteria{Status: string(order.StatusPending)})
	require.Len(t, got, 1)
	assert.Equal(t, "ORD-0001", got[0].ID)
}

func TestRun_PaymentFloorIsInclusive(t *testing.T) {
	orders := pipelineOrders()
	p := newTestPipeline(orders)

	got := p.Run(orders, Criteria{Status: StatusAll, MinPayment: 120})
	assert.Equal(t, []string{"ORD-0003", "ORD-0001"}, ids(got))
}

func TestRun_FiltersOnlyRemove(t *testing.T) {
	orders := pipelineOrders()
	p := newTestPipeline(orders)

	loose := p.Run(orders, Criteria{Status: StatusAll})
	tight := p.Run(orders, Criteria{Status: StatusAll, MinPayment: 100})

	assert.LessOrEqual(t, len(tight), len(loose))
	// Tight results appear in the same relative order as the loose run.
	pos := make(map[string]int, len(loose))
	for i, o := range loose {
		pos[o.ID] = i
	}
	for i := 1; i < len(tight); i++ {
		assert.Less(t, pos[tight[i-1].ID], pos[tight[i].ID])
	}
}

func TestRun_Idempotent(t *testing.T) {
	orders := pipelineOrders()
	p := newTestPipeline(orders)
	c := Criteria{Query: "Walmar", Status: StatusAll, MinPayment: 100}

	first := p.Run(orders, c)
	second := p.Run(orders, c)
	assert.Empty(t, cmp.Diff(ids(first), ids(second)))
}

func TestRun_ClampsCriteria(t *testing.T) {
	orders := pipelineOrders()
	p := newTestPipeline(orders)

	got := p.Run(orders, Criteria{Status: "shipped", MinPayment: -50})
	assert.Len(t, got, len(orders))
}

func TestRun_ShortQueryFallsBackToFullSet(t *testing.T) {
	orders := pipelineOrders()
	p := newTestPipeline(orders)

	// Mid-keystroke states below the match minimum behave like no query.
	for _, q := range []string{"W", " W ", ""} {
		got := p.Run(orders, Criteria{Query: q, Status: StatusAll})
		assert.Len(t, got, len(orders), "query %q", q)
	}

	// Other steps still apply on top of the fallback.
	got := p.Run(orders, Criteria{Query: "W", Status: string(order.StatusPending)})
	require.Len(t, got, 1)
	assert.Equal(t, "ORD-0001", got[0].ID)
}

func TestRun_NoTextMatchesYieldsEmpty(t *testing.T) {
	orders := pipelineOrders()
	p := newTestPipeline(orders)

	got := p.Run(orders, Criteria{Query: "Zzzzz", Status: StatusAll})
	assert.Empty(t, got)
}

func TestRun_RecordsMetrics(t *testing.T) {
	orders := pipelineOrders()
	metrics := NewMetrics()
	m := search.NewMatcher(search.DefaultSensitivity, search.DefaultMinQueryLength)
	m.Build(orders)
	p := NewPipeline(m, metrics, nil)

	p.Run(orders, Criteria{Status: StatusAll})
	p.Run(orders, Criteria{Query: "Walmar", Status: StatusAll})

	snap := metrics.Snapshot()
	assert.Equal(t, 2, snap.TotalRuns)
	assert.GreaterOrEqual(t, snap.LastDurationMs, 0.0)
}
