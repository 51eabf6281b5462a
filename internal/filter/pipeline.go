// Package filter implements the search pipeline: fuzzy text match, status
// and payment predicates, status grouping, and run instrumentation.
package filter

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"orderscope/internal/order"
	"orderscope/internal/search"
)

// StatusAll is the wildcard status filter.
const StatusAll = "all"

// Criteria is one logical filter input set for a pipeline run.
type Criteria struct {
	Query      string
	Status     string // a known status or StatusAll
	MinPayment float64
}

// normalize clamps out-of-domain values instead of faulting: this is a pure
// filtering core with no user-facing error channel.
func (c Criteria) normalize() Criteria {
	if c.MinPayment < 0 {
		c.MinPayment = 0
	}
	if _, ok := order.ParseStatus(c.Status); !ok {
		c.Status = StatusAll
	}
	return c
}

// Pipeline combines the fuzzy matcher with the status and payment predicates
// and records the duration of each run.
type Pipeline struct {
	matcher *search.Matcher
	metrics *Metrics
	log     *zap.Logger
}

// NewPipeline wires the pipeline. metrics is the single owned mutable record
// for the session; logger may be zap.NewNop().
func NewPipeline(matcher *search.Matcher, metrics *Metrics, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{matcher: matcher, metrics: metrics, log: log}
}

// Run filters orders by the criteria. Step order matters: the text step
// establishes the ranking, status and payment only remove. The run duration
// is recorded after the result is computed, before it is returned.
func (p *Pipeline) Run(orders []order.Order, c Criteria) []order.Order {
	start := time.Now()
	c = c.normalize()

	// A query below the matcher's minimum counts as empty: mid-keystroke
	// states keep the full set instead of blanking the screen.
	var result []order.Order
	q := strings.TrimSpace(c.Query)
	if p.matcher != nil && len([]rune(q)) >= p.matcher.MinQueryLen() {
		result = p.matcher.Search(q)
	} else {
		result = make([]order.Order, len(orders))
		copy(result, orders)
	}

	filtered := result[:0]
	for _, o := range result {
		if c.Status != StatusAll && string(o.Status) != c.Status {
			continue
		}
		if o.PaymentAmount < c.MinPayment {
			continue
		}
		filtered = append(filtered, o)
	}

	elapsed := time.Since(start)
	if p.metrics != nil {
		p.metrics.Record(elapsed)
	}
	p.log.Debug("pipeline run",
		zap.String("query", c.Query),
		zap.String("status", c.Status),
		zap.Float64("min_payment", c.MinPayment),
		zap.Int("results", len(filtered)),
		zap.Duration("elapsed", elapsed),
	)
	return filtered
}
