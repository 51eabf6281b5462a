package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"orderscope/internal/config"
	"orderscope/internal/filter"
	"orderscope/internal/order"
)

func testRepo(t *testing.T) *order.Repository {
	t.Helper()
	ts := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	repo, err := order.NewRepository([]order.Order{
		{ID: "ORD-0001", StoreName: "Walmart", Status: order.StatusPending, PaymentAmount: 120, ClientCount: 2, Items: 4, Timestamp: ts},
		{ID: "ORD-0002", StoreName: "Target", Status: order.StatusCompleted, PaymentAmount: 80, ClientCount: 1, Items: 1, Timestamp: ts},
		{ID: "ORD-0003", StoreName: "Walmart", Status: order.StatusInProgress, PaymentAmount: 200, ClientCount: 1, Items: 2, Timestamp: ts},
	})
	if err != nil {
		t.Fatalf("Failed to build repository: %v", err)
	}
	return repo
}

func testModel(t *testing.T) *Model {
	t.Helper()
	m := New(config.DefaultConfig(), testRepo(t), nil)
	t.Cleanup(func() { m.debounce.Close() })
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestNew_ShowsAllOrders(t *testing.T) {
	m := testModel(t)

	if got := len(m.Results()); got != 3 {
		t.Errorf("Expected 3 results on startup, got %d", got)
	}
	// Repository order is payment-descending.
	if m.Results()[0].ID != "ORD-0003" {
		t.Errorf("Expected ORD-0003 first, got %s", m.Results()[0].ID)
	}
}

func TestUpdate_DebouncedQuery(t *testing.T) {
	m := testModel(t)

	m.Update(queryDebouncedMsg{query: "Walmar"})

	if got := len(m.Results()); got != 2 {
		t.Fatalf("Expected 2 Walmart results, got %d", got)
	}
	for _, o := range m.Results() {
		if o.StoreName != "Walmart" {
			t.Errorf("Unexpected result %s (%s)", o.ID, o.StoreName)
		}
	}
}

func TestCycleStatus(t *testing.T) {
	m := testModel(t)

	want := []string{
		string(order.StatusPending),
		string(order.StatusInProgress),
		string(order.StatusCompleted),
		filter.StatusAll,
	}
	for _, expected := range want {
		m.cycleStatus()
		if m.status != expected {
			t.Fatalf("Expected status %q, got %q", expected, m.status)
		}
	}
}

func TestUpdate_StatusKeyFiltersResults(t *testing.T) {
	m := testModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	if m.status != string(order.StatusPending) {
		t.Fatalf("Expected pending after tab, got %q", m.status)
	}
	if got := len(m.Results()); got != 1 {
		t.Fatalf("Expected 1 pending order, got %d", got)
	}
	if m.Results()[0].ID != "ORD-0001" {
		t.Errorf("Expected ORD-0001, got %s", m.Results()[0].ID)
	}
}

func TestUpdate_PaymentPresetCycle(t *testing.T) {
	m := testModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	if m.MinPayment() != 75 {
		t.Fatalf("Expected preset 75, got %v", m.MinPayment())
	}
	if got := len(m.Results()); got != 2 {
		t.Errorf("Expected 2 orders at or above 75, got %d", got)
	}

	// Wraps back to 0 after the last preset.
	for i := 0; i < 3; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	}
	if m.MinPayment() != 0 {
		t.Errorf("Expected preset cycle to wrap to 0, got %v", m.MinPayment())
	}
}

func TestUpdate_GroupingToggle(t *testing.T) {
	m := testModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	if !m.grouped {
		t.Fatal("Expected grouping on after ctrl+g")
	}

	view := m.View()
	pendingIdx := strings.Index(view, "Pending")
	completedIdx := strings.Index(view, "Completed")
	if pendingIdx == -1 || completedIdx == -1 {
		t.Fatal("Expected group headers in the grouped view")
	}
	if pendingIdx > completedIdx {
		t.Error("Pending group should render before Completed")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	if m.grouped {
		t.Error("Expected grouping off after second ctrl+g")
	}
}

func TestUpdate_EscClearsQuery(t *testing.T) {
	m := testModel(t)
	m.input.SetValue("Walmar")
	m.effectiveQuery = "Walmar"
	m.recompute()

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.input.Value() != "" {
		t.Errorf("Expected empty input, got %q", m.input.Value())
	}
}

func TestUpdate_TypingArmsDebounce(t *testing.T) {
	m := testModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'W'}})

	if !m.Pending() {
		t.Error("Expected a pending query after a keystroke")
	}
	// Results are untouched until the debounce settles.
	if got := len(m.Results()); got != 3 {
		t.Errorf("Expected results unchanged while pending, got %d", got)
	}
}

func TestUpdate_EnterFlushesQuery(t *testing.T) {
	m := testModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'W', 'a', 'l'}})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	select {
	case msg := <-m.events:
		debounced, ok := msg.(queryDebouncedMsg)
		if !ok {
			t.Fatalf("Expected queryDebouncedMsg, got %T", msg)
		}
		if debounced.query != "Wal" {
			t.Errorf("Expected flushed query 'Wal', got %q", debounced.query)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Enter should emit the query immediately")
	}
}

func TestApplyConfig_KeepsMetrics(t *testing.T) {
	m := testModel(t)
	runsBefore := m.Metrics().Snapshot().TotalRuns

	cfg := config.DefaultConfig()
	cfg.Search.Sensitivity = 0.5
	cfg.Search.PaymentPresets = []float64{0, 50}
	m.Update(ConfigReloadedMsg{Config: cfg})

	snap := m.Metrics().Snapshot()
	if snap.TotalRuns <= runsBefore {
		t.Error("Metrics should survive a config reload and keep counting")
	}
	if len(m.presets) != 2 {
		t.Errorf("Expected 2 presets after reload, got %d", len(m.presets))
	}
}

func TestUpdate_ShortEffectiveQueryKeepsFullSet(t *testing.T) {
	m := testModel(t)

	m.Update(queryDebouncedMsg{query: "W"})

	if got := len(m.Results()); got != 3 {
		t.Errorf("1-char effective query should keep the full set, got %d results", got)
	}
}

func TestNew_HonorsConfiguredMinQueryLength(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Search.MinQueryLength = 4
	m := New(cfg, testRepo(t), nil)
	t.Cleanup(func() { m.debounce.Close() })
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	m.Update(queryDebouncedMsg{query: "Wal"})
	if got := len(m.Results()); got != 3 {
		t.Errorf("Query below the configured minimum should keep the full set, got %d", got)
	}

	m.Update(queryDebouncedMsg{query: "Walm"})
	if got := len(m.Results()); got != 2 {
		t.Errorf("Query at the configured minimum should match, got %d results", got)
	}
}

func TestUpdate_ConfigReloadErrorShowsNotice(t *testing.T) {
	m := testModel(t)

	m.Update(ConfigReloadErrorMsg{Err: errors.New("yaml: line 3: mapping values are not allowed")})
	if !strings.Contains(m.View(), "config reload failed") {
		t.Fatal("Expected the reload-failure notice in the view")
	}

	m.Update(ConfigReloadedMsg{Config: config.DefaultConfig()})
	if strings.Contains(m.View(), "config reload failed") {
		t.Error("Notice should clear after a successful reload")
	}
}

func TestView_EmptyState(t *testing.T) {
	m := testModel(t)

	m.Update(queryDebouncedMsg{query: "Zzzzz"})

	if got := len(m.Results()); got != 0 {
		t.Fatalf("Expected no results, got %d", got)
	}
	if !strings.Contains(m.View(), "0 orders found") {
		t.Error("Expected the empty-state message in the view")
	}
}
