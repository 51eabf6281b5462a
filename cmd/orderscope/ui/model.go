package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"orderscope/internal/config"
	"orderscope/internal/filter"
	"orderscope/internal/order"
	"orderscope/internal/search"
)

// queryDebouncedMsg carries the effective query once a typing burst settles.
type queryDebouncedMsg struct {
	query string
}

// ConfigReloadedMsg re-applies live-reloaded search settings. Sent by the
// config watcher through the event channel.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigReloadErrorMsg surfaces a failed config reload as a notice. The
// previous settings stay in effect.
type ConfigReloadErrorMsg struct {
	Err error
}

// Model is the bubbletea model for the order search screen.
type Model struct {
	styles Styles

	input    textinput.Model
	viewport viewport.Model

	repo     *order.Repository
	matcher  *search.Matcher
	metrics  *filter.Metrics
	pipeline *filter.Pipeline
	debounce *search.QueryDebouncer
	log      *zap.Logger

	events chan tea.Msg

	effectiveQuery string
	status         string // filter.StatusAll or a concrete status
	presets        []float64
	presetIdx      int
	grouped        bool
	showHelp       bool
	helpView       string
	notice         string

	results []order.Order
	width   int
	height  int
	ready   bool
}

// New builds the search screen. The metrics tracker is created here and
// lives for the whole session.
func New(cfg *config.Config, repo *order.Repository, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}

	theme := LightTheme()
	if cfg.UI.DarkMode {
		theme = DarkTheme()
	}

	input := textinput.New()
	input.Placeholder = "Search by order id or store..."
	input.Prompt = "/ "
	input.CharLimit = 64
	input.Focus()

	matcher := search.NewMatcher(cfg.Search.Sensitivity, cfg.Search.MinQueryLength)
	matcher.Build(repo.Orders())
	log.Debug("search index built", zap.Int("orders", matcher.Len()))
	metrics := filter.NewMetrics()

	m := &Model{
		styles:   NewStyles(theme),
		input:    input,
		viewport: viewport.New(80, 20),
		repo:     repo,
		matcher:  matcher,
		metrics:  metrics,
		pipeline: filter.NewPipeline(matcher, metrics, log),
		log:      log,
		events:   make(chan tea.Msg, 8),
		status:   filter.StatusAll,
		presets:  cfg.Search.PaymentPresets,
		grouped:  cfg.UI.GroupByStatus,
	}
	if len(m.presets) == 0 {
		m.presets = []float64{0, 75, 100, 150}
	}

	m.debounce = search.NewQueryDebouncer(cfg.Search.Delay(), func(q string) {
		m.events <- queryDebouncedMsg{query: q}
	})

	m.recompute()
	return m
}

// Events is the channel external collaborators (the config watcher) push
// messages into.
func (m *Model) Events() chan<- tea.Msg {
	return m.events
}

// Metrics exposes the session metrics tracker.
func (m *Model) Metrics() *filter.Metrics {
	return m.metrics
}

// Results returns the current filtered result set.
func (m *Model) Results() []order.Order {
	return m.results
}

// Pending reports whether a query update is still debouncing.
func (m *Model) Pending() bool {
	return m.debounce.Pending()
}

// Init starts the cursor blink and the event listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listen())
}

// listen forwards one message from the event channel into the program.
func (m *Model) listen() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 6 // header, input, divider, footer
		if m.viewport.Height < 3 {
			m.viewport.Height = 3
		}
		m.ready = true
		m.refreshViewport()
		return m, nil

	case queryDebouncedMsg:
		m.effectiveQuery = msg.query
		m.recompute()
		return m, m.listen()

	case ConfigReloadedMsg:
		m.notice = ""
		m.applyConfig(msg.Config)
		return m, m.listen()

	case ConfigReloadErrorMsg:
		m.notice = fmt.Sprintf("config reload failed: %v", msg.Err)
		return m, m.listen()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.debounce.Close()
			return m, tea.Quit
		case "tab":
			m.cycleStatus()
			m.recompute()
			return m, nil
		case "ctrl+f":
			m.presetIdx = (m.presetIdx + 1) % len(m.presets)
			m.recompute()
			return m, nil
		case "ctrl+g":
			m.grouped = !m.grouped
			m.refreshViewport()
			return m, nil
		case "ctrl+h":
			m.showHelp = !m.showHelp
			return m, nil
		case "enter":
			m.debounce.Flush()
			return m, nil
		case "esc":
			m.input.SetValue("")
			m.debounce.Set("")
			return m, nil
		}
	}

	var cmds []tea.Cmd

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if m.input.Value() != before {
		m.debounce.Set(m.input.Value())
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// cycleStatus walks all -> pending -> in_progress -> completed -> all.
func (m *Model) cycleStatus() {
	cycle := []string{filter.StatusAll}
	for _, s := range order.AllStatuses() {
		cycle = append(cycle, string(s))
	}
	for i, s := range cycle {
		if s == m.status {
			m.status = cycle[(i+1)%len(cycle)]
			return
		}
	}
	m.status = filter.StatusAll
}

// MinPayment returns the active minimum-payment threshold.
func (m *Model) MinPayment() float64 {
	return m.presets[m.presetIdx]
}

// recompute reruns the pipeline against the current inputs and refreshes the
// rendered rows.
func (m *Model) recompute() {
	m.results = m.pipeline.Run(m.repo.Orders(), filter.Criteria{
		Query:      m.effectiveQuery,
		Status:     m.status,
		MinPayment: m.MinPayment(),
	})
	m.refreshViewport()
}

// applyConfig re-applies live-tunable search settings. The matcher is a
// function of (orders, sensitivity), so a sensitivity change rebuilds it;
// the metrics tracker survives, it is session-scoped.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.debounce.SetDelay(cfg.Search.Delay())

	matcher := search.NewMatcher(cfg.Search.Sensitivity, cfg.Search.MinQueryLength)
	matcher.Build(m.repo.Orders())
	m.log.Debug("search index rebuilt", zap.Int("orders", matcher.Len()))
	m.matcher = matcher
	m.pipeline = filter.NewPipeline(matcher, m.metrics, m.log)
	if len(cfg.Search.PaymentPresets) > 0 {
		m.presets = cfg.Search.PaymentPresets
		if m.presetIdx >= len(m.presets) {
			m.presetIdx = 0
		}
	}
	m.recompute()
}
