package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"orderscope/cmd/orderscope/ui"
	"orderscope/internal/config"
	"orderscope/internal/filter"
	"orderscope/internal/logging"
	"orderscope/internal/order"
	"orderscope/internal/search"
)

var (
	// Global flags
	cfgPath    string
	verbose    bool
	orderCount int
	seed       int64

	logger    *zap.Logger
	sessionID string
)

// rootCmd launches the interactive search screen.
var rootCmd = &cobra.Command{
	Use:   "orderscope",
	Short: "orderscope - fuzzy order search in your terminal",
	Long: `orderscope is an interactive search-and-filter screen for orders.

Type a query to fuzzy-match order ids and store names, cycle status and
minimum-payment filters, and group results by status. Search latency is
tracked for the session.

Run without arguments to start the interactive screen.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		sessionID = uuid.NewString()
		logger.Info("session started", zap.String("session_id", sessionID))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

// searchCmd runs one pipeline pass and prints the results.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a single search without the interactive screen",
	Long: `Runs the filter pipeline once against a generated order set and prints
the result table plus the measured search duration.

Example:
  orderscope search walmart --status pending --min-payment 100`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

var (
	searchStatus  string
	searchMinPay  float64
	searchGrouped bool
)

// versionCmd prints build info.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the orderscope version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "orderscope "+config.DefaultConfig().Version)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "orderscope.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVar(&orderCount, "orders", 0, "number of mock orders (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "mock data seed (overrides config)")

	searchCmd.Flags().StringVar(&searchStatus, "status", filter.StatusAll, "status filter (pending, in_progress, completed, all)")
	searchCmd.Flags().Float64Var(&searchMinPay, "min-payment", 0, "minimum payment amount")
	searchCmd.Flags().BoolVar(&searchGrouped, "grouped", false, "group results by status")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if orderCount > 0 {
		cfg.Data.OrderCount = orderCount
	}
	if seed != 0 {
		cfg.Data.Seed = seed
	}
	return cfg, nil
}

// buildRepository generates the session's mock order set.
func buildRepository(cfg *config.Config) (*order.Repository, error) {
	orders, err := order.Generate(cfg.Data.OrderCount, cfg.Data.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to generate orders: %w", err)
	}
	repo, err := order.NewRepository(orders)
	if err != nil {
		return nil, fmt.Errorf("failed to build repository: %w", err)
	}
	return repo, nil
}

func runInteractive(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	repo, err := buildRepository(cfg)
	if err != nil {
		return err
	}
	logger.Info("repository ready", zap.Int("orders", repo.Len()))

	model := ui.New(cfg, repo, logger)

	watcher, err := config.NewWatcher(cfgPath, func(fresh *config.Config, err error) {
		if err != nil {
			model.Events() <- ui.ConfigReloadErrorMsg{Err: err}
			return
		}
		model.Events() <- ui.ConfigReloadedMsg{Config: fresh}
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if err := watcher.Start(ctx); err != nil {
		logger.Warn("config watcher not started", zap.Error(err))
	} else {
		defer watcher.Stop()
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive screen failed: %w", err)
	}

	snap := model.Metrics().Snapshot()
	logger.Info("session finished",
		zap.String("session_id", sessionID),
		zap.Int("total_runs", snap.TotalRuns),
		zap.Float64("avg_ms", snap.AverageDurationMs),
	)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	repo, err := buildRepository(cfg)
	if err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	matcher := search.NewMatcher(cfg.Search.Sensitivity, cfg.Search.MinQueryLength)
	matcher.Build(repo.Orders())
	metrics := filter.NewMetrics()
	pipeline := filter.NewPipeline(matcher, metrics, logger)

	results := pipeline.Run(repo.Orders(), filter.Criteria{
		Query:      query,
		Status:     searchStatus,
		MinPayment: searchMinPay,
	})

	out := cmd.OutOrStdout()
	styles := ui.DefaultStyles()

	if searchGrouped {
		for _, g := range filter.GroupByStatus(results) {
			table := ui.NewSimpleTable(fmt.Sprintf("%s (%d)", g.Label, g.Count()), orderTableHeaders())
			for _, o := range g.Orders {
				table.AddRow(orderTableRow(o)...)
			}
			fmt.Fprint(out, table.View(styles))
			fmt.Fprintln(out)
		}
	} else {
		table := ui.NewSimpleTable("", orderTableHeaders())
		for _, o := range results {
			table.AddRow(orderTableRow(o)...)
		}
		fmt.Fprint(out, table.View(styles))
	}

	snap := metrics.Snapshot()
	fmt.Fprintf(out, "%d orders found in %.2fms\n", len(results), snap.LastDurationMs)
	return nil
}

func orderTableHeaders() []string {
	return []string{"ID", "Store", "Status", "Payment", "Clients", "Items", "Date"}
}

func orderTableRow(o order.Order) []string {
	return []string{
		o.ID,
		o.StoreName,
		o.Status.Label(),
		fmt.Sprintf("$%.2f", o.PaymentAmount),
		fmt.Sprintf("%d", o.ClientCount),
		fmt.Sprintf("%d", o.Items),
		o.Timestamp.Format("2006-01-02"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
