package cmd

import (
	"fmt"

	"github.com/rustyeddy/propfirm/account"
	"github.com/rustyeddy/propfirm/config"
	"github.com/rustyeddy/propfirm/eval"
	"github.com/rustyeddy/propfirm/journal"
	"github.com/rustyeddy/propfirm/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "propfirm",
	Short: "A local evaluation tracker for simulated prop-firm challenge accounts",
	Long: `Propfirm tracks one simulated trading-challenge attempt and enforces
its risk rules locally:

  - Fixed risk per trade with a minimum reward:risk ratio
  - Daily loss cap with per-day trading locks
  - Total drawdown cap with a permanent account lock
  - Per-stage profit targets and minimum trading days

State is persisted to a local JSON file after every action; resolved
trades can additionally be journaled to SQLite or CSV.`,
}

var (
	cfgFile string
	verbose bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "path to config file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine activity to stderr")
}

// app wires one command invocation: config, logger, engine, state store
// and journal. Close releases the journal and flushes the logger.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	engine *eval.Engine
	store  *store.File
	jrnl   journal.Journal
}

func newApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
	}

	var j journal.Journal = journal.Nop{}
	switch cfg.Journal.Type {
	case "csv":
		j, err = journal.NewCSV(cfg.Journal.TradesFile, cfg.Journal.EquityFile)
	case "sqlite":
		j, err = journal.NewSQLite(cfg.Journal.DBPath)
	}
	if err != nil {
		return nil, fmt.Errorf("create journal: %w", err)
	}

	policy := cfg.Policy()
	st := store.NewFile(cfg.Storage.StateFile, func() account.State {
		return account.Default(policy.InitialBalance)
	}, logger)

	return &app{
		cfg:    cfg,
		logger: logger,
		engine: eval.NewEngine(policy, j, logger),
		store:  st,
		jrnl:   j,
	}, nil
}

func (a *app) Close() {
	if err := a.jrnl.Close(); err != nil {
		a.logger.Warn("close journal", zap.Error(err))
	}
	_ = a.logger.Sync()
}
