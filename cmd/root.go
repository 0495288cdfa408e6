// Package cmd implements the cashlens CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"cashlens/internal/config"
	"cashlens/internal/engine"
	"cashlens/internal/ledger"
	"cashlens/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagQuiet  bool
	flagLedger string
	flagSeed   int64
)

var rootCmd = &cobra.Command{
	Use:   "cashlens",
	Short: "Cash flow projection and risk scoring CLI",
	Long:  "Project transaction drafts against a cash balance timeline and score their risk.",
	RunE:  runBaseline,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().StringVarP(&flagLedger, "ledger", "l", "", "Balance series CSV (overrides generated baseline)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Drift seed (0 uses the current time)")
}

// loadPolicy loads config and converts its policy section.
func loadPolicy() (config.Config, engine.Policy, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, engine.Policy{}, err
	}
	pol, err := config.EnginePolicy(cfg)
	if err != nil {
		return cfg, engine.Policy{}, err
	}
	return cfg, pol, nil
}

// buildBaseline produces the balance timeline: a supplied ledger CSV when
// configured, a generated series otherwise.
func buildBaseline(cfg config.Config, pol engine.Policy) ([]model.BalanceSample, error) {
	path := flagLedger
	if path == "" {
		path = cfg.Baseline.LedgerCSV
	}
	if path != "" {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Loading balance series from %s\n", path)
		}
		return ledger.LoadFile(path)
	}

	start, end, err := config.BaselineRange(cfg)
	if err != nil {
		return nil, err
	}

	stepDays := cfg.Baseline.StepDays
	if stepDays <= 0 {
		stepDays = 7
	}

	drift := engine.ZeroDrift
	if cfg.Baseline.DriftMax > 0 {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		drift = engine.RandomDrift(seed, decimal.NewFromFloat(cfg.Baseline.DriftMax))
	}

	return engine.Generate(start, end, pol.InitialBalance, stepDays, drift)
}
