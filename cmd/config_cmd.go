package cmd

import (
	"fmt"

	"cashlens/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Policy]")
	fmt.Printf("    Initial balance:   %.0f\n", cfg.Policy.InitialBalance)
	fmt.Printf("    Payroll cap:       %.0f\n", cfg.Policy.PayrollCap)
	fmt.Printf("    Fringe rate:       %.2f\n", cfg.Policy.FringeRate)
	fmt.Printf("    Cash low fraction: %.2f\n", cfg.Policy.CashLowFraction)
	fmt.Printf("    Bi-weekly pay:     %s\n", cfg.Policy.BiWeeklyPayDate)
	fmt.Printf("    Monthly pay:       %s\n", cfg.Policy.MonthlyPayDate)
	fmt.Println()

	fmt.Println("  [Baseline]")
	fmt.Printf("    Window:    %s to %s\n", cfg.Baseline.StartDate, cfg.Baseline.EndDate)
	fmt.Printf("    Step days: %d\n", cfg.Baseline.StepDays)
	fmt.Printf("    Drift max: %.0f\n", cfg.Baseline.DriftMax)
	if cfg.Baseline.LedgerCSV != "" {
		fmt.Printf("    Ledger:    %s\n", cfg.Baseline.LedgerCSV)
	}
	fmt.Println()

	fmt.Println("  [Documents]")
	if cfg.Documents.ShareURL != "" {
		fmt.Printf("    Share URL: %s\n", cfg.Documents.ShareURL)
	} else {
		fmt.Println("    Share URL: not configured")
	}
	token := config.GetGraphToken(cfg)
	if token != "" {
		fmt.Printf("    Token:     %s\n", maskToken(token))
	} else {
		fmt.Println("    Token:     not configured")
	}
	fmt.Println()

	fmt.Println("  [Approval]")
	endpoint := config.GetApprovalEndpoint(cfg)
	if endpoint != "" {
		fmt.Printf("    Endpoint: %s\n", endpoint)
	} else {
		fmt.Println("    Endpoint: not configured")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `cashlens setup` to reconfigure.")
	return nil
}
