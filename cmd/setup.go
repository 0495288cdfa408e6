package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"cashlens/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to cashlens!")
	fmt.Println()

	// 1. Projection window
	fmt.Println("  1. Projection window")
	fmt.Printf("     Current: %s to %s, every %d days\n",
		cfg.Baseline.StartDate, cfg.Baseline.EndDate, cfg.Baseline.StepDays)
	fmt.Print("     Start date (YYYY-MM-DD, blank to keep) > ")
	start, _ := reader.ReadString('\n')
	if start = strings.TrimSpace(start); start != "" {
		cfg.Baseline.StartDate = start
	}
	fmt.Print("     End date (YYYY-MM-DD, blank to keep)   > ")
	end, _ := reader.ReadString('\n')
	if end = strings.TrimSpace(end); end != "" {
		cfg.Baseline.EndDate = end
	}
	fmt.Println()

	// 2. Budget spreadsheet lookup
	fmt.Println("  2. Budget spreadsheet (Microsoft Graph)")
	fmt.Println("     Share link to the folder holding budget workbooks.")
	if cfg.Documents.ShareURL != "" {
		fmt.Printf("     Current: %s\n", cfg.Documents.ShareURL)
	}
	fmt.Print("     > ")
	shareURL, _ := reader.ReadString('\n')
	if shareURL = strings.TrimSpace(shareURL); shareURL != "" {
		cfg.Documents.ShareURL = shareURL
	}

	existing := config.GetGraphToken(cfg)
	if existing != "" {
		fmt.Printf("     Token: %s\n", maskToken(existing))
	}
	fmt.Print("     Graph token (blank to keep) > ")
	token, _ := reader.ReadString('\n')
	if token = strings.TrimSpace(token); token != "" {
		cfg.Documents.Token = token
	}
	fmt.Println()

	// 3. Approval endpoint
	fmt.Println("  3. Approval submission endpoint")
	if cfg.Approval.Endpoint != "" {
		fmt.Printf("     Current: %s\n", cfg.Approval.Endpoint)
	}
	fmt.Print("     > ")
	endpoint, _ := reader.ReadString('\n')
	if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
		cfg.Approval.Endpoint = endpoint
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `cashlens setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func maskToken(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
