package cmd

import (
	"context"
	"fmt"
	"time"

	"cashlens/internal/config"
	"cashlens/internal/graphdocs"

	"github.com/spf13/cobra"
)

var flagShareURL string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Resolve the latest budget spreadsheet from a shared folder",
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&flagShareURL, "share-url", "", "SharePoint/OneDrive share link (overrides config)")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	shareURL := flagShareURL
	if shareURL == "" {
		shareURL = cfg.Documents.ShareURL
	}
	if shareURL == "" {
		return fmt.Errorf("no share URL configured (use --share-url or [documents] share_url)")
	}

	token := config.GetGraphToken(cfg)
	client := graphdocs.NewClient(token)
	if client == nil {
		return fmt.Errorf("no Graph token configured (set CASHLENS_GRAPH_TOKEN or [documents] token)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sheet, err := client.ResolveLatestSpreadsheet(ctx, shareURL)
	if err != nil {
		return err
	}

	fmt.Printf("  Spreadsheet: %s\n", sheet.Name)
	if !sheet.LastModified.IsZero() {
		fmt.Printf("  Modified:    %s\n", sheet.LastModified.Format(time.RFC3339))
	}
	fmt.Printf("  Download:    %s\n", sheet.DownloadURL)
	return nil
}
