package cmd

import (
	"fmt"

	"cashlens/internal/cli"
	"cashlens/internal/model"

	"github.com/spf13/cobra"
)

var flagBaselineFull bool

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Show the projected cash balance timeline",
	RunE:  runBaseline,
}

func init() {
	baselineCmd.Flags().BoolVar(&flagBaselineFull, "full", false, "List every sample instead of a summary")
	rootCmd.AddCommand(baselineCmd)
}

func runBaseline(_ *cobra.Command, _ []string) error {
	cfg, pol, err := loadPolicy()
	if err != nil {
		return err
	}

	baseline, err := buildBaseline(cfg, pol)
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderTitle("Cash Balance Baseline"))
	fmt.Println()

	values := make([]float64, len(baseline))
	for i, s := range baseline {
		values[i] = s.Balance.InexactFloat64()
	}
	fmt.Printf("  %s\n\n", cli.RenderSparkline(values))

	rows := baselineRows(baseline, flagBaselineFull)
	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Balance"},
		Rows:    rows,
	}))

	first, last := baseline[0], baseline[len(baseline)-1]
	fmt.Printf("  %d samples, %s to %s, change %s\n",
		len(baseline),
		cli.FormatDate(first.Date),
		cli.FormatDate(last.Date),
		cli.FormatDelta(last.Balance.Sub(first.Balance)))

	return nil
}

// baselineRows lists all samples, or first/last few with a separator when
// the series is long and --full is not set.
func baselineRows(baseline []model.BalanceSample, full bool) [][]string {
	const headTail = 5

	row := func(s model.BalanceSample) []string {
		return []string{cli.FormatDate(s.Date), cli.FormatMoney(s.Balance)}
	}

	if full || len(baseline) <= 2*headTail {
		rows := make([][]string, len(baseline))
		for i, s := range baseline {
			rows[i] = row(s)
		}
		return rows
	}

	var rows [][]string
	for _, s := range baseline[:headTail] {
		rows = append(rows, row(s))
	}
	rows = append(rows, []string{"---"})
	for _, s := range baseline[len(baseline)-headTail:] {
		rows = append(rows, row(s))
	}
	return rows
}
