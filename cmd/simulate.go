package cmd

import (
	"fmt"
	"os"

	"cashlens/internal/cli"
	"cashlens/internal/engine"
	"cashlens/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// draftFlags holds the raw flag values describing a transaction draft.
type draftFlags struct {
	Type         string
	Amount       string
	RequestDate  string
	DeliveryDate string
	Terms        int
	Department   string
	Fund         string
	HireDate     string
	Cycle        string
}

var simulateFlags draftFlags

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project a transaction draft and score its risk",
	RunE:  runSimulate,
}

func init() {
	addDraftFlags(simulateCmd, &simulateFlags)
	rootCmd.AddCommand(simulateCmd)
}

// addDraftFlags registers the draft-describing flags on a command.
// Terms defaults to -1 so an unset flag is distinguishable from 0 days.
func addDraftFlags(cmd *cobra.Command, f *draftFlags) {
	cmd.Flags().StringVarP(&f.Type, "type", "t", "", "Transaction type (Purchase, Payroll, Travel, Contract)")
	cmd.Flags().StringVarP(&f.Amount, "amount", "a", "", "Transaction amount")
	cmd.Flags().StringVar(&f.RequestDate, "request-date", "", "Request date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.DeliveryDate, "delivery-date", "", "Expected delivery date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.Terms, "terms", -1, "Payment terms in days")
	cmd.Flags().StringVar(&f.Department, "department", "", "Requesting department")
	cmd.Flags().StringVar(&f.Fund, "fund", "", "Fund type")
	cmd.Flags().StringVar(&f.HireDate, "hire-date", "", "Hire date for payroll drafts (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.Cycle, "cycle", "", "Pay cycle (Bi-Weekly, Monthly)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("amount")
}

// draftFromFlags converts flag values to a transaction draft.
func draftFromFlags(f draftFlags) (model.TransactionDraft, error) {
	draft := model.TransactionDraft{
		Type:       model.TransactionType(f.Type),
		Department: f.Department,
		FundType:   f.Fund,
		PayCycle:   model.PayCycle(f.Cycle),
	}

	amount, err := decimal.NewFromString(f.Amount)
	if err != nil {
		return draft, fmt.Errorf("--amount: %w", err)
	}
	draft.Amount = amount

	if f.RequestDate != "" {
		if draft.RequestDate, err = model.ParseDate(f.RequestDate); err != nil {
			return draft, fmt.Errorf("--request-date: %w", err)
		}
	}
	if f.DeliveryDate != "" {
		if draft.DeliveryDate, err = model.ParseDate(f.DeliveryDate); err != nil {
			return draft, fmt.Errorf("--delivery-date: %w", err)
		}
	}
	if f.HireDate != "" {
		if draft.HireDate, err = model.ParseDate(f.HireDate); err != nil {
			return draft, fmt.Errorf("--hire-date: %w", err)
		}
	}
	if f.Terms >= 0 {
		terms := f.Terms
		draft.PaymentTermsDays = &terms
	}

	return draft, nil
}

func runSimulate(_ *cobra.Command, _ []string) error {
	cfg, pol, err := loadPolicy()
	if err != nil {
		return err
	}

	draft, err := draftFromFlags(simulateFlags)
	if err != nil {
		return err
	}

	baseline, err := buildBaseline(cfg, pol)
	if err != nil {
		return err
	}

	tx, err := engine.Normalize(draft, pol)
	if err != nil {
		return err
	}

	projected := engine.Project(baseline, tx)
	risk, err := engine.Score(projected, tx.EffectiveAmount, pol)
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderTitle("Transaction Projection"))
	fmt.Println()

	txRows := [][]string{
		{"Type", string(draft.Type)},
		{"Amount", cli.FormatMoney(draft.Amount)},
	}
	if tx.Fringe.IsPositive() {
		txRows = append(txRows,
			[]string{"Fringe", cli.FormatMoney(tx.Fringe)},
			[]string{"Gross", cli.FormatMoney(tx.EffectiveAmount)},
		)
	}
	txRows = append(txRows, []string{"Posting date", cli.FormatDate(tx.PostingDate)})
	fmt.Println(cli.RenderTable(cli.Table{Title: "Normalized", Rows: txRows}))

	values := make([]float64, len(projected))
	for i, s := range projected {
		values[i] = s.Balance.InexactFloat64()
	}
	fmt.Printf("  %s\n\n", cli.RenderSparkline(values))

	fmt.Println(cli.RenderRiskBar("Cash", risk.Cash, 24))
	fmt.Println(cli.RenderRiskBar("Budget", risk.Budget, 24))
	fmt.Println(cli.RenderRiskBar("Overall", risk.Overall, 24))
	fmt.Println()

	minBal, _ := engine.MinBalance(projected)
	fmt.Println(cli.RenderTable(cli.Table{
		Title: "Risk",
		Rows: [][]string{
			{"Cash", cli.FormatScore(risk.Cash)},
			{"Budget", cli.FormatScore(risk.Budget)},
			{"Overall", cli.FormatScore(risk.Overall)},
			{"Min balance", cli.FormatMoney(minBal)},
		},
	}))

	if !engine.Matches(baseline, tx) && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Note: posting date %s is not a sampled date; balances unchanged\n",
			cli.FormatDate(tx.PostingDate))
	}

	return nil
}
