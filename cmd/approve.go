package cmd

import (
	"context"
	"fmt"
	"time"

	"cashlens/internal/approval"
	"cashlens/internal/config"
	"cashlens/internal/engine"
	"cashlens/internal/model"

	"github.com/spf13/cobra"
)

var (
	approveFlags    draftFlags
	flagDecision    string
	flagSkipScoring bool
)

var approveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Submit an approval decision for a transaction draft",
	RunE:  runApprove,
}

func init() {
	addDraftFlags(approveCmd, &approveFlags)
	approveCmd.Flags().StringVar(&flagDecision, "decision", "approve", "Decision to submit (approve, disapprove)")
	approveCmd.Flags().BoolVar(&flagSkipScoring, "skip-scoring", false, "Submit without printing the risk assessment")
	rootCmd.AddCommand(approveCmd)
}

func runApprove(_ *cobra.Command, _ []string) error {
	cfg, pol, err := loadPolicy()
	if err != nil {
		return err
	}

	decision, err := model.ParseDecision(flagDecision)
	if err != nil {
		return fmt.Errorf("--decision: %w", err)
	}

	draft, err := draftFromFlags(approveFlags)
	if err != nil {
		return err
	}

	// Normalization validates the draft before anything leaves the machine.
	tx, err := engine.Normalize(draft, pol)
	if err != nil {
		return err
	}

	if !flagSkipScoring {
		baseline, err := buildBaseline(cfg, pol)
		if err != nil {
			return err
		}
		projected := engine.Project(baseline, tx)
		risk, err := engine.Score(projected, tx.EffectiveAmount, pol)
		if err != nil {
			return err
		}
		fmt.Printf("  Risk: cash %s, budget %s, overall %s\n",
			risk.Cash.Label(), risk.Budget.Label(), risk.Overall.Label())
	}

	endpoint := config.GetApprovalEndpoint(cfg)
	client := approval.NewClient(endpoint)
	if client == nil {
		return fmt.Errorf("no approval endpoint configured (set CASHLENS_APPROVE_URL or [approval] endpoint)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ok, err := client.Submit(ctx, draft, decision)
	if err != nil {
		return err
	}
	if ok {
		fmt.Printf("  Decision %q submitted.\n", decision)
	}
	return nil
}
