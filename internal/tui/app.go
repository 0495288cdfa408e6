// Package tui provides the interactive Bubble Tea dashboard for cashlens.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cashlens/internal/approval"
	"cashlens/internal/cli"
	"cashlens/internal/engine"
	"cashlens/internal/model"
	"cashlens/internal/tui/components"
	"cashlens/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// ApprovalDoneMsg is sent when a background approval submission finishes.
type ApprovalDoneMsg struct {
	Accepted bool
	Err      error
}

// appState tracks which screen the dashboard is on.
type appState int

const (
	stateDraft appState = iota
	stateResults
	stateSubmitting
)

// formValues holds the raw string inputs bound to the draft form.
type formValues struct {
	Type         string
	Amount       string
	RequestDate  string
	Department   string
	FundType     string
	DeliveryDate string
	PaymentTerms string
	HireDate     string
	PayCycle     string
}

// App is the root Bubble Tea model.
type App struct {
	// Fixed inputs
	baseline         []model.BalanceSample
	policy           engine.Policy
	approvalEndpoint string

	// Draft form
	form     *huh.Form
	formVals formValues
	formErr  string

	// Simulation results
	draft      model.TransactionDraft
	normalized model.NormalizedTransaction
	projected  []model.BalanceSample
	risk       model.RiskAssessment
	offGrid    bool

	// Approval state
	submitNote string

	// UI state
	state   appState
	width   int
	height  int
	spinner spinner.Model
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates a new dashboard model over a generated or loaded baseline.
func NewApp(baseline []model.BalanceSample, pol engine.Policy, approvalEndpoint string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	a := App{
		baseline:         baseline,
		policy:           pol,
		approvalEndpoint: approvalEndpoint,
		spinner:          sp,
	}
	a.form = newDraftForm(&a.formVals)
	return a
}

// newDraftForm builds the transaction draft form. Purchase and payroll
// groups hide themselves unless their type is selected.
func newDraftForm(vals *formValues) *huh.Form {
	typeOptions := make([]huh.Option[string], len(model.TransactionTypes))
	for i, t := range model.TransactionTypes {
		typeOptions[i] = huh.NewOption(string(t), string(t))
	}
	cycleOptions := make([]huh.Option[string], len(model.PayCycles))
	for i, c := range model.PayCycles {
		cycleOptions[i] = huh.NewOption(string(c), string(c))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Transaction type").
				Options(typeOptions...).
				Value(&vals.Type),
			huh.NewInput().
				Title("Amount").
				Placeholder("50000").
				Validate(validateAmount).
				Value(&vals.Amount),
			huh.NewInput().
				Title("Request date").
				Placeholder("YYYY-MM-DD").
				Validate(validateOptionalDate).
				Value(&vals.RequestDate),
			huh.NewInput().
				Title("Department").
				Value(&vals.Department),
			huh.NewInput().
				Title("Fund type").
				Value(&vals.FundType),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Delivery date").
				Placeholder("YYYY-MM-DD").
				Validate(validateOptionalDate).
				Value(&vals.DeliveryDate),
			huh.NewInput().
				Title("Payment terms (days)").
				Placeholder("30").
				Validate(validateOptionalInt).
				Value(&vals.PaymentTerms),
		).WithHideFunc(func() bool {
			return vals.Type != string(model.TypePurchase)
		}),
		huh.NewGroup(
			huh.NewInput().
				Title("Hire date").
				Placeholder("YYYY-MM-DD").
				Validate(validateOptionalDate).
				Value(&vals.HireDate),
			huh.NewSelect[string]().
				Title("Pay cycle").
				Options(cycleOptions...).
				Value(&vals.PayCycle),
		).WithHideFunc(func() bool {
			return vals.Type != string(model.TypePayroll)
		}),
	)

	return form.WithTheme(huh.ThemeBase16())
}

func validateAmount(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if d.IsNegative() {
		return fmt.Errorf("amount must not be negative")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := model.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateOptionalInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < 0 {
		return fmt.Errorf("terms must not be negative")
	}
	return nil
}

// buildDraft converts form values into a transaction draft.
func buildDraft(vals formValues) (model.TransactionDraft, error) {
	draft := model.TransactionDraft{
		Type:       model.TransactionType(vals.Type),
		Department: strings.TrimSpace(vals.Department),
		FundType:   strings.TrimSpace(vals.FundType),
		PayCycle:   model.PayCycle(vals.PayCycle),
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(vals.Amount))
	if err != nil {
		return draft, fmt.Errorf("amount: %w", err)
	}
	draft.Amount = amount

	if s := strings.TrimSpace(vals.RequestDate); s != "" {
		if draft.RequestDate, err = model.ParseDate(s); err != nil {
			return draft, fmt.Errorf("request date: %w", err)
		}
	}
	if s := strings.TrimSpace(vals.DeliveryDate); s != "" {
		if draft.DeliveryDate, err = model.ParseDate(s); err != nil {
			return draft, fmt.Errorf("delivery date: %w", err)
		}
	}
	if s := strings.TrimSpace(vals.HireDate); s != "" {
		if draft.HireDate, err = model.ParseDate(s); err != nil {
			return draft, fmt.Errorf("hire date: %w", err)
		}
	}
	if s := strings.TrimSpace(vals.PaymentTerms); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return draft, fmt.Errorf("payment terms: %w", err)
		}
		draft.PaymentTermsDays = &n
	}

	return draft, nil
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.form.Init(), a.spinner.Tick)
}

// simulate runs the draft through the projection pipeline.
func (a *App) simulate() error {
	draft, err := buildDraft(a.formVals)
	if err != nil {
		return err
	}

	tx, err := engine.Normalize(draft, a.policy)
	if err != nil {
		return err
	}

	projected := engine.Project(a.baseline, tx)
	risk, err := engine.Score(projected, tx.EffectiveAmount, a.policy)
	if err != nil {
		return err
	}

	a.draft = draft
	a.normalized = tx
	a.projected = projected
	a.risk = risk
	a.offGrid = !engine.Matches(a.baseline, tx)
	a.submitNote = ""
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.state == stateDraft && a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width, maxContentWidth))
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.state {
		case stateDraft:
			return a.updateDraftForm(msg)

		case stateResults:
			switch key {
			case "q", "esc":
				return a, tea.Quit
			case "e":
				// Re-edit the same draft
				a.form = newDraftForm(&a.formVals)
				a.formErr = ""
				a.state = stateDraft
				return a, a.form.Init()
			case "n":
				a.formVals = formValues{}
				a.form = newDraftForm(&a.formVals)
				a.formErr = ""
				a.state = stateDraft
				return a, a.form.Init()
			case "a":
				return a.startSubmit(model.DecisionApprove)
			case "d":
				return a.startSubmit(model.DecisionDisapprove)
			}
			return a, nil

		case stateSubmitting:
			// Keys are ignored while the submission is in flight.
			return a, nil
		}

	case ApprovalDoneMsg:
		a.state = stateResults
		switch {
		case msg.Err != nil:
			a.submitNote = "submission failed: " + msg.Err.Error()
		case msg.Accepted:
			a.submitNote = "decision submitted"
		default:
			a.submitNote = "decision not accepted"
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	if a.state == stateDraft && a.form != nil {
		return a.updateDraftForm(msg)
	}

	return a, nil
}

func (a App) updateDraftForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		if err := a.simulate(); err != nil {
			a.formErr = err.Error()
			a.form = newDraftForm(&a.formVals)
			return a, a.form.Init()
		}
		a.formErr = ""
		a.state = stateResults
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}

func (a App) startSubmit(decision model.Decision) (tea.Model, tea.Cmd) {
	client := approval.NewClient(a.approvalEndpoint)
	if client == nil {
		a.submitNote = "no approval endpoint configured"
		return a, nil
	}
	a.state = stateSubmitting
	return a, tea.Batch(a.spinner.Tick, submitCmd(client, a.draft, decision))
}

// submitCmd posts the decision in a background goroutine.
func submitCmd(client *approval.Client, draft model.TransactionDraft, decision model.Decision) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		ok, err := client.Submit(ctx, draft, decision)
		return ApprovalDoneMsg{Accepted: ok, Err: err}
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	switch a.state {
	case stateDraft:
		return a.viewDraft()
	case stateSubmitting:
		return a.viewSubmitting()
	default:
		return a.viewResults()
	}
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < minContentHeight {
		h = minContentHeight
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  cashlens needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewDraft() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	errStyle := lipgloss.NewStyle().
		Foreground(t.Red)

	fringeStyle := lipgloss.NewStyle().
		Foreground(t.Yellow)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ cashlens"))
	b.WriteString(subtitleStyle.Render(" · Transaction Draft"))
	b.WriteString("\n\n")
	if a.formErr != "" {
		b.WriteString(errStyle.Render("  " + a.formErr))
		b.WriteString("\n\n")
	}
	b.WriteString(a.form.View())

	// Live fringe preview while a payroll amount is being typed
	if a.formVals.Type == string(model.TypePayroll) {
		if amount, err := decimal.NewFromString(strings.TrimSpace(a.formVals.Amount)); err == nil && !amount.IsNegative() {
			fringe := amount.Mul(a.policy.FringeRate)
			b.WriteString("\n")
			b.WriteString(fringeStyle.Render(fmt.Sprintf("  Fringe (%s): %s  ·  Gross: %s",
				cli.FormatPercent(a.policy.FringeRate.InexactFloat64()),
				cli.FormatMoney(fringe),
				cli.FormatMoney(amount.Add(fringe)))))
			b.WriteString("\n")
		}
	}

	h := a.height
	if h < minContentHeight {
		h = minContentHeight
	}
	return padHeight(truncateHeight(b.String(), h), h)
}

func (a App) viewSubmitting() string {
	t := theme.Active

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3).
		Render(a.spinner.View() + lipgloss.NewStyle().
			Foreground(t.TextMuted).Background(t.Surface).
			Render(" Submitting decision..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewResults() string {
	t := theme.Active
	cw := a.contentWidth()
	h := a.height

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)
	mutedStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)
	warnStyle := lipgloss.NewStyle().
		Foreground(t.Orange)
	noteStyle := lipgloss.NewStyle().
		Foreground(t.Accent)

	b.WriteString(titleStyle.Render("◈ cashlens"))
	b.WriteString(mutedStyle.Render(" · Projection"))
	b.WriteString("\n\n")

	// Normalized transaction summary
	summary := fmt.Sprintf("%s  ·  %s effective  ·  posts %s",
		a.draft.Type,
		cli.FormatMoney(a.normalized.EffectiveAmount),
		cli.FormatDate(a.normalized.PostingDate))
	if a.normalized.Fringe.IsPositive() {
		summary += fmt.Sprintf("  ·  fringe %s", cli.FormatMoney(a.normalized.Fringe))
	}
	b.WriteString(components.ContentCard("Transaction", mutedStyle.Render(summary), cw))
	b.WriteString("\n")

	// Projected balance chart
	values := make([]float64, len(a.projected))
	labels := make([]string, len(a.projected))
	for i, s := range a.projected {
		values[i] = s.Balance.InexactFloat64()
		labels[i] = s.Date.Format(model.DateLayout)
	}
	chartH := h / 3
	if chartH < 6 {
		chartH = 6
	}
	if chartH > 12 {
		chartH = 12
	}
	b.WriteString(components.BalanceChart(values, labels, t.Accent, cw-4, chartH))
	b.WriteString("\n\n")

	// Risk cards
	cards := []string{
		components.ScoreCard("Cash risk", a.risk.Cash, cw/3),
		components.ScoreCard("Budget risk", a.risk.Budget, cw/3),
		components.ScoreCard("Overall", a.risk.Overall, cw-2*(cw/3)),
	}
	b.WriteString(components.CardRow(cards))
	b.WriteString("\n")

	barW := cw - 30
	if barW > 40 {
		barW = 40
	}
	if barW < 10 {
		barW = 10
	}
	b.WriteString(components.ScoreBar("Cash", a.risk.Cash, 8, barW))
	b.WriteString("\n")
	b.WriteString(components.ScoreBar("Budget", a.risk.Budget, 8, barW))
	b.WriteString("\n")
	if minBal, ok := engine.MinBalance(a.projected); ok {
		b.WriteString(components.BalanceGauge("Floor", minBal.InexactFloat64(),
			a.policy.InitialBalance.InexactFloat64(), 8, barW))
		b.WriteString("\n")
	}

	if a.offGrid {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("  posting date falls outside the sampled timeline; balances unchanged"))
		b.WriteString("\n")
	}
	if a.submitNote != "" {
		b.WriteString("\n")
		b.WriteString(noteStyle.Render("  " + a.submitNote))
		b.WriteString("\n")
	}

	statusBar := components.RenderStatusBar(a.width,
		"[a]pprove  [d]isapprove  [e]dit  [n]ew  [q]uit",
		fmt.Sprintf("%s to %s",
			a.projected[0].Date.Format(model.DateLayout),
			a.projected[len(a.projected)-1].Date.Format(model.DateLayout)))

	contentH := h - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}
	content := padHeight(truncateHeight(b.String(), contentH), contentH)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}
