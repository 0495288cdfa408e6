package components

import (
	"fmt"

	"cashlens/internal/model"
	"cashlens/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ScoreBar renders a labeled risk category as a filled bar with its score.
func ScoreBar(label string, score model.CategoryScore, labelW, barWidth int) string {
	t := theme.Active

	pct := float64(score) / 100

	bar := progress.New(
		progress.WithSolidFill(string(ScoreColor(score))),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	scoreStyle := lipgloss.NewStyle().Foreground(ScoreColor(score)).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		scoreStyle.Render(fmt.Sprintf("%3d %s", int(score), score.Label()))
}

// BalanceGauge renders how much of the starting balance the projected
// minimum retains. Negative minimums show as an empty red bar.
func BalanceGauge(label string, minBalance, initialBalance float64, labelW, barWidth int) string {
	t := theme.Active

	pct := 0.0
	if initialBalance > 0 && minBalance > 0 {
		pct = minBalance / initialBalance
	}
	if pct > 1 {
		pct = 1
	}

	color := t.Green
	switch {
	case minBalance < 0:
		color = t.Red
	case pct < 0.2:
		color = t.Orange
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
