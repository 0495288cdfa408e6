package components

import (
	"fmt"
	"math"
	"strings"

	"cashlens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values, scaled between the
// series min and max. Balance curves sit near a large constant, so scaling
// from zero would flatten them.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	span := hi - lo
	if span == 0 {
		return style.Render(strings.Repeat(string(blocks[len(blocks)/2]), len(values)))
	}

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// BalanceChart renders a column chart of a balance series with a labeled
// y-axis. The axis floor drops below zero when the series does, so an
// overdrawn projection is visible rather than clipped.
func BalanceChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi < 0 {
		hi = 0
	}
	if lo > 0 {
		lo = 0
	}
	if hi == lo {
		hi = lo + 1
	}

	tickStep := chartTickStep((hi - lo) / 2)
	ceiling := math.Ceil(hi/tickStep) * tickStep
	floor := math.Floor(lo/tickStep) * tickStep
	span := ceiling - floor

	chartH := height
	if chartH < 4 {
		chartH = 4
	}

	yLabelW := len(formatChartLabel(ceiling))
	if w := len(formatChartLabel(floor)); w > yLabelW {
		yLabelW = w
	}
	yLabelW++
	if yLabelW < 5 {
		yLabelW = 5
	}

	// Chart area width
	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	n := len(values)

	// Downsample when there are more samples than columns.
	if n > chartW {
		sampled := make([]float64, chartW)
		var sampledLabels []string
		if len(labels) == n {
			sampledLabels = make([]string, chartW)
		}
		for i := range sampled {
			srcIdx := i * (n - 1) / (chartW - 1)
			sampled[i] = values[srcIdx]
			if sampledLabels != nil {
				sampledLabels[i] = labels[srcIdx]
			}
		}
		values = sampled
		labels = sampledLabels
		n = chartW
	}

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	fillStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	dangerStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	blankStyle := lipgloss.NewStyle().Background(t.Surface)

	zeroRow := 0
	if floor < 0 {
		zeroRow = int(math.Round(-floor / span * float64(chartH)))
	}

	var b strings.Builder

	for row := chartH; row >= 1; row-- {
		rowTop := floor + span*float64(row)/float64(chartH)
		rowBottom := floor + span*float64(row-1)/float64(chartH)

		label := ""
		switch row {
		case chartH:
			label = formatChartLabel(ceiling)
		case zeroRow:
			label = "0"
		case 1:
			if floor < 0 {
				label = formatChartLabel(floor)
			}
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for _, v := range values {
			style := fillStyle
			if v < 0 {
				style = dangerStyle
			}
			switch {
			case v >= rowTop:
				b.WriteString(style.Render("█"))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx > 8 {
					idx = 8
				}
				if idx < 1 {
					idx = 1
				}
				b.WriteString(style.Render(string(blocks[idx])))
			default:
				b.WriteString(blankStyle.Render(" "))
			}
		}
		b.WriteString("\n")
	}

	// X-axis line
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, formatChartLabel(floor))))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", n)))

	// First and last date labels under the axis
	if len(labels) == n && n > 0 {
		first, last := labels[0], labels[n-1]
		pad := n - len(first) - len(last)
		b.WriteString("\n")
		labelStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		b.WriteString(blankStyle.Render(strings.Repeat(" ", yLabelW+1)))
		if pad > 0 {
			b.WriteString(labelStyle.Render(first + strings.Repeat(" ", pad) + last))
		} else {
			b.WriteString(labelStyle.Render(first))
		}
	}

	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	if v < 0 {
		return "-" + formatChartLabel(-v)
	}
	switch {
	case v >= 1e9:
		if v == math.Trunc(v/1e9)*1e9 {
			return fmt.Sprintf("%.0fB", v/1e9)
		}
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
