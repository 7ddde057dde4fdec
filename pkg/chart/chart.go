package chart

import (
	"fmt"
	"strings"

	"github.com/sherine-k/episim/pkg/simulation"
	"github.com/sherine-k/episim/pkg/stats"
)

const (
	chartWidth  = 80
	chartHeight = 20
)

// Generator generates ASCII charts
type Generator struct {
	width  int
	height int
}

// NewGenerator creates a new chart generator
func NewGenerator() *Generator {
	return &Generator{
		width:  chartWidth,
		height: chartHeight,
	}
}

// GenerateEpidemicCurve generates an ASCII chart of active infections per day
func (g *Generator) GenerateEpidemicCurve(days []simulation.Census) string {
	if len(days) == 0 {
		return "No data to display"
	}

	var sb strings.Builder

	// Header
	sb.WriteString("\n")
	sb.WriteString("Active Infections Over Time\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	peak := 0
	for _, d := range days {
		peak = max(peak, d.Active())
	}

	plotWidth := g.width - 6
	columns := min(len(days), plotWidth)

	for row := g.height; row >= 1; row-- {
		// Smallest count that fills this row
		threshold := float64(row) * float64(peak) / float64(g.height)

		sb.WriteString(fmt.Sprintf("%4d |", int(threshold+0.5)))
		for x := 0; x < columns; x++ {
			d := days[x*len(days)/columns]

			switch {
			case peak == 0:
				sb.WriteString(" ")
			case float64(d.Infectious) >= threshold:
				sb.WriteString("█")
			case float64(d.Active()) >= threshold:
				sb.WriteString("▒")
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	// X-axis
	sb.WriteString("     +")
	sb.WriteString(strings.Repeat("-", columns))
	sb.WriteString("\n")

	// X-axis labels - one mark per week
	labelLine := make([]rune, columns)
	for i := range labelLine {
		labelLine[i] = ' '
	}
	for day := 0; day < len(days); day += 7 {
		position := day * columns / len(days)
		marker := fmt.Sprintf("%dd", day)

		if position+len(marker) <= columns {
			for i, ch := range marker {
				labelLine[position+i] = ch
			}
		}
	}
	sb.WriteString("      ")
	sb.WriteString(strings.TrimRight(string(labelLine), " "))
	sb.WriteString("\n")

	// Legend
	sb.WriteString("\n")
	sb.WriteString("Legend:\n")
	sb.WriteString("    █ - Infectious\n")
	sb.WriteString("    ▒ - Incubating\n")
	sb.WriteString("\n")

	return sb.String()
}

// GenerateSummary generates a summary of the run
func (g *Generator) GenerateSummary(s stats.Summary) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("Run Summary\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Days Simulated: %d\n", s.Days))
	sb.WriteString(fmt.Sprintf("  - Population: %d\n", s.Population))
	sb.WriteString(fmt.Sprintf("  - Peak Active Infections: %d (day %d)\n", s.PeakActive, s.PeakDay))
	sb.WriteString(fmt.Sprintf("  - Ever Infected: %d (%s)\n", s.EverInfected, formatPercent(s.AttackRate)))
	sb.WriteString(fmt.Sprintf("  - Recovered: %d\n", s.Recovered))
	sb.WriteString(fmt.Sprintf("  - Dead: %d\n", s.Dead))
	sb.WriteString("\n")

	return sb.String()
}

// GenerateDailyTable generates a per-day table of the recorded census
func (g *Generator) GenerateDailyTable(days []simulation.Census, limit int) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("Daily Census")
	if limit > 0 && limit < len(days) {
		sb.WriteString(fmt.Sprintf(" (showing first %d days)", limit))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("%5s %8s %8s %8s %8s %8s %7s %7s %7s\n",
		"day", "susc", "incub", "infect", "recov", "dead", "masked", "dist", "vacc"))

	displayCount := len(days)
	if limit > 0 && limit < displayCount {
		displayCount = limit
	}

	for i := 0; i < displayCount; i++ {
		d := days[i]
		sb.WriteString(fmt.Sprintf("%5d %8d %8d %8d %8d %8d %7d %7d %7d\n",
			d.Day,
			d.Susceptible,
			d.Infected,
			d.Infectious,
			d.Recovered,
			d.Dead,
			d.Masked,
			d.Distancing,
			d.PartiallyVaccinated+d.FullyVaccinated))
	}

	if limit > 0 && limit < len(days) {
		sb.WriteString(fmt.Sprintf("\n... and %d more days\n", len(days)-limit))
	}

	sb.WriteString("\n")

	return sb.String()
}

// formatPercent formats a ratio as a percentage
func formatPercent(r float64) string {
	return fmt.Sprintf("%.1f%%", r*100)
}
