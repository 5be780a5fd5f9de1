package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/wayfinder/pkg/history"
	"github.com/matzehuels/wayfinder/pkg/solve"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// =============================================================================
// File Output
// =============================================================================

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints search statistics on a single line.
func printStats(rep *solve.Report) {
	parts := []string{
		fmt.Sprintf("%d iterations", rep.Iterations),
		fmt.Sprintf("max frontier %d", rep.MaxFrontier),
		fmt.Sprintf("%d generated", rep.Generated),
	}
	if rep.DepthLimit >= 0 {
		parts = append(parts, fmt.Sprintf("depth limit %d", rep.DepthLimit))
	}
	parts = append(parts, rep.Elapsed.Round(time.Microsecond).String())

	status := iconFresh
	statusStyle := styleComputed
	if rep.Cached {
		status = iconCached
		statusStyle = styleCached
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	line += StyleDim.Render(" · ") + statusStyle.Render(status)
	fmt.Println(line)
}

// =============================================================================
// Report Display
// =============================================================================

// printReport prints the outcome of one solve.
func printReport(rep *solve.Report) {
	switch {
	case rep.Found:
		printSuccess("%s solved with %s: cost %s in %d steps",
			StyleHighlight.Render(rep.Problem), rep.Strategy,
			StyleNumber.Render(formatCost(rep.Cost)), len(rep.Plan))
	case rep.Truncated:
		printWarning("%s: search stopped after %d iterations without a solution", rep.Problem, rep.Iterations)
	default:
		printError("%s: no solution found with %s", rep.Problem, rep.Strategy)
	}
	printStats(rep)
	if !rep.Found {
		return
	}

	printNewline()
	printKeyValue("Mode", rep.Mode)
	printKeyValue("Plan", formatPlan(rep.Plan))
	if rep.Final != "" {
		printNewline()
		fmt.Println(StyleDim.Render("Final state:"))
		for _, line := range strings.Split(strings.TrimRight(rep.Final, "\n"), "\n") {
			fmt.Println("  " + StyleValue.Render(line))
		}
	}
}

// printComparison prints one row per strategy.
func printComparison(reports []*solve.Report) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	best := -1
	for i, r := range reports {
		if r.Found && (best < 0 || r.Cost < reports[best].Cost) {
			best = i
		}
	}

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		cost, steps := "—", "—"
		if r.Found {
			cost = formatCost(r.Cost)
			steps = strconv.Itoa(len(r.Plan))
		}
		rows = append(rows, []string{
			r.Strategy,
			cost,
			steps,
			strconv.Itoa(r.Iterations),
			strconv.Itoa(r.MaxFrontier),
			strconv.Itoa(r.Generated),
			r.Elapsed.Round(time.Microsecond).String(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Strategy", "Cost", "Steps", "Iterations", "Frontier", "Generated", "Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case !reports[row].Found:
				return cellStyle.Foreground(colorDim)
			case row == best && col <= 1:
				return cellStyle.Foreground(colorGreen).Bold(true)
			}
			return cellStyle
		})
	fmt.Println(t.Render())
}

// printRuns prints recorded runs, one per line.
func printRuns(runs []*history.Run) {
	if len(runs) == 0 {
		printInfo("No recorded runs")
		return
	}
	for _, r := range runs {
		outcome := StyleSuccess.Render(iconSuccess)
		if !r.Report.Found {
			outcome = styleIconError.Render(iconError)
		}
		fmt.Printf("%s %s  %-14s %-7s cost %-6s %s\n",
			outcome,
			StyleDim.Render(r.ID),
			StyleValue.Render(r.Problem),
			r.Report.Strategy,
			formatCost(r.Report.Cost),
			StyleDim.Render(formatRelativeTime(r.CreatedAt)))
	}
}

func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}

func formatPlan(plan []string) string {
	if len(plan) == 0 {
		return StyleDim.Render("(already at goal)")
	}
	return strings.Join(plan, " "+iconArrow+" ")
}

// =============================================================================
// Utilities
// =============================================================================

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}
