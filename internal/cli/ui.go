package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/tilings/pkg/gridded"
	"github.com/matzehuels/tilings/pkg/tiling"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
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

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

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

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)

	styleCell      = lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1)
	styleEmptyCell = lipgloss.NewStyle().Padding(0, 1)
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

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints rule statistics on a single line.
func printStats(children, passes int, cached bool) {
	var parts []string
	parts = append(parts, fmt.Sprintf("%d %s", children, plural(children, "child", "children")))
	if passes > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", passes, plural(passes, "pass", "passes")))
	}

	status := iconFresh
	statusStyle := styleComputed
	if cached {
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
	fmt.Println(line + StyleDim.Render(" · ") + statusStyle.Render(status))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// =============================================================================
// Tilings
// =============================================================================

// renderTiling draws t as a bordered grid, highest row first, followed by
// the legend, crossing obstructions and requirement lists.
func renderTiling(t *tiling.Tiling) string {
	cols, rows := t.Dimensions()
	if cols == 0 || rows == 0 {
		return StyleDim.Render(strings.TrimRight(t.String(), "\n"))
	}
	grid := make([][]string, rows)
	for i := range grid {
		row := rows - 1 - i
		grid[i] = make([]string, cols)
		for col := range cols {
			grid[i][col] = t.CellLabel(gridded.Cell{Col: col, Row: row})
		}
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		BorderRow(true).
		Rows(grid...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row >= 0 && row < len(grid) && grid[row][col] == "" {
				return styleEmptyCell
			}
			return styleCell
		})

	var b strings.Builder
	b.WriteString(tbl.Render())
	b.WriteString("\n")
	for _, l := range t.Legend() {
		b.WriteString(StyleValue.Render(l))
		b.WriteString("\n")
	}
	if crossing := t.CrossingObstructions(); len(crossing) > 0 {
		b.WriteString(StyleDim.Render("Crossing obstructions:"))
		b.WriteString("\n")
		for _, ob := range crossing {
			b.WriteString("  " + ob.String() + "\n")
		}
	}
	for i, list := range t.Requirements() {
		b.WriteString(StyleDim.Render(fmt.Sprintf("Requirement %d:", i)))
		b.WriteString("\n")
		for _, r := range list {
			b.WriteString("  " + r.String() + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
