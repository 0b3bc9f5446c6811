// Package cli provides styled terminal output using lipgloss.
package cli

import "github.com/charmbracelet/lipgloss"

var (
	// IncomeColor marks income amounts.
	IncomeColor = lipgloss.Color("#34C759")
	// ExpenseColor marks expense amounts.
	ExpenseColor = lipgloss.Color("#FF6B6B")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent text.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	// IncomeStyle formats income totals.
	IncomeStyle = lipgloss.NewStyle().
			Foreground(IncomeColor)

	// ExpenseStyle formats expense totals.
	ExpenseStyle = lipgloss.NewStyle().
			Foreground(ExpenseColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)
)

// Swatch renders a small colored block for a category color hex string.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}
