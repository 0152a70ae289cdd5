// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (savings violet).
	PrimaryColor = lipgloss.Color("#8B5CF6")
	// IncomeColor marks income amounts.
	IncomeColor = lipgloss.Color("#55A3FF")
	// ExpenseColor marks expense amounts.
	ExpenseColor = lipgloss.Color("#FF6B6B")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFEAA7")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// IncomeStyle formats income amounts.
	IncomeStyle = lipgloss.NewStyle().
			Foreground(IncomeColor)

	// ExpenseStyle formats expense amounts.
	ExpenseStyle = lipgloss.NewStyle().
			Foreground(ExpenseColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	GoalIcon    = "🎯"
	MoneyIcon   = "💰"
	ChartIcon   = "📊"
	TrophyIcon  = "🏆"
	AlertIcon   = "⚠️"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(AlertIcon + " " + message)
}

// FormatTitle formats a section title.
func FormatTitle(title string) string {
	return TitleStyle.Render(title)
}

// RenderBox renders content in a styled box with a title.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	)

	return BoxStyle.Render(boxContent)
}

// AmountStyle picks the income or expense style for a signed rendering.
func AmountStyle(isIncome bool) lipgloss.Style {
	if isIncome {
		return IncomeStyle
	}
	return ExpenseStyle
}
