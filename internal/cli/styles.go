// Package cli provides styled terminal output and confirmation prompts.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#3B82F6") // Blue
	// SuccessColor indicates on-track budgets and completed goals.
	SuccessColor = lipgloss.Color("#28A745") // Green
	// WarningColor indicates budgets approaching their limit.
	WarningColor = lipgloss.Color("#FFC107") // Yellow
	// ErrorColor indicates overspend and failures.
	ErrorColor = lipgloss.Color("#DC3545") // Red
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#6c757d") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error and alert messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// HeaderStyle is used for table headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	// BadgeStyle renders earned badges.
	BadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFA500"))
)

// TierStyle returns the style for a budget percentage.
func TierStyle(percent float64) lipgloss.Style {
	switch {
	case percent > 100:
		return ErrorStyle
	case percent > 80:
		return WarningStyle
	default:
		return SuccessStyle
	}
}
