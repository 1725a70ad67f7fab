// Package style centralizes the lipgloss styles used for terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	ErrorColor   = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "28", Dark: "42"}
	WarningColor = lipgloss.AdaptiveColor{Light: "172", Dark: "214"}
	HeadingColor = lipgloss.AdaptiveColor{Light: "57", Dark: "105"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "245", Dark: "243"}
	PathColor    = lipgloss.AdaptiveColor{Light: "31", Dark: "39"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)

	BoldStyle = lipgloss.NewStyle().
			Bold(true)
)

// Error renders s in the error style
func Error(s string) string {
	return ErrorStyle.Render(s)
}

// Success renders s in the success style
func Success(s string) string {
	return SuccessStyle.Render(s)
}

// Path renders a filesystem path for display
func Path(s string) string {
	return PathStyle.Render(s)
}

// Bold renders s in bold
func Bold(s string) string {
	return BoldStyle.Render(s)
}
