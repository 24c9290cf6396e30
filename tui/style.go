package tui

import "github.com/charmbracelet/lipgloss"

// Styles used throughout the TUI.
var (
	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("243"))

	styleHeader = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleInfo = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleHistory = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	styleHistoryCursor = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Bold(true)

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleNoColor = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	// Fallback swatch tones for terminals without 24-bit color.
	styleFallbackLight = lipgloss.NewStyle().
				Background(lipgloss.Color("7")).
				Foreground(lipgloss.Color("0"))

	styleFallbackDark = lipgloss.NewStyle().
				Background(lipgloss.Color("0")).
				Foreground(lipgloss.Color("7"))
)

// msgKind identifies how a status message should be styled.
type msgKind int

const (
	msgInfo msgKind = iota
	msgSuccess
	msgError
)

// renderMessage applies the style for a status message kind.
func renderMessage(text string, kind msgKind) string {
	switch kind {
	case msgSuccess:
		return styleSuccess.Render(text)
	case msgError:
		return styleError.Render(text)
	default:
		return styleInfo.Render(text)
	}
}
