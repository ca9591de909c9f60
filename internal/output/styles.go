package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Named constants for every ANSI 256 color the CLI uses.
var (
	// ColorCyan is used for identifiable nouns: template names, output roots.
	ColorCyan = lipgloss.Color("14")

	// colorGreen is used for the "created" status.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "overwritten" status.
	ColorYellow = lipgloss.Color("220")

	// colorGreenCheck is used for the completion checkmark.
	colorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleBold styles tree roots and summary lines.
	StyleBold = lipgloss.NewStyle().Bold(true)
)

// Entry status values reported by the materializers.
const (
	StatusCreated     = "created"
	StatusExists      = "exists"
	StatusOverwritten = "overwritten"
)

// statusStyle returns the style for a status string.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusOverwritten:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusExists:
		return StyleDim
	default:
		return lipgloss.NewStyle()
	}
}

// FormatStatus renders a status word in its color.
func FormatStatus(status string) string {
	return statusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}
