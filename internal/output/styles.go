package output

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: aliases, type names, file paths.
	ColorCyan = lipgloss.Color("14")

	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for partially resolved results.
	ColorYellow = lipgloss.Color("220")

	colorBoldRed = lipgloss.Color("204")

	colorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Resolution status constants.
const (
	StatusResolved = "resolved"
	StatusPartial  = "partial"
	StatusDropped  = "dropped"
	statusFailed   = "unresolved"
)

// StatusUnresolved is the status shown for aliases or types without a registration.
const StatusUnresolved = statusFailed

func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusResolved:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusPartial:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusDropped:
		return lipgloss.NewStyle().Faint(true)
	case statusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minColumnWidth keeps status words aligned across lines.
const minColumnWidth = 40

// FormatResolveLine renders "a:<alias> -> <type>  <status>" with a
// right-aligned, color-coded status suffix. An empty target is omitted.
func FormatResolveLine(alias, target, status string) string {
	path := alias
	if target != "" {
		path = alias + " -> " + target
	}

	padding := minColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("a:") + StyleNoun.Render(path) + strings.Repeat(" ", padding) + statusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
