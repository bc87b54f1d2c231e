package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes the colors painted onto the menu surface and the Lip Gloss
// styles used by the command line output.
type Styles struct {
	// Tiers holds one foreground color per emphasis tier, brightest first.
	Tiers   [3]string
	Message string

	TableHeader *lipgloss.Style
	TableRow    *lipgloss.Style
	Error       *lipgloss.Style
	Info        *lipgloss.Style
}

var defaultStyles = Styles{
	Tiers: [3]string{
		"11", // yellow
		"7",  // gray
		"8",  // dark gray
	},
	Message: "7",
	TableHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	TableRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Tier returns the foreground color for an emphasis tier. Tiers beyond the
// palette reuse the dimmest color.
func (s *Styles) Tier(tier int) string {
	if tier < 0 {
		tier = 0
	}
	if tier >= len(s.Tiers) {
		tier = len(s.Tiers) - 1
	}
	return s.Tiers[tier]
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
