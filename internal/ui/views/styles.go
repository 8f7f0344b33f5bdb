package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	InfoBox       lipgloss.Style
	Divider       lipgloss.Style
	Header        lipgloss.Style
	Label         lipgloss.Style
	Focus         lipgloss.Style
	Absorbed      lipgloss.Style
	Unchecked     lipgloss.Style
	Indeterminate lipgloss.Style
	Button        lipgloss.Style
	ButtonFocus   lipgloss.Style

	// Tiers[i] styles a checked box at tier i+1
	Tiers []lipgloss.Style
}

// NewStyles creates a new Styles instance; tierColors holds one colour per tier, lowest first
func NewStyles(tierColors []string) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Divider:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Header:        lipgloss.NewStyle().Bold(true),
		Label:         lipgloss.NewStyle(),
		Focus:         lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Absorbed:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Unchecked:     lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD")),
		Indeterminate: lipgloss.NewStyle().Foreground(lipgloss.Color("#5087F8")),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#2469F6")).
			Padding(0, 3),
		ButtonFocus: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5087F8")).
			Bold(true).
			Underline(true).
			Padding(0, 3),
		Tiers: tierStyles(tierColors),
	}
}

// Lower tiers only tint the border and mark; upper tiers fill the box
func tierStyles(colors []string) []lipgloss.Style {
	styles := make([]lipgloss.Style, len(colors))
	half := len(colors) / 2
	for i, c := range colors {
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(c))
		if i >= half {
			s = s.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color(c)).Bold(true)
		}
		styles[i] = s
	}
	return styles
}

// Tier returns the style for a checked box at tier (1-based); out of range tiers are clamped
func (s *Styles) Tier(tier int) lipgloss.Style {
	if len(s.Tiers) == 0 {
		return lipgloss.NewStyle()
	}
	if tier < 1 {
		tier = 1
	}
	if tier > len(s.Tiers) {
		tier = len(s.Tiers)
	}
	return s.Tiers[tier-1]
}
