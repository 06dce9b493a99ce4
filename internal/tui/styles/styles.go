package styles

import (
	"github.com/charmbracelet/lipgloss"

	"phonefield/internal/config"
)

// Theme defines the core UI styles
var Theme = struct {
	App      lipgloss.Style
	Title    lipgloss.Style
	Prefix   lipgloss.Style
	Valid    lipgloss.Style
	Invalid  lipgloss.Style
	Selected lipgloss.Style
	Entry    lipgloss.Style
	Help     lipgloss.Style
	Overlay  lipgloss.Style
}{
	App: lipgloss.NewStyle().
		Padding(1, 2),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7B61FF")).
		MarginBottom(1),
	Prefix: lipgloss.NewStyle().
		Bold(true),
	Valid: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")).
		Bold(true),
	Invalid: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F56F6F")),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7B61FF")).
		Bold(true),
	Entry: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#CCCCCC")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9")),
	Overlay: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1),
}

// Apply recolors the theme from the config.
func Apply(cfg *config.Config) {
	if cfg.Theme.Primary != "" {
		Theme.Title = Theme.Title.Foreground(lipgloss.Color(cfg.Theme.Primary))
		Theme.Selected = Theme.Selected.Foreground(lipgloss.Color(cfg.Theme.Primary))
	}
	if cfg.Theme.Valid != "" {
		Theme.Valid = Theme.Valid.Foreground(lipgloss.Color(cfg.Theme.Valid))
	}
	if cfg.Theme.Invalid != "" {
		Theme.Invalid = Theme.Invalid.Foreground(lipgloss.Color(cfg.Theme.Invalid))
	}
	if cfg.Theme.Muted != "" {
		Theme.Help = Theme.Help.Foreground(lipgloss.Color(cfg.Theme.Muted))
		Theme.Entry = Theme.Entry.Foreground(lipgloss.Color(cfg.Theme.Muted))
	}
}
