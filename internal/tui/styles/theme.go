package styles

import (
	"invisinote/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// ThemeStyles holds every style the TUI renders with.
type ThemeStyles struct {
	App          lipgloss.Style
	Title        lipgloss.Style
	Label        lipgloss.Style
	Selected     lipgloss.Style
	Unselected   lipgloss.Style
	Word         lipgloss.Style
	Char         lipgloss.Style
	Announcement lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
	Editor       lipgloss.Style
}

// Theme defines the core UI styles
var Theme = NewTheme(config.GetTheme("default"))

// Apply switches Theme to the named palette. Unknown names use the default.
func Apply(name string) {
	Theme = NewTheme(config.GetTheme(name))
}

// NewTheme builds styles from a palette of ANSI 256 colour codes.
func NewTheme(palette map[string]string) ThemeStyles {
	color := func(key string) lipgloss.Color {
		return lipgloss.Color(palette[key])
	}
	return ThemeStyles{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(color("primary")).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(color("info")),
		Selected: lipgloss.NewStyle().
			Foreground(color("success")).
			Bold(true),
		Unselected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")),
		Word: lipgloss.NewStyle().
			Underline(true).
			Foreground(color("emphasis")),
		Char: lipgloss.NewStyle().
			Reverse(true).
			Bold(true),
		Announcement: lipgloss.NewStyle().
			Foreground(color("success")),
		Error: lipgloss.NewStyle().
			Foreground(color("error")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5A9")),
		Editor: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color("border")),
	}
}
