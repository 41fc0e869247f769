package cli

import (
	"fmt"
	"io"
	"strings"
)

// ColorTheme represents a set of colors for the CLI
type ColorTheme struct {
	Name    string
	Success string
	Error   string
	Warning string
	Info    string
	Header  string
	Muted   string
}

// Available themes, named like the TUI palettes
var (
	DefaultTheme = ColorTheme{
		Name:    "default",
		Success: colorGreen,
		Error:   colorRed,
		Warning: colorYellow,
		Info:    colorBlue,
		Header:  colorPurple + colorBold,
		Muted:   colorGray,
	}

	DarkTheme = ColorTheme{
		Name:    "dark",
		Success: colorGreen,
		Error:   colorRed,
		Warning: colorYellow,
		Info:    colorPurple,
		Header:  colorWhite + colorBold,
		Muted:   colorGray,
	}

	LightTheme = ColorTheme{
		Name:    "light",
		Success: "\033[38;5;28m",
		Error:   "\033[38;5;160m",
		Warning: "\033[38;5;130m",
		Info:    "\033[38;5;25m",
		Header:  "\033[38;5;54m" + colorBold,
		Muted:   "\033[38;5;243m",
	}

	// Plain text, for screen readers and pipes
	MonochromeTheme = ColorTheme{Name: "monochrome"}
)

// List of all available themes
var AvailableThemes = []ColorTheme{
	DefaultTheme,
	DarkTheme,
	LightTheme,
	MonochromeTheme,
}

// Current active theme, starts with default
var CurrentTheme = DefaultTheme

// Terminal colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// SetTheme sets the current theme by name
func SetTheme(themeName string) bool {
	for _, theme := range AvailableThemes {
		if theme.Name == themeName {
			CurrentTheme = theme
			return true
		}
	}
	return false
}

// GetThemeNames returns all available theme names
func GetThemeNames() []string {
	var names []string
	for _, theme := range AvailableThemes {
		names = append(names, theme.Name)
	}
	return names
}

func paint(color, text string) string {
	if color == "" {
		return text
	}
	return color + text + colorReset
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintln(w, paint(CurrentTheme.Success, "✓ "+message))
}

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	fmt.Fprintln(w, paint(CurrentTheme.Error, "✗ "+message))
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintln(w, paint(CurrentTheme.Warning, "! "+message))
}

// PrintInfo prints an informational message
func PrintInfo(w io.Writer, message string) {
	fmt.Fprintln(w, paint(CurrentTheme.Info, message))
}

// PrintHeader prints a section header
func PrintHeader(w io.Writer, message string) {
	fmt.Fprintln(w, paint(CurrentTheme.Header, message))
	fmt.Fprintln(w, strings.Repeat("─", len([]rune(message))))
}

// PrintMuted prints secondary detail lines
func PrintMuted(w io.Writer, message string) {
	fmt.Fprintln(w, paint(CurrentTheme.Muted, message))
}
