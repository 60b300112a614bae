package render

import (
	"github.com/charmbracelet/lipgloss"
)

// TUITheme defines the color scheme for the TUI interface
type TUITheme struct {
	Name        string
	Description string

	Border lipgloss.Color

	Primary   lipgloss.Color // AI messages, titles
	Secondary lipgloss.Color // user messages
	Accent    lipgloss.Color // quick-action controls
	Highlight lipgloss.Color // freshly updated values
	Live      lipgloss.Color // "Live" match status
	Error     lipgloss.Color

	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

// Built-in TUI themes
var (
	// TokyoNightTheme is the default dark theme
	TokyoNightTheme = TUITheme{
		Name:        "tokyonight",
		Description: "Tokyo Night - Dark theme with blue accents",

		Border: lipgloss.Color("#414868"),

		Primary:   lipgloss.Color("#7aa2f7"),
		Secondary: lipgloss.Color("#9ece6a"),
		Accent:    lipgloss.Color("#bb9af7"),
		Highlight: lipgloss.Color("#4e4eff"),
		Live:      lipgloss.Color("#f7768e"),
		Error:     lipgloss.Color("#f7768e"),

		Text:     lipgloss.Color("#c0caf5"),
		TextDim:  lipgloss.Color("#565f89"),
		TextMute: lipgloss.Color("#3b4261"),
	}

	// PitchTheme is a green theme modeled on a cricket outfield
	PitchTheme = TUITheme{
		Name:        "pitch",
		Description: "Pitch - Outfield greens with a cream crease",

		Border: lipgloss.Color("#2d4a2b"),

		Primary:   lipgloss.Color("#a3d977"),
		Secondary: lipgloss.Color("#f2e8c9"),
		Accent:    lipgloss.Color("#e0b354"),
		Highlight: lipgloss.Color("#ffffff"),
		Live:      lipgloss.Color("#e0565b"),
		Error:     lipgloss.Color("#e0565b"),

		Text:     lipgloss.Color("#e6efe0"),
		TextDim:  lipgloss.Color("#7d9a72"),
		TextMute: lipgloss.Color("#4a6343"),
	}

	// FloodlightsTheme is a high-contrast night-match theme
	FloodlightsTheme = TUITheme{
		Name:        "floodlights",
		Description: "Floodlights - High contrast for night matches",

		Border: lipgloss.Color("#5c5c5c"),

		Primary:   lipgloss.Color("#ffd84d"),
		Secondary: lipgloss.Color("#5fd7ff"),
		Accent:    lipgloss.Color("#ff9f43"),
		Highlight: lipgloss.Color("#ffffff"),
		Live:      lipgloss.Color("#ff5f5f"),
		Error:     lipgloss.Color("#ff5f5f"),

		Text:     lipgloss.Color("#f0f0f0"),
		TextDim:  lipgloss.Color("#9e9e9e"),
		TextMute: lipgloss.Color("#626262"),
	}
)

// currentTUITheme holds the currently active TUI theme
var currentTUITheme = TokyoNightTheme

// GetTUITheme returns the currently active TUI theme
func GetTUITheme() TUITheme {
	return currentTUITheme
}

// SetTUITheme sets the active TUI theme by name
func SetTUITheme(name string) bool {
	theme, ok := GetTUIThemeByName(name)
	if ok {
		currentTUITheme = theme
	}
	return ok
}

// GetTUIThemeByName returns a TUI theme by its name
func GetTUIThemeByName(name string) (TUITheme, bool) {
	for _, t := range AvailableTUIThemes() {
		if t.Name == name {
			return t, true
		}
	}
	return TUITheme{}, false
}

// AvailableTUIThemes returns a list of all available TUI themes
func AvailableTUIThemes() []TUITheme {
	return []TUITheme{
		TokyoNightTheme,
		PitchTheme,
		FloodlightsTheme,
	}
}

// TUIThemeNames returns just the theme names for selection
func TUIThemeNames() []string {
	themes := AvailableTUIThemes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
