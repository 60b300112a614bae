package render

import (
	"testing"
)

func TestTUITheme_Structure(t *testing.T) {
	for _, theme := range AvailableTUIThemes() {
		t.Run(theme.Name, func(t *testing.T) {
			if theme.Description == "" {
				t.Errorf("theme %s has empty description", theme.Name)
			}
			colors := map[string]string{
				"border":    string(theme.Border),
				"primary":   string(theme.Primary),
				"secondary": string(theme.Secondary),
				"accent":    string(theme.Accent),
				"highlight": string(theme.Highlight),
				"live":      string(theme.Live),
				"error":     string(theme.Error),
				"text":      string(theme.Text),
				"textDim":   string(theme.TextDim),
				"textMute":  string(theme.TextMute),
			}
			for name, c := range colors {
				if c == "" {
					t.Errorf("theme %s has empty %s color", theme.Name, name)
				}
			}
		})
	}
}

func TestSetTUITheme(t *testing.T) {
	defer SetTUITheme("tokyonight")

	if !SetTUITheme("pitch") {
		t.Fatal("SetTUITheme(pitch) = false")
	}
	if GetTUITheme().Name != "pitch" {
		t.Errorf("GetTUITheme().Name = %s", GetTUITheme().Name)
	}

	if SetTUITheme("nonexistent") {
		t.Error("unknown theme should be rejected")
	}
	if GetTUITheme().Name != "pitch" {
		t.Error("rejected theme must not change the active one")
	}
}

func TestTUIThemeNames(t *testing.T) {
	names := TUIThemeNames()
	if len(names) != len(AvailableTUIThemes()) {
		t.Fatalf("TUIThemeNames() = %v", names)
	}
	if names[0] != "tokyonight" {
		t.Errorf("default theme should come first, got %s", names[0])
	}
}
