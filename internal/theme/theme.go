// Package theme holds the light and dark color palettes. A Theme is a plain
// value: toggling returns a new Theme and never changes the receiver.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Mode selects a palette.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode converts a config value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Light, Dark:
		return Mode(s), nil
	case "":
		return Light, nil
	}
	return "", fmt.Errorf("theme: unknown mode %q", s)
}

// Palette lists every color the screens use.
type Palette struct {
	Primary         lipgloss.Color
	Secondary       lipgloss.Color
	Accent          lipgloss.Color
	Background      lipgloss.Color
	BackgroundLight lipgloss.Color
	BackgroundInput lipgloss.Color
	Border          lipgloss.Color
	Error           lipgloss.Color
	Text            lipgloss.Color
	TextSecondary   lipgloss.Color
	Badge           lipgloss.Color
	White           lipgloss.Color
	Shadow          lipgloss.Color
}

var lightPalette = Palette{
	Primary:         "#2c4a6d",
	Secondary:       "#81a7da",
	Accent:          "#224faa",
	Background:      "#f7f9fc",
	BackgroundLight: "#e8ecf3",
	BackgroundInput: "#f8f8f8",
	Border:          "#e0e0e0",
	Error:           "#3d6dbe",
	Text:            "#0d0f12",
	TextSecondary:   "#8d8e91",
	Badge:           "#81a7da",
	White:           "#ffffff",
	Shadow:          "#000000",
}

var darkPalette = Palette{
	Primary:         "#b4c4e9",
	Secondary:       "#6e86a8",
	Accent:          "#5a8ae8",
	Background:      "#141618",
	BackgroundLight: "#1c2026",
	BackgroundInput: "#22252a",
	Border:          "#2e343a",
	Error:           "#5a8ae8",
	Text:            "#f6f7f9",
	TextSecondary:   "#b4b7b8",
	Badge:           "#6e86a8",
	White:           "#141618",
	Shadow:          "#000000",
}

// Theme is the active mode and its palette.
type Theme struct {
	Mode   Mode
	Colors Palette
}

// New returns the Theme for mode. Unknown modes fall back to Light.
func New(mode Mode) Theme {
	if mode == Dark {
		return Theme{Mode: Dark, Colors: darkPalette}
	}
	return Theme{Mode: Light, Colors: lightPalette}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t.Mode == Dark {
		return New(Light)
	}
	return New(Dark)
}

// IsDark reports whether the dark palette is active.
func (t Theme) IsDark() bool {
	return t.Mode == Dark
}

// Icon is the toggle hint shown in the header: a moon invites switching to
// dark, a sun to light.
func (t Theme) Icon() string {
	if t.IsDark() {
		return "☀"
	}
	return "☾"
}
