package styles

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Theme holds the structural styling knobs shared by styles: stroke widths,
// fonts and background. Primitive colors (level bars, arrows) are data
// carried by the scene, not theme settings.
//
// Zero fields fall back to [DefaultTheme] values, so a partial theme file
// only overrides what it mentions.
type Theme struct {
	Background      string  `toml:"background"`
	TextColor       string  `toml:"text_color"`
	FontFamily      string  `toml:"font_family"`
	FontSize        float64 `toml:"font_size"`
	TitleSize       float64 `toml:"title_size"`
	LevelWidth      float64 `toml:"level_width"`
	ConnectionWidth float64 `toml:"connection_width"`
	ArrowWidth      float64 `toml:"arrow_width"`
	GapWidth        float64 `toml:"gap_width"`
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Background:      "white",
		TextColor:       "black",
		FontFamily:      "Helvetica, Arial, sans-serif",
		FontSize:        13,
		TitleSize:       18,
		LevelWidth:      2,
		ConnectionWidth: 1,
		ArrowWidth:      1.5,
		GapWidth:        6,
	}
}

func (t Theme) withDefaults() Theme {
	def := DefaultTheme()
	if t.Background == "" {
		t.Background = def.Background
	}
	if t.TextColor == "" {
		t.TextColor = def.TextColor
	}
	if t.FontFamily == "" {
		t.FontFamily = def.FontFamily
	}
	if t.FontSize == 0 {
		t.FontSize = def.FontSize
	}
	if t.TitleSize == 0 {
		t.TitleSize = def.TitleSize
	}
	if t.LevelWidth == 0 {
		t.LevelWidth = def.LevelWidth
	}
	if t.ConnectionWidth == 0 {
		t.ConnectionWidth = def.ConnectionWidth
	}
	if t.ArrowWidth == 0 {
		t.ArrowWidth = def.ArrowWidth
	}
	if t.GapWidth == 0 {
		t.GapWidth = def.GapWidth
	}
	return t
}

// LoadTheme reads a TOML theme file. Fields absent from the file keep
// their built-in defaults when the theme is applied.
func LoadTheme(path string) (Theme, error) {
	var t Theme
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return Theme{}, fmt.Errorf("load theme %s: %w", path, err)
	}
	return t, nil
}

// ParseTheme decodes a TOML theme from a string.
func ParseTheme(data string) (Theme, error) {
	var t Theme
	if _, err := toml.Decode(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme: %w", err)
	}
	return t, nil
}
