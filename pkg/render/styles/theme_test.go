package styles

import "testing"

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme(`
background = "ivory"
level_width = 3.0
font_size = 11.0
`)
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	if th.Background != "ivory" || th.LevelWidth != 3.0 || th.FontSize != 11.0 {
		t.Errorf("theme = %+v", th)
	}
}

func TestThemePartialKeepsDefaults(t *testing.T) {
	th, err := ParseTheme(`background = "ivory"`)
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}

	eff := th.withDefaults()
	def := DefaultTheme()
	if eff.Background != "ivory" {
		t.Errorf("Background = %q, want ivory", eff.Background)
	}
	if eff.FontSize != def.FontSize || eff.LevelWidth != def.LevelWidth {
		t.Errorf("unset fields lost defaults: %+v", eff)
	}
}

func TestParseThemeInvalid(t *testing.T) {
	if _, err := ParseTheme(`background = `); err == nil {
		t.Error("expected error for malformed TOML")
	}
}
