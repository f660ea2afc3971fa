package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.RGBA
		wantErr  bool
	}{
		{ColorGreenHex, color.RGBA{R: 0x1F, G: 0x77, B: 0x1F, A: 255}, false},
		{ColorYellowHex, color.RGBA{R: 0x9F, G: 0x9F, B: 0x13, A: 255}, false},
		{ColorRedHex, color.RGBA{R: 0x9F, G: 0x13, B: 0x13, A: 255}, false},
		{"1F771F", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := parseHexColor(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseHexColor(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseHexColor(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("parseHexColor(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestCompactTheme_ButtonColors(t *testing.T) {
	th := NewCompactTheme()

	if got := th.Color(theme.ColorNameSuccess, theme.VariantDark); got != (color.RGBA{R: 0x1F, G: 0x77, B: 0x1F, A: 255}) {
		t.Errorf("Unexpected success color %v", got)
	}
	if got := th.Color(theme.ColorNameError, theme.VariantLight); got != (color.RGBA{R: 0x9F, G: 0x13, B: 0x13, A: 255}) {
		t.Errorf("Unexpected error color %v", got)
	}
}
