package countdown

import (
	"strconv"
	"testing"

	"github.com/lixenwraith/countdown/constants"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"plain", "60", 60},
		{"single digit", "7", 7},
		{"zero", "0", 0},
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"surrounding spaces", "  42 ", 42},
		{"trailing letters", "12abc", 12},
		{"decimal truncates", "12.9", 12},
		{"exponent ignored", "1e3", 1},
		{"leading letters", "abc12", 0},
		{"explicit plus", "+15", 15},
		{"negative clamps", "-5", 0},
		{"bare sign", "-", 0},
		{"overflow", "99999999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseInput(tt.text); got != tt.want {
				t.Errorf("ParseInput(%q): expected %d, got %d", tt.text, tt.want, got)
			}
		})
	}
}

func TestResetValueFallsBackToDefault(t *testing.T) {
	for _, text := range []string{"", "abc", "0", "-10", "  "} {
		if got := ResetValue(text); got != constants.DefaultSeconds {
			t.Errorf("ResetValue(%q): expected %d, got %d", text, constants.DefaultSeconds, got)
		}
	}
}

func TestResetValueKeepsPositiveInput(t *testing.T) {
	for n := 1; n <= 600; n += 37 {
		text := strconv.Itoa(n)
		if got := ResetValue(text); got != n {
			t.Errorf("ResetValue(%q): expected %d, got %d", text, n, got)
		}
	}
}
