package countdown

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/countdown/constants"
)

// ParseInput reads the leading integer of free-form duration text.
// Anything after the digits is ignored ("12s" is 12). Empty, non-numeric,
// negative and overflowing input all yield 0.
func ParseInput(text string) int {
	s := strings.TrimSpace(text)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ResetValue is the duration restored by reset: the parsed input, or
// DefaultSeconds when the input holds no positive value
func ResetValue(text string) int {
	if n := ParseInput(text); n > 0 {
		return n
	}
	return constants.DefaultSeconds
}
