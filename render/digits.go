package render

import "github.com/lixenwraith/countdown/constants"

// glyphs is a 3x5 block font for the big clock; '#' cells are filled
var glyphs = map[rune][constants.DigitHeight]string{
	'0': {"###", "# #", "# #", "# #", "###"},
	'1': {" # ", "## ", " # ", " # ", "###"},
	'2': {"###", "  #", "###", "#  ", "###"},
	'3': {"###", "  #", "###", "  #", "###"},
	'4': {"# #", "# #", "###", "  #", "  #"},
	'5': {"###", "#  ", "###", "  #", "###"},
	'6': {"###", "#  ", "###", "# #", "###"},
	'7': {"###", "  #", "  #", "  #", "  #"},
	'8': {"###", "# #", "###", "# #", "###"},
	'9': {"###", "# #", "###", "  #", "###"},
	':': {"   ", " # ", "   ", " # ", "   "},
}

// bigTextWidth returns the cell width of text drawn in the block font
func bigTextWidth(text string) int {
	n := len([]rune(text))
	if n == 0 {
		return 0
	}
	return n*constants.DigitWidth + (n-1)*constants.DigitSpacing
}
