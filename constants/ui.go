package constants

// UI Layout Constants
const (
	// DigitWidth and DigitHeight are the cell size of one block-font glyph
	DigitWidth  = 3
	DigitHeight = 5

	// DigitSpacing is the gap between big clock glyphs
	DigitSpacing = 1

	// InputFieldWidth is the visible width of the duration field
	InputFieldWidth = 12

	// ButtonGap is the horizontal gap between buttons in a row
	ButtonGap = 2
)

// UI Text
const (
	TitleText    = "Countdown Timer"
	InputLabel   = "Set Timer (seconds):"
	ExpiredText  = "Time's up"
	StartLabel   = "Start"
	PauseLabel   = "Pause"
	ResetLabel   = "Reset"
	MutedLabel   = "Muted"
	UnmutedLabel = "Sound"
	HelpText     = "space start/pause  r reset  m mute  tab edit  F1-F3 test  q quit"
)
