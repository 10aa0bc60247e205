package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(230, 230, 240) // Near white
	RgbDimText    = tcell.NewRGBColor(140, 140, 160) // Muted gray
	RgbButtonText = tcell.NewRGBColor(255, 255, 255) // White

	RgbClockIdle    = tcell.NewRGBColor(230, 230, 240) // Stopped digits
	RgbClockRunning = tcell.NewRGBColor(50, 255, 50)   // Counting digits
	RgbClockExpired = tcell.NewRGBColor(255, 80, 80)   // Zero digits

	RgbStartBg     = tcell.NewRGBColor(34, 160, 70)   // Green
	RgbPauseBg     = tcell.NewRGBColor(210, 160, 0)   // Yellow
	RgbResetBg     = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbSoundOnBg   = tcell.NewRGBColor(60, 110, 220)  // Blue
	RgbSoundOffBg  = tcell.NewRGBColor(100, 100, 110) // Gray
	RgbTestBg      = tcell.NewRGBColor(128, 60, 170)  // Purple
	RgbInputBg     = tcell.NewRGBColor(50, 52, 70)    // Field
	RgbInputFocus  = tcell.NewRGBColor(80, 84, 120)   // Focused field
	RgbExpiredText = tcell.NewRGBColor(255, 80, 80)   // Banner
)
