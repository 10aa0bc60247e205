package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/countdown/constants"
)

// Row offsets from the top of the centered frame
const (
	rowTitle   = 0
	rowClock   = 2
	rowLabel   = 8
	rowInput   = 9
	rowButtons = 11
	rowBanner  = 13
	rowTests   = 15
	rowHelp    = 17

	frameHeight = 18
)

type button struct {
	control Control
	label   string
	bg      tcell.Color
}

// Renderer draws a View onto a tcell screen
type Renderer struct {
	base tcell.Style
}

// NewRenderer creates a renderer with the default palette
func NewRenderer() *Renderer {
	return &Renderer{
		base: tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText),
	}
}

// Draw renders a full frame and returns where the controls were placed.
// The caller is responsible for screen.Show.
func (r *Renderer) Draw(screen tcell.Screen, v View) Layout {
	width, height := screen.Size()
	layout := Layout{Controls: make(map[Control]Rect)}

	screen.SetStyle(r.base)
	screen.Clear()

	top := (height - frameHeight) / 2
	if top < 0 {
		top = 0
	}

	r.drawCentered(screen, width, top+rowTitle, constants.TitleText, r.base.Bold(true))
	r.drawClock(screen, width, top+rowClock, v)

	r.drawCentered(screen, width, top+rowLabel, constants.InputLabel, r.base.Foreground(RgbDimText))
	layout.Controls[ControlInput] = r.drawInput(screen, width, top+rowInput, v)

	toggle := button{ControlToggle, constants.StartLabel, RgbStartBg}
	if v.Running {
		toggle = button{ControlToggle, constants.PauseLabel, RgbPauseBg}
	}
	mute := button{ControlMute, constants.UnmutedLabel, RgbSoundOnBg}
	if v.Muted {
		mute = button{ControlMute, constants.MutedLabel, RgbSoundOffBg}
	}
	r.drawButtons(screen, width, top+rowButtons, layout, []button{
		toggle,
		{ControlReset, constants.ResetLabel, RgbResetBg},
		mute,
	})

	if v.Expired {
		r.drawCentered(screen, width, top+rowBanner, constants.ExpiredText, r.base.Foreground(RgbExpiredText).Bold(true))
	}

	r.drawButtons(screen, width, top+rowTests, layout, []button{
		{ControlTestStart, "Test Start", RgbTestBg},
		{ControlTestTick, "Test Tick", RgbTestBg},
		{ControlTestEnd, "Test End", RgbTestBg},
	})

	r.drawCentered(screen, width, top+rowHelp, constants.HelpText, r.base.Foreground(RgbDimText))

	return layout
}

// drawClock draws the time in the block font, or as plain text when it does not fit
func (r *Renderer) drawClock(screen tcell.Screen, width, y int, v View) {
	color := RgbClockIdle
	switch {
	case v.Expired:
		color = RgbClockExpired
	case v.Running:
		color = RgbClockRunning
	}
	style := r.base.Foreground(color)

	bigWidth := bigTextWidth(v.Clock)
	if bigWidth > width {
		r.drawCentered(screen, width, y+constants.DigitHeight/2, v.Clock, style.Bold(true))
		return
	}

	x := (width - bigWidth) / 2
	fill := r.base.Background(color)
	for _, ch := range v.Clock {
		glyph, ok := glyphs[ch]
		if ok {
			for row, line := range glyph {
				for col, cell := range line {
					if cell == '#' {
						screen.SetContent(x+col, y+row, ' ', nil, fill)
					}
				}
			}
		}
		x += constants.DigitWidth + constants.DigitSpacing
	}
}

// drawInput draws the duration field, showing the tail of over-long text
func (r *Renderer) drawInput(screen tcell.Screen, width, y int, v View) Rect {
	fieldWidth := constants.InputFieldWidth
	x := (width - fieldWidth) / 2
	if x < 0 {
		x = 0
	}

	bg := RgbInputBg
	if v.InputFocused {
		bg = RgbInputFocus
	}
	style := r.base.Background(bg)

	text := []rune(v.Input)
	visible := fieldWidth - 1 // room for the cursor
	if len(text) > visible {
		text = text[len(text)-visible:]
	}

	for i := 0; i < fieldWidth; i++ {
		ch := ' '
		if i < len(text) {
			ch = text[i]
		}
		screen.SetContent(x+i, y, ch, nil, style)
	}
	if v.InputFocused {
		screen.SetContent(x+len(text), y, '_', nil, style.Bold(true))
	}

	return Rect{X: x, Y: y, W: fieldWidth, H: 1}
}

// drawButtons lays a centered row of buttons and records their rects in layout
func (r *Renderer) drawButtons(screen tcell.Screen, width, y int, layout Layout, buttons []button) {
	total := 0
	for i, b := range buttons {
		total += len(b.label) + 2
		if i > 0 {
			total += constants.ButtonGap
		}
	}

	x := (width - total) / 2
	if x < 0 {
		x = 0
	}
	for _, b := range buttons {
		text := " " + b.label + " "
		style := r.base.Background(b.bg).Foreground(RgbButtonText).Bold(true)
		r.drawText(screen, x, y, text, style)
		layout.Controls[b.control] = Rect{X: x, Y: y, W: len(text), H: 1}
		x += len(text) + constants.ButtonGap
	}
}

func (r *Renderer) drawCentered(screen tcell.Screen, width, y int, text string, style tcell.Style) {
	x := (width - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(screen, x, y, text, style)
}

func (r *Renderer) drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
