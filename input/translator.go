package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/countdown/render"
)

// Translator turns tcell events into actions. It remembers the mouse
// button state so a held button fires once per press.
type Translator struct {
	pressed bool
}

// NewTranslator creates a translator with no button held
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate decodes ev against the last frame's layout. focused selects
// text-entry bindings for the duration field.
func (t *Translator) Translate(ev tcell.Event, layout render.Layout, focused bool) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if focused {
			return translateFieldKey(ev)
		}
		return translateKey(ev)
	case *tcell.EventMouse:
		return t.translateMouse(ev, layout, focused)
	case *tcell.EventResize:
		return Action{Intent: IntentRedraw}
	}
	return Action{}
}

// translateKey maps hotkeys while the field is not focused
func translateKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return Action{Intent: IntentQuit}
	case tcell.KeyEnter:
		return Action{Intent: IntentToggle}
	case tcell.KeyTab:
		return Action{Intent: IntentFocus}
	case tcell.KeyF1:
		return Action{Intent: IntentTestStart}
	case tcell.KeyF2:
		return Action{Intent: IntentTestTick}
	case tcell.KeyF3:
		return Action{Intent: IntentTestEnd}
	case tcell.KeyRune:
	default:
		return Action{}
	}

	r := ev.Rune()
	switch r {
	case ' ':
		return Action{Intent: IntentToggle}
	case 'r', 'R':
		return Action{Intent: IntentReset}
	case 'm', 'M':
		return Action{Intent: IntentMute}
	case 'q', 'Q':
		return Action{Intent: IntentQuit}
	}
	// Typing a digit starts editing the duration
	if r >= '0' && r <= '9' {
		return Action{Intent: IntentType, Rune: r}
	}
	return Action{}
}

// translateFieldKey maps keys while editing the duration field
func translateFieldKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return Action{Intent: IntentQuit}
	case tcell.KeyEnter, tcell.KeyEscape, tcell.KeyTab:
		return Action{Intent: IntentBlur}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Action{Intent: IntentBackspace}
	case tcell.KeyCtrlU:
		return Action{Intent: IntentClear}
	case tcell.KeyRune:
		if r := ev.Rune(); unicode.IsPrint(r) {
			return Action{Intent: IntentType, Rune: r}
		}
	}
	return Action{}
}

var controlIntents = map[render.Control]Intent{
	render.ControlToggle:    IntentToggle,
	render.ControlReset:     IntentReset,
	render.ControlMute:      IntentMute,
	render.ControlInput:     IntentFocus,
	render.ControlTestStart: IntentTestStart,
	render.ControlTestTick:  IntentTestTick,
	render.ControlTestEnd:   IntentTestEnd,
}

func (t *Translator) translateMouse(ev *tcell.EventMouse, layout render.Layout, focused bool) Action {
	down := ev.Buttons()&tcell.Button1 != 0
	if !down || t.pressed {
		t.pressed = down
		return Action{}
	}
	t.pressed = true

	x, y := ev.Position()
	control := layout.Hit(x, y)
	if intent, ok := controlIntents[control]; ok {
		if intent == IntentFocus && focused {
			return Action{}
		}
		return Action{Intent: intent}
	}
	if focused {
		return Action{Intent: IntentBlur}
	}
	return Action{}
}
