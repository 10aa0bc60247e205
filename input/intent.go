package input

// Intent is a user action decoded from a terminal event
type Intent int

const (
	IntentNone Intent = iota
	IntentToggle
	IntentReset
	IntentMute
	IntentTestStart
	IntentTestTick
	IntentTestEnd
	IntentFocus
	IntentBlur
	IntentType
	IntentBackspace
	IntentClear
	IntentRedraw
	IntentQuit
)

var intentNames = map[Intent]string{
	IntentNone:      "none",
	IntentToggle:    "toggle",
	IntentReset:     "reset",
	IntentMute:      "mute",
	IntentTestStart: "test-start",
	IntentTestTick:  "test-tick",
	IntentTestEnd:   "test-end",
	IntentFocus:     "focus",
	IntentBlur:      "blur",
	IntentType:      "type",
	IntentBackspace: "backspace",
	IntentClear:     "clear",
	IntentRedraw:    "redraw",
	IntentQuit:      "quit",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// Action is an intent plus the rune typed, for IntentType
type Action struct {
	Intent Intent
	Rune   rune
}

// IsEdit reports whether the action changes the input text
func (a Action) IsEdit() bool {
	switch a.Intent {
	case IntentType, IntentBackspace, IntentClear:
		return true
	}
	return false
}

// EditText applies an edit action to text; other actions return text unchanged
func EditText(text string, a Action) string {
	switch a.Intent {
	case IntentType:
		return text + string(a.Rune)
	case IntentBackspace:
		r := []rune(text)
		if len(r) == 0 {
			return text
		}
		return string(r[:len(r)-1])
	case IntentClear:
		return ""
	}
	return text
}
