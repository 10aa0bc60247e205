package render

import "github.com/lixenwraith/countdown/countdown"

// View is everything the renderer needs from one frame of widget state
type View struct {
	Clock        string
	Running      bool
	Muted        bool
	Expired      bool
	Input        string
	InputFocused bool
}

// NewView derives a view from a timer snapshot
func NewView(s countdown.State, inputFocused bool) View {
	return View{
		Clock:        FormatClock(s.Remaining),
		Running:      s.Running,
		Muted:        s.Muted,
		Expired:      s.Expired(),
		Input:        s.Input,
		InputFocused: inputFocused,
	}
}
