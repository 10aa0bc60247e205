// Package widget wires the countdown timer to a terminal screen, a tick
// schedule and the cue player. All state changes happen on the goroutine
// running Run, or on the caller's goroutine when driven directly in tests.
package widget

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/countdown/constants"
	"github.com/lixenwraith/countdown/countdown"
	"github.com/lixenwraith/countdown/engine"
	"github.com/lixenwraith/countdown/input"
	"github.com/lixenwraith/countdown/render"
)

// Player plays a cue; errors are diagnostics only
type Player interface {
	Play(cue countdown.Cue) error
}

// Options configures a new Widget
type Options struct {
	// Input is the initial duration text
	Input string
	Muted bool

	// Clock defaults to the system clock
	Clock engine.Clock

	// Player may be nil, in which case cues are silent
	Player Player
}

// Widget is one countdown timer bound to a screen
type Widget struct {
	screen     tcell.Screen
	timer      *countdown.Timer
	schedule   *engine.TickSchedule
	player     Player
	renderer   *render.Renderer
	translator *input.Translator

	layout  render.Layout
	focused bool
	closed  bool
}

// New creates an idle widget showing the reset value of opts.Input
func New(screen tcell.Screen, opts Options) *Widget {
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewSystemClock()
	}

	timer := countdown.NewTimer(opts.Input)
	if opts.Muted {
		timer.ToggleMute()
	}

	return &Widget{
		screen:     screen,
		timer:      timer,
		schedule:   engine.NewTickSchedule(clock, constants.TickInterval),
		player:     opts.Player,
		renderer:   render.NewRenderer(),
		translator: input.NewTranslator(),
	}
}

// State returns the current timer snapshot
func (w *Widget) State() countdown.State {
	return w.timer.State()
}

// Focused reports whether the duration field has keyboard focus
func (w *Widget) Focused() bool {
	return w.focused
}

// TickerArmed reports whether the ticking process is scheduled
func (w *Widget) TickerArmed() bool {
	return w.schedule.Armed()
}

// Dispatch applies one user action
func (w *Widget) Dispatch(a input.Action) {
	if w.closed {
		return
	}

	switch a.Intent {
	case input.IntentToggle:
		if w.timer.Running() {
			w.timer.Pause()
			w.commit(nil)
		} else {
			w.commit(w.timer.Start())
		}
	case input.IntentReset:
		w.timer.Reset()
		w.commit(nil)
	case input.IntentMute:
		w.timer.ToggleMute()
	case input.IntentTestStart:
		w.playCue(countdown.CueStart)
	case input.IntentTestTick:
		w.playCue(countdown.CueTick)
	case input.IntentTestEnd:
		w.playCue(countdown.CueEnd)
	case input.IntentFocus:
		w.focused = true
	case input.IntentBlur:
		w.focused = false
	case input.IntentType, input.IntentBackspace, input.IntentClear:
		text := w.timer.State().Input
		if !w.focused {
			// A digit typed outside the field replaces the duration
			w.focused = true
			text = ""
		}
		w.timer.SetInput(input.EditText(text, a))
		w.commit(nil)
	}
}

// HandleTick runs one firing of the ticking process
func (w *Widget) HandleTick() {
	if w.closed {
		return
	}
	w.commit(w.timer.Tick())
}

// HandleEvent translates and applies a terminal event; false means quit
func (w *Widget) HandleEvent(ev tcell.Event) bool {
	a := w.translator.Translate(ev, w.layout, w.focused)
	switch a.Intent {
	case input.IntentQuit:
		return false
	case input.IntentRedraw:
		w.screen.Sync()
	default:
		w.Dispatch(a)
	}
	return true
}

// Draw renders the current state
func (w *Widget) Draw() {
	w.layout = w.renderer.Draw(w.screen, render.NewView(w.timer.State(), w.focused))
	w.screen.Show()
}

// Run processes terminal events and ticks until the user quits or ctx is
// done. The widget is closed on return.
func (w *Widget) Run(ctx context.Context) error {
	defer w.Close()

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := w.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	w.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !w.HandleEvent(ev) {
				return nil
			}

		case <-w.schedule.C():
			w.HandleTick()
		}
		w.Draw()
	}
}

// Close cancels the ticking process; later ticks and actions are ignored
func (w *Widget) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.schedule.Cancel()
}

// commit re-arms or cancels the ticker for the committed state, then plays the cues
func (w *Widget) commit(cues []countdown.Cue) {
	w.schedule.Sync(w.timer.State().ShouldTick())
	for _, cue := range cues {
		w.playCue(cue)
	}
}

// playCue plays cue unless muted; playback failures never touch timer state
func (w *Widget) playCue(cue countdown.Cue) {
	if w.timer.Muted() || w.player == nil {
		return
	}
	if err := w.player.Play(cue); err != nil {
		log.Printf("widget: %v", err)
	}
}
