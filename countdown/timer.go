package countdown

import (
	"context"
	"errors"
	"log"

	"github.com/looplab/fsm"
)

// Phase is the timer's position in the idle/running/expired machine
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRunning Phase = "running"
	PhaseExpired Phase = "expired"
)

// FSM event names
const (
	eventStart   = "start"
	eventPause   = "pause"
	eventExpire  = "expire"
	eventRestore = "restore"
	eventReset   = "reset"
)

// ErrNothingToCount cancels a start while no time remains
var ErrNothingToCount = errors.New("no time remaining")

// State is an immutable snapshot of the timer
type State struct {
	Remaining int
	Running   bool
	Muted     bool
	Input     string
	Phase     Phase
}

// Expired reports the countdown reached zero and is halted
func (s State) Expired() bool {
	return s.Phase == PhaseExpired
}

// ShouldTick reports whether the ticking process must be armed
func (s State) ShouldTick() bool {
	return s.Running && s.Remaining > 0
}

// Timer owns the countdown state. It is not safe for concurrent use; the
// owning widget drives it from a single event loop.
type Timer struct {
	machine   *fsm.FSM
	remaining int
	input     string
	muted     bool
}

// NewTimer creates an idle timer showing the reset value of input
func NewTimer(input string) *Timer {
	t := &Timer{
		input:     input,
		remaining: ResetValue(input),
	}

	t.machine = fsm.NewFSM(
		string(PhaseIdle),
		fsm.Events{
			{Name: eventStart, Src: []string{string(PhaseIdle)}, Dst: string(PhaseRunning)},
			{Name: eventPause, Src: []string{string(PhaseRunning)}, Dst: string(PhaseIdle)},
			{Name: eventExpire, Src: []string{string(PhaseIdle), string(PhaseRunning)}, Dst: string(PhaseExpired)},
			{Name: eventRestore, Src: []string{string(PhaseExpired)}, Dst: string(PhaseIdle)},
			{Name: eventReset, Src: []string{string(PhaseIdle), string(PhaseRunning), string(PhaseExpired)}, Dst: string(PhaseIdle)},
		},
		fsm.Callbacks{
			"before_" + eventStart: func(_ context.Context, e *fsm.Event) {
				if t.remaining <= 0 {
					e.Cancel(ErrNothingToCount)
				}
			},
			"enter_state": func(_ context.Context, e *fsm.Event) {
				log.Printf("countdown: %s -> %s on %s (remaining %d)", e.Src, e.Dst, e.Event, t.remaining)
			},
		},
	)

	return t
}

// State returns a snapshot of the current values
func (t *Timer) State() State {
	return State{
		Remaining: t.remaining,
		Running:   t.Running(),
		Muted:     t.muted,
		Input:     t.input,
		Phase:     t.Phase(),
	}
}

// Phase returns the current machine state
func (t *Timer) Phase() Phase {
	return Phase(t.machine.Current())
}

// Running reports whether the countdown is active
func (t *Timer) Running() bool {
	return t.machine.Is(string(PhaseRunning))
}

// Remaining returns the seconds left
func (t *Timer) Remaining() int {
	return t.remaining
}

// Muted reports whether cues are suppressed
func (t *Timer) Muted() bool {
	return t.muted
}

// Start begins counting down and returns the start cue.
// With no time left the timer moves to expired instead and no cue is due.
func (t *Timer) Start() []Cue {
	switch t.Phase() {
	case PhaseRunning, PhaseExpired:
		return nil
	}

	err := t.machine.Event(context.Background(), eventStart)
	var canceled fsm.CanceledError
	if errors.As(err, &canceled) {
		t.fire(eventExpire)
		return nil
	}
	if err != nil {
		log.Printf("countdown: start: %v", err)
		return nil
	}
	return []Cue{CueStart}
}

// Pause stops counting, keeping the remaining time
func (t *Timer) Pause() {
	if t.Running() {
		t.fire(eventPause)
	}
}

// Reset stops the timer and restores the duration from the input text
func (t *Timer) Reset() {
	t.remaining = ResetValue(t.input)
	t.fire(eventReset)
}

// SetInput stores new duration text. While stopped the remaining time
// previews the parsed value; while running only the text changes.
func (t *Timer) SetInput(text string) {
	t.input = text
	if t.Running() {
		return
	}

	t.remaining = ParseInput(text)
	switch {
	case t.remaining == 0 && t.Phase() != PhaseExpired:
		t.fire(eventExpire)
	case t.remaining > 0 && t.Phase() == PhaseExpired:
		t.fire(eventRestore)
	}
}

// ToggleMute flips the mute flag
func (t *Timer) ToggleMute() {
	t.muted = !t.muted
}

// Tick advances the countdown one second and returns the cue it earned:
// tick while time remains, end once it reaches zero
func (t *Timer) Tick() []Cue {
	if !t.Running() || t.remaining <= 0 {
		return nil
	}

	t.remaining--
	if t.remaining == 0 {
		t.fire(eventExpire)
		return []Cue{CueEnd}
	}
	return []Cue{CueTick}
}

// fire runs a machine event, treating a same-state transition as success
func (t *Timer) fire(event string) {
	err := t.machine.Event(context.Background(), event)
	if err == nil {
		return
	}
	var same fsm.NoTransitionError
	if errors.As(err, &same) {
		return
	}
	log.Printf("countdown: %s: %v", event, err)
}
