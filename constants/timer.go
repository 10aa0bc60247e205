package constants

import "time"

// Countdown Timing
const (
	// DefaultSeconds is the duration restored by reset when the input holds no positive value
	DefaultSeconds = 60

	// DefaultInput is the initial text of the duration field
	DefaultInput = "60"

	// TickInterval is the nominal spacing between countdown decrements
	TickInterval = 1 * time.Second

	// EventQueueSize bounds the buffered terminal event channel
	EventQueueSize = 100
)
