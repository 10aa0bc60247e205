package engine

import "time"

// Ticker is a stoppable periodic time source
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock provides time and tickers, letting tests replace the wall clock
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// SystemClock is the wall clock backed by the time package
type SystemClock struct{}

// NewSystemClock creates a wall clock
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// NewTicker returns a time.Ticker; ticks are dropped for slow receivers
func (c *SystemClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{t: time.NewTicker(d)}
}

type systemTicker struct {
	t *time.Ticker
}

func (s *systemTicker) C() <-chan time.Time { return s.t.C }
func (s *systemTicker) Stop()               { s.t.Stop() }
