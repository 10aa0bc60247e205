package engine

import "time"

// TickSchedule owns at most one armed ticker and releases it on demand.
// The zero value is not usable; create with NewTickSchedule.
type TickSchedule struct {
	clock    Clock
	interval time.Duration
	ticker   Ticker
}

// NewTickSchedule creates a disarmed schedule firing every interval once armed
func NewTickSchedule(clock Clock, interval time.Duration) *TickSchedule {
	return &TickSchedule{
		clock:    clock,
		interval: interval,
	}
}

// Sync arms the schedule when want is true and cancels it otherwise.
// Arming an armed schedule keeps the running ticker and its phase.
func (s *TickSchedule) Sync(want bool) {
	if want {
		s.Arm()
	} else {
		s.Cancel()
	}
}

// Arm starts a ticker if none is active
func (s *TickSchedule) Arm() {
	if s.ticker != nil {
		return
	}
	s.ticker = s.clock.NewTicker(s.interval)
}

// Cancel stops and releases the active ticker
func (s *TickSchedule) Cancel() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
}

// Armed reports whether a ticker is active
func (s *TickSchedule) Armed() bool {
	return s.ticker != nil
}

// C returns the active tick channel, or nil when disarmed so a select on it blocks
func (s *TickSchedule) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C()
}
