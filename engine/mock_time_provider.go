package engine

import (
	"sync"
	"time"
)

// MockClock provides a controllable time source for testing.
// Tickers it creates fire only when Advance crosses their interval.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	tickers     []*MockTicker
	created     int
}

// NewMockClock creates a new mock clock with the given start time
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// NewTicker registers a manual ticker
func (m *MockClock) NewTicker(d time.Duration) Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()

	mt := &MockTicker{
		clock:    m,
		interval: d,
		next:     m.currentTime.Add(d),
		ch:       make(chan time.Time, 1),
	}
	m.tickers = append(m.tickers, mt)
	m.created++
	return mt
}

// Advance moves time forward, firing every active ticker whose deadline passes.
// Like time.Ticker, a tick is dropped when the previous one is still unread.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.currentTime = m.currentTime.Add(d)
	for _, mt := range m.tickers {
		for !mt.next.After(m.currentTime) {
			select {
			case mt.ch <- mt.next:
			default:
			}
			mt.next = mt.next.Add(mt.interval)
		}
	}
}

// ActiveTickers returns how many tickers have not been stopped
func (m *MockClock) ActiveTickers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickers)
}

// CreatedTickers returns how many tickers were ever created
func (m *MockClock) CreatedTickers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.created
}

// MockTicker is a ticker driven by MockClock.Advance
type MockTicker struct {
	clock    *MockClock
	interval time.Duration
	next     time.Time
	ch       chan time.Time
}

// C returns the tick channel
func (t *MockTicker) C() <-chan time.Time {
	return t.ch
}

// Stop unregisters the ticker; it never fires again
func (t *MockTicker) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	for i, mt := range t.clock.tickers {
		if mt == t {
			t.clock.tickers = append(t.clock.tickers[:i], t.clock.tickers[i+1:]...)
			return
		}
	}
}
