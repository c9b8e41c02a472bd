package animation

import (
	"sync"
	"time"

	"github.com/samber/lo"
)

var (
	tickerMu      sync.Mutex
	activeTickers []*Ticker
)

// Ticker calls a callback on each frame while active. The callback receives
// the time elapsed since Start.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a stopped ticker.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start activates the ticker. Starting an active ticker does nothing.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers = append(activeTickers, t)
	tickerMu.Unlock()
}

// Restart moves the ticker's start time to now.
func (t *Ticker) Restart() {
	t.start = Now()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	activeTickers = lo.Without(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive reports whether the ticker is running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started, or zero when stopped.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances every active ticker in start order. Hosts call it
// once per frame.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	tickers := append([]*Ticker(nil), activeTickers...)
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		// A callback may stop tickers that come after it.
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// ActiveTickers returns the number of running tickers.
func ActiveTickers() int {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers)
}

// HasActiveTickers reports whether any ticker is running.
func HasActiveTickers() bool {
	return ActiveTickers() > 0
}
