package sim

import (
	"sync/atomic"
	"time"
)

// Ticker is the tick source Run waits on.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

type immediateTicker struct{ c chan time.Time }

func (t immediateTicker) C() <-chan time.Time { return t.c }
func (t immediateTicker) Stop()               {}

// NewTicker returns a wall-clock ticker firing every d. A non-positive d
// yields a ticker that is always ready, which runs the simulation as fast as
// steps complete.
func NewTicker(d time.Duration) Ticker {
	if d <= 0 {
		c := make(chan time.Time)
		close(c)
		return immediateTicker{c: c}
	}
	return timeTicker{t: time.NewTicker(d)}
}

// ManualTicker fires only when Tick is called.
type ManualTicker struct {
	c       chan time.Time
	stopped atomic.Bool
}

func NewManualTicker() *ManualTicker {
	return &ManualTicker{c: make(chan time.Time)}
}

func (m *ManualTicker) C() <-chan time.Time { return m.c }
func (m *ManualTicker) Stop()               { m.stopped.Store(true) }
func (m *ManualTicker) Stopped() bool       { return m.stopped.Load() }

// Tick blocks until the receiver has taken the tick.
func (m *ManualTicker) Tick() { m.c <- time.Now() }
