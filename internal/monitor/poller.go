package monitor

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultInterval is how often the tablet state is polled.
const DefaultInterval = time.Second

// ErrPollerRunning is returned by Start on a running poller.
var ErrPollerRunning = errors.New("poller already running")

// TickerFunc returns a tick channel and a function releasing it.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Poller calls Tick on every interval between Start and Stop.
type Poller struct {
	Interval  time.Duration
	Tick      func(ctx context.Context)
	NewTicker TickerFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller returns a poller driving c.Poll every interval.
func NewPoller(c *Controller, interval time.Duration) *Poller {
	return &Poller{Interval: interval, Tick: c.Poll}
}

// Start launches the polling loop. The loop ends when ctx is done or
// Stop is called.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loopAlive() {
		return ErrPollerRunning
	}
	if p.cancel != nil {
		p.cancel()
	}
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	newTicker := p.NewTicker
	if newTicker == nil {
		newTicker = realTicker
	}

	ctx, cancel := context.WithCancel(ctx)
	ticks, release := newTicker(interval)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done

	go func() {
		defer close(done)
		defer release()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticks:
				p.Tick(ctx)
			}
		}
	}()
	return nil
}

// Stop ends the loop and waits for an in-flight tick to finish. It is
// safe to call on a stopped poller.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the loop is active. It turns false once the
// loop has exited, whether through Stop or the parent context.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loopAlive()
}

// loopAlive must be called with p.mu held.
func (p *Poller) loopAlive() bool {
	if p.done == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}
