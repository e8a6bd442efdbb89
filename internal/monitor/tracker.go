package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/FluidXR/tabletswitch/internal/xsetwacom"
)

// DeviceSource lists the tablet devices currently attached.
type DeviceSource interface {
	Devices(ctx context.Context) ([]xsetwacom.Device, error)
}

// Event describes a connection state transition.
type Event struct {
	Connected bool
	Devices   []xsetwacom.Device
	At        time.Time
}

// Listener receives connection transitions.
type Listener interface {
	OnConnectionChanged(ev Event)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(ev Event)

func (f ListenerFunc) OnConnectionChanged(ev Event) { f(ev) }

// Tracker holds the last known connection state and reports changes.
// A tablet counts as connected when the listing succeeds and yields at
// least one parsable device; any query failure counts as disconnected.
type Tracker struct {
	source DeviceSource
	log    zerolog.Logger
	now    func() time.Time

	mu        sync.RWMutex
	connected bool
	listeners []Listener
}

// NewTracker creates a tracker in the disconnected state. Call Init to
// establish the real initial state.
func NewTracker(source DeviceSource, log zerolog.Logger) *Tracker {
	return &Tracker{source: source, log: log, now: time.Now}
}

// Subscribe registers l for future transitions.
func (t *Tracker) Subscribe(l Listener) {
	t.mu.Lock()
	t.listeners = append(t.listeners, l)
	t.mu.Unlock()
}

// Connected returns the stored state.
func (t *Tracker) Connected() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.connected
}

// CheckNow queries the device list once without touching stored state.
func (t *Tracker) CheckNow(ctx context.Context) bool {
	_, ok := t.check(ctx)
	return ok
}

// Init stores the result of one check as the initial state. No event is
// emitted.
func (t *Tracker) Init(ctx context.Context) bool {
	_, ok := t.check(ctx)
	t.mu.Lock()
	t.connected = ok
	t.mu.Unlock()
	t.log.Info().Bool("connected", ok).Msg("initial tablet state")
	return ok
}

// PollTick checks once and, if the state differs from the stored one,
// stores it and notifies listeners. It reports whether a transition
// happened.
func (t *Tracker) PollTick(ctx context.Context) (Event, bool) {
	devices, ok := t.check(ctx)

	t.mu.Lock()
	if ok == t.connected {
		t.mu.Unlock()
		return Event{}, false
	}
	t.connected = ok
	listeners := append([]Listener(nil), t.listeners...)
	t.mu.Unlock()

	ev := Event{Connected: ok, Devices: devices, At: t.now()}
	t.log.Info().
		Bool("connected", ok).
		Int("devices", len(devices)).
		Msg("tablet connection changed")
	for _, l := range listeners {
		l.OnConnectionChanged(ev)
	}
	return ev, true
}

func (t *Tracker) check(ctx context.Context) ([]xsetwacom.Device, bool) {
	devices, err := t.source.Devices(ctx)
	if err != nil {
		t.log.Debug().Err(err).Msg("device query failed")
		return nil, false
	}
	return devices, len(devices) > 0
}
