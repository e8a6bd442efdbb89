package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/FluidXR/tabletswitch/internal/remap"
	"github.com/FluidXR/tabletswitch/internal/xsetwacom"
)

// ErrNotConnected is returned by Switch when no tablet is attached.
var ErrNotConnected = errors.New("no tablet detected, please connect your device")

// Presenter is the user-facing side: a TUI, a notifier, a log.
type Presenter interface {
	OnConnectionChanged(connected bool)
	OnActionResult(err error)
}

// SwitchRecorder keeps a record of switch attempts.
type SwitchRecorder interface {
	RecordSwitch(at time.Time, res remap.Result, err error) error
}

// Controller runs poll ticks and switch actions one at a time so that
// external commands never overlap.
type Controller struct {
	tracker  *Tracker
	source   DeviceSource
	executor *remap.Executor
	log      zerolog.Logger

	work sync.Mutex

	mu        sync.RWMutex
	presenter Presenter
	recorder  SwitchRecorder
}

// NewController wires the tracker, the device source and the executor.
func NewController(tracker *Tracker, source DeviceSource, executor *remap.Executor, log zerolog.Logger) *Controller {
	c := &Controller{
		tracker:  tracker,
		source:   source,
		executor: executor,
		log:      log,
	}
	tracker.Subscribe(ListenerFunc(func(ev Event) {
		if p := c.getPresenter(); p != nil {
			p.OnConnectionChanged(ev.Connected)
		}
	}))
	return c
}

// SetPresenter sets the presenter notified of transitions and results.
func (c *Controller) SetPresenter(p Presenter) {
	c.mu.Lock()
	c.presenter = p
	c.mu.Unlock()
}

// SetRecorder sets where switch attempts are recorded.
func (c *Controller) SetRecorder(r SwitchRecorder) {
	c.mu.Lock()
	c.recorder = r
	c.mu.Unlock()
}

func (c *Controller) getPresenter() Presenter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.presenter
}

func (c *Controller) getRecorder() SwitchRecorder {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.recorder
}

// Tracker returns the connection tracker.
func (c *Controller) Tracker() *Tracker {
	return c.tracker
}

// IsActionAllowed reports whether the switch action should be offered.
func (c *Controller) IsActionAllowed() bool {
	return c.tracker.Connected()
}

// Poll runs one poll tick.
func (c *Controller) Poll(ctx context.Context) {
	c.work.Lock()
	defer c.work.Unlock()
	c.tracker.PollTick(ctx)
}

// Devices lists the attached devices, waiting for any poll tick or switch
// in progress.
func (c *Controller) Devices(ctx context.Context) ([]xsetwacom.Device, error) {
	c.work.Lock()
	defer c.work.Unlock()
	return c.source.Devices(ctx)
}

// Switch moves every attached tablet device to the next output. It stops
// at the first device that fails; devices before it stay remapped.
func (c *Controller) Switch(ctx context.Context) (remap.Result, error) {
	c.work.Lock()
	res, err := c.doSwitch(ctx)
	c.work.Unlock()

	if err != nil {
		c.log.Warn().Err(err).Strs("mapped", res.Mapped).Msg("switch failed")
	} else {
		c.log.Info().Strs("mapped", res.Mapped).Msg("switched tablet output")
	}
	if r := c.getRecorder(); r != nil {
		if rerr := r.RecordSwitch(time.Now(), res, err); rerr != nil {
			c.log.Warn().Err(rerr).Msg("record switch")
		}
	}
	if p := c.getPresenter(); p != nil {
		p.OnActionResult(err)
	}
	return res, err
}

func (c *Controller) doSwitch(ctx context.Context) (remap.Result, error) {
	if !c.tracker.CheckNow(ctx) {
		return remap.Result{}, ErrNotConnected
	}
	devices, err := c.source.Devices(ctx)
	if err != nil {
		return remap.Result{}, fmt.Errorf("list devices: %w", err)
	}
	return c.executor.RemapAll(ctx, devices)
}
