package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/FluidXR/tabletswitch/internal/remap"
	"github.com/FluidXR/tabletswitch/internal/xsetwacom"
)

var errLaunch = errors.New("xsetwacom list: launch failed")

type fakeSource struct {
	mu      sync.Mutex
	devices []xsetwacom.Device
	err     error
	calls   int
}

func (f *fakeSource) Devices(context.Context) ([]xsetwacom.Device, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.devices, nil
}

func (f *fakeSource) set(err error, ids ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
	f.devices = nil
	for _, id := range ids {
		f.devices = append(f.devices, xsetwacom.Device{ID: id})
	}
}

type fakeMapper struct {
	mu   sync.Mutex
	fail map[string]error
	ids  []string
}

func (f *fakeMapper) MapToOutput(_ context.Context, id, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = append(f.ids, id)
	return f.fail[id]
}

type recordingPresenter struct {
	mu       sync.Mutex
	changes  []bool
	results  []error
	resultCh chan error
}

func (r *recordingPresenter) OnConnectionChanged(connected bool) {
	r.mu.Lock()
	r.changes = append(r.changes, connected)
	r.mu.Unlock()
}

func (r *recordingPresenter) OnActionResult(err error) {
	r.mu.Lock()
	r.results = append(r.results, err)
	r.mu.Unlock()
	if r.resultCh != nil {
		r.resultCh <- err
	}
}

type recordingRecorder struct {
	results []remap.Result
	errs    []error
}

func (r *recordingRecorder) RecordSwitch(_ time.Time, res remap.Result, err error) error {
	r.results = append(r.results, res)
	r.errs = append(r.errs, err)
	return nil
}

func newTestController(src *fakeSource, m *fakeMapper) *Controller {
	tr := NewTracker(src, zerolog.Nop())
	return NewController(tr, src, &remap.Executor{Mapper: m}, zerolog.Nop())
}

// listingSource parses a raw listing the way the real client does.
type listingSource struct {
	out string
}

func (s listingSource) Devices(context.Context) ([]xsetwacom.Device, error) {
	return xsetwacom.ParseDevices(s.out), nil
}

// overlapCounter records the highest number of external calls in flight
// at once.
type overlapCounter struct {
	mu     sync.Mutex
	active int
	max    int
}

func (o *overlapCounter) enter() {
	o.mu.Lock()
	o.active++
	if o.active > o.max {
		o.max = o.active
	}
	o.mu.Unlock()
	time.Sleep(2 * time.Millisecond)
}

func (o *overlapCounter) leave() {
	o.mu.Lock()
	o.active--
	o.mu.Unlock()
}

func (o *overlapCounter) peak() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.max
}

type countingSource struct{ calls *overlapCounter }

func (s countingSource) Devices(context.Context) ([]xsetwacom.Device, error) {
	s.calls.enter()
	defer s.calls.leave()
	return []xsetwacom.Device{{ID: "12"}, {ID: "13"}}, nil
}

type countingMapper struct{ calls *overlapCounter }

func (m countingMapper) MapToOutput(context.Context, string, string) error {
	m.calls.enter()
	defer m.calls.leave()
	return nil
}
