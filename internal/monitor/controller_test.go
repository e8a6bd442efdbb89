package monitor

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/FluidXR/tabletswitch/internal/remap"
)

func TestSwitchNotConnected(t *testing.T) {
	src := &fakeSource{}
	m := &fakeMapper{}
	c := newTestController(src, m)
	p := &recordingPresenter{}
	c.SetPresenter(p)

	_, err := c.Switch(context.Background())
	if !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
	if len(m.ids) != 0 {
		t.Fatalf("expected no map commands, got %v", m.ids)
	}
	if len(p.results) != 1 || !errors.Is(p.results[0], ErrNotConnected) {
		t.Fatalf("expected presenter to receive the error, got %v", p.results)
	}
}

func TestSwitchMapsAllDevicesInOrder(t *testing.T) {
	src := &fakeSource{}
	src.set(nil, "5", "7")
	m := &fakeMapper{}
	c := newTestController(src, m)
	p := &recordingPresenter{}
	rec := &recordingRecorder{}
	c.SetPresenter(p)
	c.SetRecorder(rec)

	res, err := c.Switch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(m.ids, []string{"5", "7"}) {
		t.Fatalf("unexpected map order: %v", m.ids)
	}
	if !reflect.DeepEqual(res.Mapped, []string{"5", "7"}) {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(p.results) != 1 || p.results[0] != nil {
		t.Fatalf("expected one nil result, got %v", p.results)
	}
	if len(rec.errs) != 1 || rec.errs[0] != nil {
		t.Fatalf("expected switch to be recorded, got %+v", rec)
	}
	// One listing for the connection check, one for the device ids.
	if src.calls != 2 {
		t.Fatalf("expected 2 listings, got %d", src.calls)
	}
}

func TestSwitchReportsFirstFailingDevice(t *testing.T) {
	src := &fakeSource{}
	src.set(nil, "A", "B")
	m := &fakeMapper{fail: map[string]error{"A": errors.New("exit status 1")}}
	c := newTestController(src, m)

	_, err := c.Switch(context.Background())
	var devErr *remap.DeviceError
	if !errors.As(err, &devErr) || devErr.ID != "A" {
		t.Fatalf("expected DeviceError for A, got %v", err)
	}
	if len(m.ids) != 1 {
		t.Fatalf("expected B never attempted, got %v", m.ids)
	}
}

func TestPollForwardsTransitionsToPresenter(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{}
	c := newTestController(src, &fakeMapper{})
	p := &recordingPresenter{}
	c.SetPresenter(p)
	c.Tracker().Init(ctx)

	if c.IsActionAllowed() {
		t.Fatal("action must be gated while disconnected")
	}
	src.set(nil, "12")
	c.Poll(ctx)
	c.Poll(ctx)
	if !reflect.DeepEqual(p.changes, []bool{true}) {
		t.Fatalf("unexpected presenter changes: %v", p.changes)
	}
	if !c.IsActionAllowed() {
		t.Fatal("action must be allowed while connected")
	}
}

func TestControllerSerializesExternalCalls(t *testing.T) {
	calls := &overlapCounter{}
	src := countingSource{calls: calls}
	tr := NewTracker(src, zerolog.Nop())
	c := NewController(tr, src, &remap.Executor{Mapper: countingMapper{calls: calls}}, zerolog.Nop())

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			c.Poll(ctx)
		}()
		go func() {
			defer wg.Done()
			if _, err := c.Switch(ctx); err != nil {
				t.Errorf("switch: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := c.Devices(ctx); err != nil {
				t.Errorf("devices: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := calls.peak(); got != 1 {
		t.Fatalf("expected at most one external call at a time, saw %d", got)
	}
}

func TestDevicesListsThroughSource(t *testing.T) {
	src := &fakeSource{}
	src.set(nil, "12", "13")
	c := newTestController(src, &fakeMapper{})

	devices, err := c.Devices(context.Background())
	if err != nil {
		t.Fatalf("devices: %v", err)
	}
	if len(devices) != 2 || devices[0].ID != "12" {
		t.Fatalf("unexpected devices: %v", devices)
	}
	if src.calls != 1 {
		t.Fatalf("expected 1 listing, got %d", src.calls)
	}
}
