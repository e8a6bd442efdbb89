package monitor

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestCheckNowFailureIsDisconnected(t *testing.T) {
	src := &fakeSource{}
	src.set(nil, "12")
	tr := NewTracker(src, zerolog.Nop())
	if !tr.Init(context.Background()) {
		t.Fatal("expected initial state connected")
	}

	src.set(errLaunch)
	if tr.CheckNow(context.Background()) {
		t.Fatal("expected CheckNow=false on query failure")
	}
	if !tr.Connected() {
		t.Fatal("CheckNow must not mutate stored state")
	}
}

func TestCheckNowEmptyListingIsDisconnected(t *testing.T) {
	src := &fakeSource{}
	tr := NewTracker(src, zerolog.Nop())
	if tr.CheckNow(context.Background()) {
		t.Fatal("expected CheckNow=false for empty listing")
	}
}

func TestCheckNowWhitespaceListingIsDisconnected(t *testing.T) {
	for _, out := range []string{" \t \n", "\t \n", "Pen\tid: \n"} {
		tr := NewTracker(listingSource{out: out}, zerolog.Nop())
		if tr.CheckNow(context.Background()) {
			t.Fatalf("expected CheckNow=false for listing %q", out)
		}
		if _, changed := tr.PollTick(context.Background()); changed {
			t.Fatalf("expected no transition for listing %q", out)
		}
	}
}

func TestInitEmitsNoEvent(t *testing.T) {
	src := &fakeSource{}
	src.set(nil, "12")
	tr := NewTracker(src, zerolog.Nop())
	var events []Event
	tr.Subscribe(ListenerFunc(func(ev Event) { events = append(events, ev) }))

	tr.Init(context.Background())
	if len(events) != 0 {
		t.Fatalf("expected no events from Init, got %d", len(events))
	}
	if !tr.Connected() {
		t.Fatal("expected connected after Init")
	}
}

func TestPollTickEmitsOnlyOnTransition(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{}
	src.set(nil, "12")
	tr := NewTracker(src, zerolog.Nop())
	var events []Event
	tr.Subscribe(ListenerFunc(func(ev Event) { events = append(events, ev) }))
	tr.Init(ctx)

	tr.PollTick(ctx)
	if _, changed := tr.PollTick(ctx); changed {
		t.Fatal("second tick with unchanged result reported a change")
	}
	if len(events) != 0 {
		t.Fatalf("expected zero events, got %d", len(events))
	}

	src.set(nil)
	ev, changed := tr.PollTick(ctx)
	if !changed || ev.Connected {
		t.Fatalf("expected transition to disconnected, got %+v changed=%v", ev, changed)
	}
	if len(events) != 1 || events[0].Connected {
		t.Fatalf("expected exactly one ConnectionChanged(false), got %+v", events)
	}
	if tr.Connected() {
		t.Fatal("expected stored state to be updated")
	}

	src.set(nil, "12", "13")
	tr.PollTick(ctx)
	if len(events) != 2 || !events[1].Connected || len(events[1].Devices) != 2 {
		t.Fatalf("expected reconnect event with devices, got %+v", events)
	}
}

func TestPollTickQueryFailureDisconnects(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{}
	src.set(nil, "12")
	tr := NewTracker(src, zerolog.Nop())
	tr.Init(ctx)

	src.set(errLaunch)
	if _, changed := tr.PollTick(ctx); !changed {
		t.Fatal("expected failure to be a transition to disconnected")
	}
	if tr.Connected() {
		t.Fatal("expected disconnected")
	}
}
