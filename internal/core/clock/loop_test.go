package clock

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"smartclock/internal/core/model"
)

func TestLoopDispatchesInOrderAndStopsOnClose(t *testing.T) {
	surface := newFakeSurface()
	controller := NewController(model.DefaultClockConfig(), surface, discardLogger())
	start := time.Date(2024, time.February, 29, 12, 0, 0, 0, time.Local)
	loop := NewLoop(controller, time.Hour, WithClock(func() time.Time { return start }))

	result := make(chan error, 1)
	go func() {
		result <- loop.Run(context.Background())
	}()

	for _, event := range []Event{
		Press(10, 10),
		Motion(20, 30),
		{Type: EventRelease},
		{Type: EventDoubleClick},
		{Type: EventDoubleClick},
		{Type: EventCloseRequested},
	} {
		if !loop.Post(event) {
			t.Fatalf("Post(%s) rejected", event.Type)
		}
	}

	select {
	case err := <-result:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop after close")
	}

	view := surface.snapshot()
	if view.dateText != "2024-02-29 Thursday" {
		t.Errorf("first render date = %q", view.dateText)
	}
	if view.geometry != model.DefaultGeometry {
		t.Errorf("geometry = %v, want restored %v", view.geometry, model.DefaultGeometry)
	}
	if view.closed != 1 {
		t.Errorf("closed %d times", view.closed)
	}
	if loop.Post(Tick(time.Now())) {
		t.Error("Post accepted an event after the loop stopped")
	}
}

func TestLoopTicksUntilClosed(t *testing.T) {
	surface := newFakeSurface()
	controller := NewController(model.DefaultClockConfig(), surface, discardLogger())
	loop := NewLoop(controller, 5*time.Millisecond)

	go func() {
		_ = loop.Run(context.Background())
	}()

	deadline := time.After(5 * time.Second)
	for surface.snapshot().timeUpdates < 3 {
		select {
		case <-deadline:
			t.Fatal("no ticks delivered")
		case <-time.After(time.Millisecond):
		}
	}

	loop.Post(Event{Type: EventDismiss})
	<-loop.Done()
	updates := surface.snapshot().timeUpdates

	time.Sleep(30 * time.Millisecond)
	if got := surface.snapshot().timeUpdates; got != updates {
		t.Errorf("time updated %d more times after close", got-updates)
	}
}

func TestLoopCancelledByContext(t *testing.T) {
	controller := NewController(model.DefaultClockConfig(), newFakeSurface(), discardLogger())
	loop := NewLoop(controller, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	result := make(chan error, 1)
	go func() {
		result <- loop.Run(ctx)
	}()
	cancel()

	select {
	case err := <-result:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop ignored cancellation")
	}
}

func TestRepeaterStopIsPermanent(t *testing.T) {
	repeater := NewRepeater(time.Millisecond)
	var fired atomic.Int32
	if !repeater.Start(context.Background(), func(time.Time) { fired.Add(1) }) {
		t.Fatal("Start returned false")
	}

	deadline := time.Now().Add(5 * time.Second)
	for fired.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	repeater.Stop()
	count := fired.Load()

	time.Sleep(10 * time.Millisecond)
	if got := fired.Load(); got != count {
		t.Errorf("fired %d times after Stop", got-count)
	}
	if repeater.Start(context.Background(), func(time.Time) {}) {
		t.Error("restarted a stopped repeater")
	}
}

func TestRepeaterDefaultsInterval(t *testing.T) {
	if got := NewRepeater(0).Interval(); got != time.Second {
		t.Errorf("Interval() = %v, want 1s", got)
	}
	repeater := NewRepeater(-time.Second)
	repeater.Stop()
	select {
	case <-repeater.Done():
	default:
		t.Error("Done not closed after stopping an unstarted repeater")
	}
}
