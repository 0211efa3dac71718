package clock

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const defaultQueueSize = 64

// Loop owns the controller and dispatches events to it one at a time.
type Loop struct {
	controller *Controller
	repeater   *Repeater
	events     chan Event
	done       chan struct{}
	closeOnce  sync.Once
	now        func() time.Time
	logger     *slog.Logger
}

// LoopOption customizes a Loop.
type LoopOption func(*Loop)

// WithClock overrides the time source used for the first render.
func WithClock(now func() time.Time) LoopOption {
	return func(loop *Loop) {
		loop.now = now
	}
}

// WithQueueSize sets the event buffer size.
func WithQueueSize(size int) LoopOption {
	return func(loop *Loop) {
		if size > 0 {
			loop.events = make(chan Event, size)
		}
	}
}

// NewLoop wires the controller to a repeater ticking at interval.
func NewLoop(controller *Controller, interval time.Duration, options ...LoopOption) *Loop {
	loop := &Loop{
		controller: controller,
		repeater:   NewRepeater(interval),
		events:     make(chan Event, defaultQueueSize),
		done:       make(chan struct{}),
		now:        time.Now,
		logger:     controller.logger,
	}
	for _, option := range options {
		option(loop)
	}
	return loop
}

// Post queues an event. It returns false once the loop has stopped.
func (loop *Loop) Post(event Event) bool {
	select {
	case <-loop.done:
		return false
	default:
	}

	select {
	case <-loop.done:
		return false
	case loop.events <- event:
		return true
	}
}

// Done is closed when the loop stops.
func (loop *Loop) Done() <-chan struct{} {
	return loop.done
}

// Run renders the first frame, starts ticking and dispatches events until
// the clock is closed or ctx is cancelled.
func (loop *Loop) Run(ctx context.Context) error {
	defer loop.stop()

	loop.controller.Start(loop.now())
	loop.repeater.Start(ctx, func(tickTime time.Time) {
		loop.Post(Tick(tickTime))
	})

	for {
		select {
		case <-ctx.Done():
			loop.logger.Debug("clock loop cancelled", "err", ctx.Err())
			return ctx.Err()
		case event := <-loop.events:
			loop.controller.Dispatch(event)
			if !loop.controller.Running() {
				return nil
			}
		}
	}
}

func (loop *Loop) stop() {
	loop.closeOnce.Do(func() {
		close(loop.done)
		loop.repeater.Stop()
	})
}
