package clock

import (
	"context"
	"sync"
	"time"
)

// Repeater fires a callback on a fixed interval until stopped. Once stopped
// it cannot be restarted.
type Repeater struct {
	mu       sync.Mutex
	interval time.Duration
	cancel   context.CancelFunc
	stopped  bool
	done     chan struct{}
}

// NewRepeater creates a repeater; a non-positive interval means one second.
func NewRepeater(interval time.Duration) *Repeater {
	if interval <= 0 {
		interval = time.Second
	}
	return &Repeater{
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Interval returns the firing interval.
func (repeater *Repeater) Interval() time.Duration {
	return repeater.interval
}

// Start launches the firing goroutine. It returns false if the repeater
// was already started or stopped.
func (repeater *Repeater) Start(ctx context.Context, fire func(time.Time)) bool {
	repeater.mu.Lock()
	if repeater.stopped || repeater.cancel != nil {
		repeater.mu.Unlock()
		return false
	}
	runCtx, cancel := context.WithCancel(ctx)
	repeater.cancel = cancel
	repeater.mu.Unlock()

	go repeater.run(runCtx, fire)
	return true
}

// Stop cancels the repeater permanently and waits for the goroutine to exit.
func (repeater *Repeater) Stop() {
	repeater.mu.Lock()
	if repeater.stopped {
		repeater.mu.Unlock()
		return
	}
	repeater.stopped = true
	cancel := repeater.cancel
	repeater.mu.Unlock()

	if cancel == nil {
		close(repeater.done)
		return
	}
	cancel()
	<-repeater.done
}

// Done is closed once the repeater has stopped firing.
func (repeater *Repeater) Done() <-chan struct{} {
	return repeater.done
}

func (repeater *Repeater) run(ctx context.Context, fire func(time.Time)) {
	defer close(repeater.done)

	ticker := time.NewTicker(repeater.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case tickTime := <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			fire(tickTime)
		}
	}
}
