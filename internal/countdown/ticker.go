package countdown

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Ticker calls a function on every interval until stopped.
type Ticker struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Start begins ticking on clock. fn runs on the ticker goroutine; it must
// not call Stop. The ticker also stops when ctx is cancelled.
func Start(ctx context.Context, clock clockwork.Clock, interval time.Duration, fn func(now time.Time)) *Ticker {
	t := &Ticker{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	tick := clock.NewTicker(interval)

	go func() {
		defer close(t.done)
		defer tick.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.stop:
				return
			case now := <-tick.Chan():
				fn(now)
			}
		}
	}()

	return t
}

// Stop halts the ticker and waits for its goroutine to exit. After Stop
// returns fn is never called again. Safe to call more than once.
func (t *Ticker) Stop() {
	t.once.Do(func() { close(t.stop) })
	<-t.done
}

// Done is closed once the ticker goroutine has exited.
func (t *Ticker) Done() <-chan struct{} {
	return t.done
}
