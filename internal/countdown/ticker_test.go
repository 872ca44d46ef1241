package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestTickerFiresOnInterval(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clock := clockwork.NewFakeClock()
	ticks := make(chan time.Time, 4)
	tk := Start(ctx, clock, time.Second, func(now time.Time) { ticks <- now })
	defer tk.Stop()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	for i := 0; i < 3; i++ {
		clock.Advance(time.Second)
		select {
		case <-ticks:
		case <-ctx.Done():
			t.Fatalf("tick %d never fired", i)
		}
	}
}

func TestTickerStopEndsCallbacks(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clock := clockwork.NewFakeClock()
	ticks := make(chan time.Time, 4)
	tk := Start(ctx, clock, time.Second, func(now time.Time) { ticks <- now })
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	tk.Stop()
	tk.Stop()

	select {
	case <-tk.Done():
	default:
		t.Fatal("ticker goroutine still running after Stop")
	}

	clock.Advance(5 * time.Second)
	require.Empty(t, ticks)
}

func TestTickerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tk := Start(ctx, clockwork.NewFakeClock(), time.Second, func(time.Time) {})

	cancel()

	select {
	case <-tk.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("ticker did not exit after context cancel")
	}
}
