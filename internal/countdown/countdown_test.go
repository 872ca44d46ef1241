package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemaining(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want string
	}{
		{"one second ago", now.Add(-time.Second), Expired},
		{"exactly now", now, Expired},
		{"sub millisecond", now.Add(500 * time.Microsecond), Expired},
		{"seconds only", now.Add(42 * time.Second), "0h 0m 42s remaining"},
		{"truncates partial seconds", now.Add(1999 * time.Millisecond), "0h 0m 1s remaining"},
		{"hours minutes seconds", now.Add(2*time.Hour + 5*time.Minute + 9*time.Second), "2h 5m 9s remaining"},
		{"just under a day", now.Add(24*time.Hour - time.Second), "23h 59m 59s remaining"},
		{"multi day", now.Add(50*time.Hour + 30*time.Second), "2d 2h 0m 30s remaining"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Remaining(tt.end, now))
		})
	}
}

func TestRemainingExpiredImmediately(t *testing.T) {
	now := time.Now()
	assert.Equal(t, Expired, Remaining(now.Add(-1000*time.Millisecond), now))
}

func TestSplitBounds(t *testing.T) {
	for d := time.Duration(0); d < 80*time.Hour; d += 7*time.Minute + 13*time.Second {
		p := Split(d)
		if p.Hours < 0 || p.Hours >= 24 {
			t.Fatalf("Split(%v).Hours = %d, out of range", d, p.Hours)
		}
		if p.Minutes < 0 || p.Minutes >= 60 {
			t.Fatalf("Split(%v).Minutes = %d, out of range", d, p.Minutes)
		}
		if p.Seconds < 0 || p.Seconds >= 60 {
			t.Fatalf("Split(%v).Seconds = %d, out of range", d, p.Seconds)
		}
		total := p.Days*86400 + p.Hours*3600 + p.Minutes*60 + p.Seconds
		if total != int64(d/time.Second) {
			t.Fatalf("Split(%v) = %+v, sums to %ds", d, p, total)
		}
	}
}

func TestSplitNegative(t *testing.T) {
	assert.Equal(t, Parts{}, Split(-time.Hour))
}
