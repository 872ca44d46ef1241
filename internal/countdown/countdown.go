// Package countdown renders the time left in a hunt and drives the
// periodic recompute of that value.
package countdown

import (
	"fmt"
	"time"
)

// Expired is returned by Remaining once the end time has passed.
const Expired = "Time's up!"

// Parts is a remaining duration broken into display units. Hours,
// Minutes and Seconds are always below 24, 60 and 60.
type Parts struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Split decomposes d at whole-second resolution. Negative durations
// yield the zero value.
func Split(d time.Duration) Parts {
	total := d.Milliseconds() / 1000
	if total <= 0 {
		return Parts{}
	}
	return Parts{
		Days:    total / 86400,
		Hours:   total / 3600 % 24,
		Minutes: total / 60 % 60,
		Seconds: total % 60,
	}
}

// Remaining returns a human-readable countdown from now to end, or
// Expired when nothing is left. Hunts longer than a day carry whole days
// into a "d" prefix instead of wrapping the hour field.
func Remaining(end, now time.Time) string {
	left := end.Sub(now)
	if left.Milliseconds() <= 0 {
		return Expired
	}

	p := Split(left)
	if p.Days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds remaining", p.Days, p.Hours, p.Minutes, p.Seconds)
	}
	return fmt.Sprintf("%dh %dm %ds remaining", p.Hours, p.Minutes, p.Seconds)
}
