// Package hint counts hint reveals for a single puzzle attempt.
package hint

// Tracker is not safe for concurrent use; the progression controller
// serialises access to it.
type Tracker struct {
	opened int
}

// Reveal records one more opened hint and returns the new count.
func (t *Tracker) Reveal() int {
	t.opened++
	return t.opened
}

// Reset zeroes the count when the attempt ends.
func (t *Tracker) Reset() int {
	t.opened = 0
	return t.opened
}

func (t *Tracker) Count() int {
	return t.opened
}
