package hint

import "testing"

func TestTracker(t *testing.T) {
	for _, k := range []int{0, 1, 3, 10} {
		var tr Tracker
		for i := 1; i <= k; i++ {
			if got := tr.Reveal(); got != i {
				t.Fatalf("Reveal() #%d = %d, want %d", i, got, i)
			}
		}
		if got := tr.Count(); got != k {
			t.Errorf("Count() = %d, want %d", got, k)
		}
		if got := tr.Reset(); got != 0 {
			t.Errorf("Reset() = %d, want 0", got)
		}
		if got := tr.Count(); got != 0 {
			t.Errorf("Count() after reset = %d, want 0", got)
		}
	}
}
