package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/playperu/geohunt/internal/progress"
)

func TestRecorderCountsEvents(t *testing.T) {
	r := NewRecorder()

	for _, typ := range []progress.EventType{
		progress.EventLoaded,
		progress.EventTick,
		progress.EventHintRevealed,
		progress.EventHintRevealed,
		progress.EventSubmissionRejected,
		progress.EventSubmissionFailed,
		progress.EventLeaderboardSyncFailed,
		progress.EventHuntCompleted,
		progress.EventLeaderboardUpdated,
	} {
		r.Notify(progress.Event{Type: typ})
	}
	r.Notify(progress.Event{Type: progress.EventPuzzleAdvanced, PuzzleIndex: 1})

	if got := testutil.ToFloat64(r.HintsOpened); got != 2 {
		t.Errorf("hints_opened_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.Submissions.WithLabelValues("accepted")); got != 2 {
		t.Errorf("accepted = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.Submissions.WithLabelValues("rejected")); got != 1 {
		t.Errorf("rejected = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.Submissions.WithLabelValues("failed")); got != 1 {
		t.Errorf("failed = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.Syncs.WithLabelValues("error")); got != 1 {
		t.Errorf("sync errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.PuzzleIndex); got != 1 {
		t.Errorf("puzzle_index = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.HuntComplete); got != 1 {
		t.Errorf("hunt_completed = %v, want 1", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := NewRecorder()
	r.Notify(progress.Event{Type: progress.EventHintRevealed})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "geohunt_hints_opened_total 1") {
		t.Errorf("body missing hints counter:\n%s", rec.Body.String())
	}
}
