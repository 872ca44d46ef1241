// Package metrics exposes hunt progression counters to Prometheus. The
// Recorder is fed by controller events.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/playperu/geohunt/internal/progress"
)

const namespace = "geohunt"

type Recorder struct {
	registry     *prometheus.Registry
	Submissions  *prometheus.CounterVec
	HintsOpened  prometheus.Counter
	Photos       prometheus.Counter
	Syncs        *prometheus.CounterVec
	PuzzleIndex  prometheus.Gauge
	HuntComplete prometheus.Gauge
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Recorder{
		registry: reg,
		Submissions: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submissions_total",
				Help:      "Guess submissions by outcome",
			},
			[]string{"outcome"}, // accepted, rejected, failed
		),
		HintsOpened: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hints_opened_total",
			Help:      "Hints revealed across all attempts",
		}),
		Photos: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "photos_attached_total",
			Help:      "Photos attached to attempts",
		}),
		Syncs: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "leaderboard_syncs_total",
				Help:      "Leaderboard refreshes by result",
			},
			[]string{"result"},
		),
		PuzzleIndex: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "puzzle_index",
			Help:      "Zero-based index of the current puzzle",
		}),
		HuntComplete: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "hunt_completed",
			Help:      "1 once the last puzzle has been solved",
		}),
	}
}

// Notify implements progress.Notifier.
func (r *Recorder) Notify(e progress.Event) {
	switch e.Type {
	case progress.EventHintRevealed:
		r.HintsOpened.Inc()
	case progress.EventPhotoAttached:
		r.Photos.Inc()
	case progress.EventPuzzleAdvanced:
		r.Submissions.WithLabelValues("accepted").Inc()
		r.PuzzleIndex.Set(float64(e.PuzzleIndex))
	case progress.EventHuntCompleted:
		r.Submissions.WithLabelValues("accepted").Inc()
		r.HuntComplete.Set(1)
	case progress.EventSubmissionRejected:
		r.Submissions.WithLabelValues("rejected").Inc()
	case progress.EventSubmissionFailed:
		r.Submissions.WithLabelValues("failed").Inc()
	case progress.EventLeaderboardUpdated:
		r.Syncs.WithLabelValues("ok").Inc()
	case progress.EventLeaderboardSyncFailed:
		r.Syncs.WithLabelValues("error").Inc()
	case progress.EventLoaded:
		r.PuzzleIndex.Set(0)
	}
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
