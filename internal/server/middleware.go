package server

import (
	"net/http"

	"github.com/playperu/geohunt/internal/progress"
)

// requireLoaded answers 503 until the hunt session has arrived, so the
// participant's client can retry instead of treating it as a failure.
func requireLoaded(hunt *progress.Controller) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hunt.State() == progress.StateLoading {
				w.Header().Set("Retry-After", "5")
				writeError(w, http.StatusServiceUnavailable, "hunt is still loading")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
