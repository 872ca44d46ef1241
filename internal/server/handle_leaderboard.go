package server

import (
	"net/http"

	"github.com/playperu/geohunt/internal/progress"
)

func handleLeaderboard(hunt *progress.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, hunt.Leaderboard())
	}
}
