package server

import (
	"log/slog"
	"net/http"

	"github.com/playperu/geohunt/internal/geohunt"
	"github.com/playperu/geohunt/internal/progress"
)

type GuessRequest struct {
	// Location is [lat, lng].
	Location *[2]float64 `json:"location"`
}

type GuessResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	AdvancePuzzle bool   `json:"advancePuzzle"`
	State         string `json:"state"`
	PuzzleIndex   int    `json:"puzzleIndex"`
}

func handleGuess(hunt *progress.Controller, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GuessRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Location == nil {
			writeError(w, http.StatusBadRequest, "location is required")
			return
		}

		res, err := hunt.Submit(r.Context(), geohunt.Location{Lat: req.Location[0], Lng: req.Location[1]})
		if err != nil {
			logger.Debug("guess not accepted", "error", err)
			writeHuntError(w, err, res.Message)
			return
		}

		snap := hunt.Snapshot()
		writeJSON(w, http.StatusOK, GuessResponse{
			Success:       res.Success,
			Message:       res.Message,
			AdvancePuzzle: res.AdvancePuzzle,
			State:         string(snap.State),
			PuzzleIndex:   snap.PuzzleIndex,
		})
	}
}
