package server

import (
	"net/http"

	"github.com/playperu/geohunt/internal/progress"
)

type HintResponse struct {
	Hint        string `json:"hint"`
	HintsOpened int    `json:"hintsOpened"`
}

func handleRevealHint(hunt *progress.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, n, err := hunt.RevealHint()
		if err != nil {
			writeHuntError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, HintResponse{Hint: text, HintsOpened: n})
	}
}
