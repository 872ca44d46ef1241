package server

import (
	"net/http"
	"time"

	"github.com/playperu/geohunt/internal/progress"
)

type PuzzleInfo struct {
	ID            string   `json:"id"`
	Description   string   `json:"description"`
	PhotoRequired bool     `json:"photoRequired"`
	TotalHints    int      `json:"totalHints"`
	RevealedHints []string `json:"revealedHints"`
}

type HuntStateResponse struct {
	State             string      `json:"state"`
	HuntID            string      `json:"huntId,omitempty"`
	Name              string      `json:"name,omitempty"`
	Description       string      `json:"description,omitempty"`
	EndTime           *time.Time  `json:"endTime,omitempty"`
	Remaining         string      `json:"remaining,omitempty"`
	ParticipantsCount int         `json:"participantsCount"`
	PuzzleIndex       int         `json:"puzzleIndex"`
	TotalPuzzles      int         `json:"totalPuzzles"`
	CurrentPuzzle     *PuzzleInfo `json:"currentPuzzle"`
	HintsOpened       int         `json:"hintsOpened"`
	PhotoPending      bool        `json:"photoPending"`
	Submitting        bool        `json:"submitting"`
}

func handleHuntState(hunt *progress.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, stateResponse(hunt.Snapshot()))
	}
}

func stateResponse(s progress.Snapshot) HuntStateResponse {
	resp := HuntStateResponse{State: string(s.State)}
	if s.State == progress.StateLoading {
		return resp
	}

	end := s.EndTime
	resp.HuntID = s.HuntID
	resp.Name = s.Name
	resp.Description = s.Description
	resp.EndTime = &end
	resp.Remaining = s.Remaining
	resp.ParticipantsCount = s.ParticipantsCount
	resp.PuzzleIndex = s.PuzzleIndex
	resp.TotalPuzzles = s.TotalPuzzles
	resp.HintsOpened = s.HintsOpened
	resp.PhotoPending = s.PhotoPending
	resp.Submitting = s.Submitting
	if s.Puzzle != nil {
		resp.CurrentPuzzle = &PuzzleInfo{
			ID:            s.Puzzle.ID,
			Description:   s.Puzzle.Description,
			PhotoRequired: s.Puzzle.PhotoRequired,
			TotalHints:    len(s.Puzzle.Hints),
			RevealedHints: s.RevealedHints,
		}
	}
	return resp
}
