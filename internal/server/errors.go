package server

import (
	"errors"
	"net/http"

	"github.com/playperu/geohunt/internal/geohunt"
	"github.com/playperu/geohunt/internal/progress"
	"github.com/playperu/geohunt/internal/scoring"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeHuntError maps controller and scoring errors to a status code.
// msg overrides the error text when set.
func writeHuntError(w http.ResponseWriter, err error, msg string) {
	if msg == "" {
		msg = err.Error()
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, progress.ErrNotLoaded), errors.Is(err, progress.ErrClosed):
		status = http.StatusServiceUnavailable
	case errors.Is(err, progress.ErrSubmissionInFlight),
		errors.Is(err, progress.ErrHuntCompleted),
		errors.Is(err, progress.ErrNoMoreHints):
		status = http.StatusConflict
	case errors.Is(err, progress.ErrMissingContext), errors.Is(err, geohunt.ErrInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, scoring.ErrRejected):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, scoring.ErrNetwork):
		status = http.StatusBadGateway
	}
	writeError(w, status, msg)
}
