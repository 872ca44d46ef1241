package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/playperu/geohunt/internal/geohunt"
)

// HealthResponse maps each checked dependency to its status.
type HealthResponse map[string]struct {
	Status string `json:"status"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Geohunt API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Participant companion for a timed location-based puzzle hunt.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Reports whether the scoring service is reachable.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/hunt/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/hunt/state")
	getState.SetSummary("Hunt state")
	getState.SetDescription("Current puzzle, hints, countdown and progress. Only state is set while loading.")
	getState.AddRespStructure(HuntStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getState)

	// POST /api/hunt/hints
	postHint, _ := r.NewOperationContext(http.MethodPost, "/api/hunt/hints")
	postHint.SetSummary("Reveal hint")
	postHint.SetDescription("Opens the next hint of the current puzzle. Counted in the next submission.")
	postHint.AddRespStructure(HintResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postHint.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postHint.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(postHint)

	// PUT /api/hunt/photo
	putPhoto, _ := r.NewOperationContext(http.MethodPut, "/api/hunt/photo")
	putPhoto.SetSummary("Attach photo")
	putPhoto.SetDescription("Multipart upload (field image). Sent with the next guess if the puzzle requires a photo.")
	putPhoto.AddRespStructure(PhotoResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putPhoto.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	putPhoto.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(putPhoto)

	// POST /api/hunt/guess
	postGuess, _ := r.NewOperationContext(http.MethodPost, "/api/hunt/guess")
	postGuess.SetSummary("Submit guess")
	postGuess.SetDescription("Submits a [lat, lng] guess for the current puzzle. One submission at a time.")
	postGuess.AddReqStructure(GuessRequest{})
	postGuess.AddRespStructure(GuessResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(postGuess)

	// GET /api/hunt/leaderboard
	getLeaderboard, _ := r.NewOperationContext(http.MethodGet, "/api/hunt/leaderboard")
	getLeaderboard.SetSummary("Leaderboard")
	getLeaderboard.SetDescription("Latest ranking snapshot, refreshed after each accepted guess.")
	getLeaderboard.AddRespStructure([]geohunt.LeaderboardEntry{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getLeaderboard)

	// GET /api/hunt/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/hunt/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events: countdown ticks, hint reveals, submissions and leaderboard updates.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
