package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/playperu/geohunt/internal/handler/health"
	"github.com/playperu/geohunt/internal/progress"
)

// Deps are the collaborators the HTTP surface drives.
type Deps struct {
	Hunt    *progress.Controller
	Broker  *Broker
	HuntID  string
	Checks  map[string]health.Checker
	Metrics http.Handler
}

func addRoutes(r chi.Router, logger *slog.Logger, d Deps) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Geohunt API", "/openapi.json", "/docs"))
	r.Mount("/healthz", health.NewHandler(logger, d.Checks).Routes())
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics)
	}

	r.Route("/api/hunt", func(r chi.Router) {
		r.Get("/state", handleHuntState(d.Hunt))
		r.Get("/leaderboard", handleLeaderboard(d.Hunt))
		r.Get("/events", handleEvents(d.Broker, d.HuntID))

		r.Group(func(r chi.Router) {
			r.Use(requireLoaded(d.Hunt))
			r.Post("/hints", handleRevealHint(d.Hunt))
			r.Put("/photo", handleAttachPhoto(d.Hunt))
			r.Post("/guess", handleGuess(d.Hunt, logger))
		})
	})
}
