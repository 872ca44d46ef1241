package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/playperu/geohunt/internal/config"
	"github.com/playperu/geohunt/internal/geohunt"
	"github.com/playperu/geohunt/internal/handler/health"
	"github.com/playperu/geohunt/internal/metrics"
	"github.com/playperu/geohunt/internal/progress"
	"github.com/playperu/geohunt/internal/scoring"
	"github.com/playperu/geohunt/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	if cfg.UserID == "" {
		logger.Warn("USER_ID not set, guesses will be refused")
	}

	clock := clockwork.NewRealClock()
	client := scoring.NewClient(cfg.ScoringURL, cfg.ScoringTimeout, logger)
	broker := server.NewBroker()
	recorder := metrics.NewRecorder()

	hunt := progress.New(client, geohunt.Identity{UserID: cfg.UserID}, progress.Options{
		Clock:              clock,
		Logger:             logger,
		Notifier:           progress.Notifiers{broker, recorder},
		TickInterval:       cfg.TickInterval,
		LeaderboardRetries: cfg.LeaderboardRetries,
	})
	defer hunt.Close()
	hunt.Start()

	srv := server.New(cfg.HTTPAddr, logger, server.Deps{
		Hunt:    hunt,
		Broker:  broker,
		HuntID:  cfg.HuntID,
		Checks:  map[string]health.Checker{"scoring": client},
		Metrics: recorder.Handler(),
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		return loadSession(gctx, logger, clock, client, hunt, cfg)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

// loadSession fetches the participant's hunt until it succeeds or ctx
// ends. The controller stays in the loading state meanwhile.
func loadSession(ctx context.Context, logger *slog.Logger, clock clockwork.Clock, client *scoring.Client, hunt *progress.Controller, cfg *config.Config) error {
	for {
		session, err := client.Participation(ctx, cfg.HuntID, cfg.UserID)
		if err == nil {
			if err := hunt.Load(session); err != nil {
				return fmt.Errorf("loading hunt session: %w", err)
			}
			return refreshParticipants(ctx, logger, clock, client, hunt, cfg)
		}
		logger.Warn("fetching hunt session failed, retrying",
			"hunt_id", cfg.HuntID,
			"retry_in", cfg.LoadRetryInterval.String(),
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil
		case <-clock.After(cfg.LoadRetryInterval):
		}
	}
}

// refreshParticipants keeps the participant count current. Failures are
// logged and retried on the next interval.
func refreshParticipants(ctx context.Context, logger *slog.Logger, clock clockwork.Clock, client *scoring.Client, hunt *progress.Controller, cfg *config.Config) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-clock.After(cfg.ParticipantsRefresh):
		}

		session, err := client.Participation(ctx, cfg.HuntID, cfg.UserID)
		if err != nil {
			logger.Debug("refreshing participants failed", "hunt_id", cfg.HuntID, "error", err)
			continue
		}
		hunt.SetParticipants(session.ParticipantsCount)
	}
}
