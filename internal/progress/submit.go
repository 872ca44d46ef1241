package progress

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/playperu/geohunt/internal/geohunt"
	"github.com/playperu/geohunt/internal/scoring"
)

const defaultSuccessMessage = "Answer submitted successfully"

// Submit sends a guess for the current puzzle. Only one submission may
// be in flight; a second call returns ErrSubmissionInFlight without
// touching the network. On success the attempt state is reset, the
// puzzle advances (or the hunt completes on the last puzzle) and one
// leaderboard sync is started. On failure nothing changes and the
// participant may retry.
func (c *Controller) Submit(ctx context.Context, guess geohunt.Location) (geohunt.SubmissionResult, error) {
	c.mu.Lock()
	if err := c.activeLocked(); err != nil {
		c.mu.Unlock()
		return geohunt.SubmissionResult{Message: err.Error()}, err
	}
	if c.inFlight {
		c.mu.Unlock()
		return geohunt.SubmissionResult{Message: ErrSubmissionInFlight.Error()}, ErrSubmissionInFlight
	}
	if c.identity.UserID == "" || c.session.HuntID == "" {
		c.mu.Unlock()
		return geohunt.SubmissionResult{Message: ErrMissingContext.Error()}, ErrMissingContext
	}
	if err := guess.Validate(); err != nil {
		c.mu.Unlock()
		return geohunt.SubmissionResult{Message: err.Error()}, err
	}

	index := c.attempt.index
	total := len(c.session.Puzzles)
	puzzle := c.session.Puzzles[index]
	sub := scoring.Submission{
		HuntID:         c.session.HuntID,
		UserID:         c.identity.UserID,
		PuzzleID:       puzzle.ID,
		Guess:          guess,
		TimeTaken:      elapsedSeconds(c.startedAt, c.clock.Now()),
		HintsOpened:    c.attempt.hints.Count(),
		IdempotencyKey: c.attempt.key,
	}
	if puzzle.PhotoRequired && c.attempt.photo != nil {
		sub.Photo = c.attempt.photo
	}
	c.inFlight = true
	c.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.ctx, cancel)
	msg, err := c.scorer.SubmitGuess(ctx, sub)
	stop()
	cancel()

	c.mu.Lock()
	c.inFlight = false
	if err != nil {
		ev := c.eventLocked(EventSubmissionFailed)
		if errors.Is(err, scoring.ErrRejected) {
			// The service answered, so the next guess is a new send.
			c.attempt.key = uuid.NewString()
			ev.Type = EventSubmissionRejected
		}
		ev.Message = userMessage(err)
		c.mu.Unlock()

		c.logger.Warn("submission failed",
			"hunt_id", sub.HuntID,
			"puzzle_id", sub.PuzzleID,
			"puzzle_index", index,
			"error", err,
		)
		c.notifier.Notify(ev)
		return geohunt.SubmissionResult{Message: ev.Message}, err
	}

	advance := index < total-1
	c.attempt.hints.Reset()
	c.attempt.photo = nil
	c.attempt.key = uuid.NewString()
	if advance {
		c.attempt.index++
	} else {
		c.state = StateCompleted
	}
	ev := c.eventLocked(EventPuzzleAdvanced)
	if !advance {
		ev.Type = EventHuntCompleted
	}
	if msg == "" {
		msg = defaultSuccessMessage
	}
	ev.Message = msg
	c.mu.Unlock()

	c.logger.Info("submission accepted",
		"hunt_id", sub.HuntID,
		"puzzle_id", sub.PuzzleID,
		"puzzle_index", index,
		"hints_opened", sub.HintsOpened,
		"time_taken_s", sub.TimeTaken,
		"completed", !advance,
	)
	c.notifier.Notify(ev)
	c.syncLeaderboard(sub.HuntID)

	return geohunt.SubmissionResult{Success: true, Message: msg, AdvancePuzzle: advance}, nil
}

// elapsedSeconds floors the time since start to whole seconds. A zero
// start means no start was recorded.
func elapsedSeconds(start, now time.Time) int64 {
	if start.IsZero() || now.Before(start) {
		return 0
	}
	return int64(now.Sub(start) / time.Second)
}

// userMessage extracts the text a participant should see for err.
func userMessage(err error) string {
	var rej *scoring.RejectedError
	if errors.As(err, &rej) {
		return rej.Message
	}
	if errors.Is(err, scoring.ErrNetwork) {
		return "Could not reach the scoring service, please try again"
	}
	return err.Error()
}
