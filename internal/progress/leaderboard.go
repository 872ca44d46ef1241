package progress

import (
	"context"
	"time"

	"github.com/playperu/geohunt/internal/geohunt"
)

// syncLeaderboard refreshes the leaderboard in the background. Failures
// leave the previous snapshot in place and are only logged. When syncs
// overlap, a result older than one already applied is discarded.
func (c *Controller) syncLeaderboard(huntID string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.syncSeq++
	seq := c.syncSeq
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()

		rows, err := c.fetchLeaderboard(c.ctx, huntID)
		if err != nil {
			if c.ctx.Err() != nil {
				return
			}
			c.logger.Warn("leaderboard sync failed", "hunt_id", huntID, "error", err)
			c.mu.Lock()
			ev := c.eventLocked(EventLeaderboardSyncFailed)
			c.mu.Unlock()
			ev.Message = err.Error()
			c.notifier.Notify(ev)
			return
		}

		c.mu.Lock()
		if seq < c.appliedSeq {
			c.mu.Unlock()
			return
		}
		c.appliedSeq = seq
		c.leaderboard = rows
		ev := c.eventLocked(EventLeaderboardUpdated)
		c.mu.Unlock()

		c.logger.Debug("leaderboard updated", "hunt_id", huntID, "entries", len(rows))
		c.notifier.Notify(ev)
	}()
}

func (c *Controller) fetchLeaderboard(ctx context.Context, huntID string) ([]geohunt.LeaderboardEntry, error) {
	var lastErr error
	for try := 0; try <= c.retries; try++ {
		if try > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-c.clock.After(c.backoff * time.Duration(try)):
			}
		}

		rows, err := c.scorer.Leaderboard(ctx, huntID)
		if err == nil {
			if rows == nil {
				rows = []geohunt.LeaderboardEntry{}
			}
			return rows, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Debug("leaderboard fetch attempt failed", "hunt_id", huntID, "try", try+1, "error", err)
	}
	return nil, lastErr
}
