package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playperu/geohunt/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HUNT_ID", "hunt-1")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "http://localhost:5217", cfg.ScoringURL)
	assert.Equal(t, 15*time.Second, cfg.ScoringTimeout)
	assert.Equal(t, 2, cfg.LeaderboardRetries)
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, time.Minute, cfg.ParticipantsRefresh)
	assert.Empty(t, cfg.UserID)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("HUNT_ID=from-file\nUSER_ID=user-9\nSCORING_TIMEOUT=3s\n"), 0o600))
	t.Setenv("HUNT_ID", "from-env")
	t.Cleanup(func() {
		os.Unsetenv("USER_ID")
		os.Unsetenv("SCORING_TIMEOUT")
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.HuntID)
	assert.Equal(t, "user-9", cfg.UserID)
	assert.Equal(t, 3*time.Second, cfg.ScoringTimeout)
}

func TestLoadRequiresHuntID(t *testing.T) {
	t.Setenv("HUNT_ID", "")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HuntID")
}

func TestValidateRejectsBadScoringURL(t *testing.T) {
	cfg := config.Config{
		HTTPAddr:            ":8080",
		ScoringURL:          "not a url",
		HuntID:              "h",
		ScoringTimeout:      time.Second,
		TickInterval:        time.Second,
		LoadRetryInterval:   time.Second,
		ParticipantsRefresh: time.Minute,
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ScoringURL")
}
