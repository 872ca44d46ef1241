package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr            string        `env:"HTTP_ADDR" envDefault:":8080" validate:"required"`
	LogLevel            slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
	ScoringURL          string        `env:"SCORING_URL" envDefault:"http://localhost:5217" validate:"required,url"`
	HuntID              string        `env:"HUNT_ID" validate:"required"`
	UserID              string        `env:"USER_ID"`
	ScoringTimeout      time.Duration `env:"SCORING_TIMEOUT" envDefault:"15s" validate:"gt=0"`
	LeaderboardRetries  int           `env:"LEADERBOARD_RETRIES" envDefault:"2" validate:"gte=0,lte=10"`
	TickInterval        time.Duration `env:"TICK_INTERVAL" envDefault:"1s" validate:"gt=0"`
	LoadRetryInterval   time.Duration `env:"LOAD_RETRY_INTERVAL" envDefault:"5s" validate:"gt=0"`
	ParticipantsRefresh time.Duration `env:"PARTICIPANTS_REFRESH" envDefault:"1m" validate:"gt=0"`
}

// Load reads the optional .env files, then the environment. Variables
// already set in the environment win over .env values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
