// Package geohunt defines the core domain types shared by the hunt
// progression packages. Validation uses struct tags checked by
// go-playground/validator.
package geohunt

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

type HuntSession struct {
	HuntID            string `validate:"required"`
	Name              string
	Description       string
	EndTime           time.Time `validate:"required"`
	ParticipantsCount int       `validate:"gte=0"`
	Puzzles           []Puzzle  `validate:"min=1,dive"`
}

type Puzzle struct {
	ID            string `validate:"required"`
	Description   string
	Hints         []string
	PhotoRequired bool
}

// Location is a guessed coordinate pair in decimal degrees.
type Location struct {
	Lat float64 `validate:"latitude"`
	Lng float64 `validate:"longitude"`
}

// Coordinates returns the pair in the [lat, lng] order the scoring
// service expects.
func (l Location) Coordinates() [2]float64 {
	return [2]float64{l.Lat, l.Lng}
}

type Photo struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Identity struct {
	UserID string
}

type SubmissionResult struct {
	Success       bool
	Message       string
	AdvancePuzzle bool
}

type LeaderboardEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

var ErrInvalid = errors.New("invalid")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate reports whether the session can drive a hunt.
func (s HuntSession) Validate() error {
	if err := validatorInstance().Struct(s); err != nil {
		return fmt.Errorf("%w hunt session: %v", ErrInvalid, err)
	}
	return nil
}

func (l Location) Validate() error {
	if err := validatorInstance().Struct(l); err != nil {
		return fmt.Errorf("%w location: %v", ErrInvalid, err)
	}
	return nil
}
