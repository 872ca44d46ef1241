package scoring

import (
	"time"

	"github.com/playperu/geohunt/internal/geohunt"
)

// Submission is one guess for one puzzle, frozen at the moment it is sent.
type Submission struct {
	HuntID      string
	UserID      string
	PuzzleID    string
	Guess       geohunt.Location
	TimeTaken   int64
	HintsOpened int
	// IdempotencyKey identifies the attempt. Resending the same attempt
	// must reuse it so the service can drop duplicates.
	IdempotencyKey string
	// Photo is attached only when non-nil.
	Photo *geohunt.Photo
}

type guessedLocation struct {
	Coordinates [2]float64 `json:"coordinates"`
}

type participationResponse struct {
	Data struct {
		HuntID            string `json:"huntId"`
		ParticipantsCount int    `json:"participantsCount"`
		Puzzles           struct {
			Name        string          `json:"name"`
			Description string          `json:"description"`
			EndTime     time.Time       `json:"endTime"`
			Puzzles     []puzzlePayload `json:"puzzles"`
		} `json:"puzzles"`
	} `json:"data"`
}

type puzzlePayload struct {
	ID          string   `json:"_id"`
	Description string   `json:"description"`
	Hints       []string `json:"hints"`
	PhotoReq    bool     `json:"photoReq"`
}

func (p participationResponse) session() geohunt.HuntSession {
	d := p.Data
	s := geohunt.HuntSession{
		HuntID:            d.HuntID,
		Name:              d.Puzzles.Name,
		Description:       d.Puzzles.Description,
		EndTime:           d.Puzzles.EndTime,
		ParticipantsCount: d.ParticipantsCount,
		Puzzles:           make([]geohunt.Puzzle, 0, len(d.Puzzles.Puzzles)),
	}
	for _, pz := range d.Puzzles.Puzzles {
		s.Puzzles = append(s.Puzzles, geohunt.Puzzle{
			ID:            pz.ID,
			Description:   pz.Description,
			Hints:         pz.Hints,
			PhotoRequired: pz.PhotoReq,
		})
	}
	return s
}
