// Package progress drives a participant through a timed hunt: it owns
// the current puzzle index, the per-attempt hint count and photo, the
// single in-flight submission, the countdown tick and the leaderboard
// snapshot.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/playperu/geohunt/internal/countdown"
	"github.com/playperu/geohunt/internal/geohunt"
	"github.com/playperu/geohunt/internal/hint"
	"github.com/playperu/geohunt/internal/scoring"
)

type State string

const (
	StateLoading   State = "loading"
	StateActive    State = "active"
	StateCompleted State = "completed"
)

var (
	ErrNotLoaded          = errors.New("hunt not loaded")
	ErrAlreadyLoaded      = errors.New("hunt already loaded")
	ErrMissingContext     = errors.New("missing user or hunt information")
	ErrHuntCompleted      = errors.New("hunt already completed")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrNoMoreHints        = errors.New("no more hints for this puzzle")
	ErrClosed             = errors.New("controller closed")
)

// Scorer is the part of the scoring service the controller uses.
type Scorer interface {
	SubmitGuess(ctx context.Context, s scoring.Submission) (string, error)
	Leaderboard(ctx context.Context, huntID string) ([]geohunt.LeaderboardEntry, error)
}

type Options struct {
	Clock    clockwork.Clock
	Logger   *slog.Logger
	Notifier Notifier
	// TickInterval defaults to one second.
	TickInterval time.Duration
	// LeaderboardRetries is how many extra fetches a failed sync gets.
	LeaderboardRetries int
	// RetryBackoff grows linearly per retry. Defaults to one second.
	RetryBackoff time.Duration
}

// attempt is the state scoped to one puzzle. It is reset whenever the
// puzzle index changes.
type attempt struct {
	index int
	hints hint.Tracker
	photo *geohunt.Photo
	// key is sent with every submission of this attempt until the
	// service gives a definite answer.
	key string
}

type Controller struct {
	scorer       Scorer
	identity     geohunt.Identity
	clock        clockwork.Clock
	logger       *slog.Logger
	notifier     Notifier
	tickInterval time.Duration
	retries      int
	backoff      time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu          sync.Mutex
	state       State
	session     geohunt.HuntSession
	startedAt   time.Time
	attempt     attempt
	inFlight    bool
	leaderboard []geohunt.LeaderboardEntry
	syncSeq     uint64
	appliedSeq  uint64
	ticker      *countdown.Ticker
	closed      bool
}

// New returns a controller in the loading state. identity comes from the
// auth collaborator; an empty UserID is only reported when a guess is
// submitted.
func New(scorer Scorer, identity geohunt.Identity, opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Notifier == nil {
		opts.Notifier = discard{}
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		scorer:       scorer,
		identity:     identity,
		clock:        opts.Clock,
		logger:       opts.Logger.With("component", "progress"),
		notifier:     opts.Notifier,
		tickInterval: opts.TickInterval,
		retries:      max(opts.LeaderboardRetries, 0),
		backoff:      opts.RetryBackoff,
		ctx:          ctx,
		cancel:       cancel,
		state:        StateLoading,
		leaderboard:  []geohunt.LeaderboardEntry{},
	}
}

// Load hands the controller its hunt session and moves it to active. The
// attempt clock starts now.
func (c *Controller) Load(s geohunt.HuntSession) error {
	if err := s.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state != StateLoading {
		c.mu.Unlock()
		return ErrAlreadyLoaded
	}
	s.Puzzles = append([]geohunt.Puzzle(nil), s.Puzzles...)
	c.session = s
	c.state = StateActive
	c.startedAt = c.clock.Now()
	c.attempt = attempt{key: uuid.NewString()}
	ev := c.eventLocked(EventLoaded)
	c.mu.Unlock()

	c.logger.Info("hunt loaded",
		"hunt_id", s.HuntID,
		"puzzles", len(s.Puzzles),
		"end_time", s.EndTime,
	)
	c.notifier.Notify(ev)
	return nil
}

// Start begins the countdown tick. It is a no-op when already started or
// closed.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.ticker != nil {
		return
	}
	c.ticker = countdown.Start(c.ctx, c.clock, c.tickInterval, c.tick)
}

func (c *Controller) tick(now time.Time) {
	c.mu.Lock()
	if c.state == StateLoading {
		c.mu.Unlock()
		return
	}
	ev := c.eventLocked(EventTick)
	ev.Remaining = countdown.Remaining(c.session.EndTime, now)
	c.mu.Unlock()

	c.notifier.Notify(ev)
}

// Close stops the tick, cancels any in-flight leaderboard fetch or
// submission, and waits for background work to finish.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	ticker := c.ticker
	c.mu.Unlock()

	c.cancel()
	if ticker != nil {
		ticker.Stop()
	}
	c.wg.Wait()
}

// RevealHint opens the next hint of the current puzzle and returns its
// text along with the number of hints opened in this attempt.
func (c *Controller) RevealHint() (string, int, error) {
	c.mu.Lock()
	if err := c.activeLocked(); err != nil {
		c.mu.Unlock()
		return "", 0, err
	}
	puzzle := c.session.Puzzles[c.attempt.index]
	if c.attempt.hints.Count() >= len(puzzle.Hints) {
		c.mu.Unlock()
		return "", c.attempt.hints.Count(), ErrNoMoreHints
	}
	n := c.attempt.hints.Reveal()
	text := puzzle.Hints[n-1]
	ev := c.eventLocked(EventHintRevealed)
	c.mu.Unlock()

	c.notifier.Notify(ev)
	return text, n, nil
}

// AttachPhoto sets the photo sent with the next submission, replacing
// any earlier one. It is refused while a submission is in flight.
func (c *Controller) AttachPhoto(p geohunt.Photo) error {
	if len(p.Data) == 0 {
		return fmt.Errorf("%w photo: empty", geohunt.ErrInvalid)
	}

	c.mu.Lock()
	if err := c.activeLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	if c.inFlight {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}
	p.Data = append([]byte(nil), p.Data...)
	c.attempt.photo = &p
	ev := c.eventLocked(EventPhotoAttached)
	ev.Message = p.Filename
	c.mu.Unlock()

	c.notifier.Notify(ev)
	return nil
}

// SetParticipants refreshes the participant count shown with the hunt.
func (c *Controller) SetParticipants(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateLoading && n >= 0 {
		c.session.ParticipantsCount = n
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Leaderboard returns a copy of the latest snapshot.
func (c *Controller) Leaderboard() []geohunt.LeaderboardEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]geohunt.LeaderboardEntry, len(c.leaderboard))
	copy(out, c.leaderboard)
	return out
}

type Snapshot struct {
	State             State
	HuntID            string
	Name              string
	Description       string
	EndTime           time.Time
	Remaining         string
	ParticipantsCount int
	PuzzleIndex       int
	TotalPuzzles      int
	Puzzle            *geohunt.Puzzle
	RevealedHints     []string
	HintsOpened       int
	PhotoPending      bool
	Submitting        bool
}

// Snapshot returns a consistent view of the controller. In the loading
// state only State is meaningful.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{State: c.state}
	if c.state == StateLoading {
		return snap
	}

	puzzle := c.session.Puzzles[c.attempt.index]
	opened := c.attempt.hints.Count()

	snap.HuntID = c.session.HuntID
	snap.Name = c.session.Name
	snap.Description = c.session.Description
	snap.EndTime = c.session.EndTime
	snap.Remaining = countdown.Remaining(c.session.EndTime, c.clock.Now())
	snap.ParticipantsCount = c.session.ParticipantsCount
	snap.PuzzleIndex = c.attempt.index
	snap.TotalPuzzles = len(c.session.Puzzles)
	snap.Puzzle = &puzzle
	snap.RevealedHints = append([]string{}, puzzle.Hints[:opened]...)
	snap.HintsOpened = opened
	snap.PhotoPending = c.attempt.photo != nil
	snap.Submitting = c.inFlight
	return snap
}

func (c *Controller) activeLocked() error {
	switch {
	case c.closed:
		return ErrClosed
	case c.state == StateLoading:
		return ErrNotLoaded
	case c.state == StateCompleted:
		return ErrHuntCompleted
	}
	return nil
}

func (c *Controller) eventLocked(t EventType) Event {
	return Event{
		Type:        t,
		HuntID:      c.session.HuntID,
		PuzzleIndex: c.attempt.index,
		HintsOpened: c.attempt.hints.Count(),
		At:          c.clock.Now(),
	}
}
