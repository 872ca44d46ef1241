package progress

import "time"

type EventType string

const (
	EventLoaded                EventType = "loaded"
	EventTick                  EventType = "tick"
	EventHintRevealed          EventType = "hint_revealed"
	EventPhotoAttached         EventType = "photo_attached"
	EventPuzzleAdvanced        EventType = "puzzle_advanced"
	EventHuntCompleted         EventType = "hunt_completed"
	EventSubmissionRejected    EventType = "submission_rejected"
	EventSubmissionFailed      EventType = "submission_failed"
	EventLeaderboardUpdated    EventType = "leaderboard_updated"
	EventLeaderboardSyncFailed EventType = "leaderboard_sync_failed"
)

// Event describes a change in the controller. Fields that do not apply
// to the event type are left zero.
type Event struct {
	Type        EventType `json:"type"`
	HuntID      string    `json:"huntId,omitempty"`
	PuzzleIndex int       `json:"puzzleIndex"`
	HintsOpened int       `json:"hintsOpened"`
	Remaining   string    `json:"remaining,omitempty"`
	Message     string    `json:"message,omitempty"`
	At          time.Time `json:"at"`
}

// Notifier receives controller events. Notify is called without the
// controller lock held and must not block.
type Notifier interface {
	Notify(Event)
}

type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) { f(e) }

// Notifiers fans an event out to every member in order.
type Notifiers []Notifier

func (ns Notifiers) Notify(e Event) {
	for _, n := range ns {
		if n != nil {
			n.Notify(e)
		}
	}
}

type discard struct{}

func (discard) Notify(Event) {}
