package scoring

import (
	"errors"
	"fmt"
)

var (
	ErrRejected         = errors.New("rejected by scoring service")
	ErrNetwork          = errors.New("scoring service unreachable")
	ErrUnexpectedStatus = errors.New("unexpected status from scoring service")
)

// fallbackRejection is used when the service declines a guess without
// saying why.
const fallbackRejection = "Failed to submit answer"

// RejectedError is returned when the service answers a submission with a
// non-success status. Message is safe to show to the participant.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("submission rejected (status %d): %s", e.Status, e.Message)
}

func (e *RejectedError) Is(target error) bool { return target == ErrRejected }

// NetworkError wraps a transport-level failure: the request never got a
// response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }
