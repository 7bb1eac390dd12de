package checkout

import "errors"

// ErrSubmitInProgress is returned when a flow is asked to submit while a
// previous submission has not settled yet.
var ErrSubmitInProgress = errors.New("submission already in progress")

type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
