package booking

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrBookingTerminal   = errors.New("booking is in a terminal status")
)

// Status is the booking lifecycle state. The happy path runs
// pending -> confirmed -> in_progress -> ready -> completed; a provider may
// move a pending booking to rejected instead. rejected and completed are
// terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusReady      Status = "ready"
	StatusCompleted  Status = "completed"
	StatusRejected   Status = "rejected"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusRejected},
	StatusConfirmed:  {StatusInProgress},
	StatusInProgress: {StatusReady},
	StatusReady:      {StatusCompleted},
	StatusCompleted:  nil,
	StatusRejected:   nil,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// CanTransitionTo reports whether the lifecycle permits moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
