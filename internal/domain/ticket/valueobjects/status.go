package valueobjects

import "fmt"

type Status string

const (
	StatusOpen         Status = "open"
	StatusPendingClose Status = "pending_close"
	StatusClosed       Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusOpen:         true,
	StatusPendingClose: true,
	StatusClosed:       true,
}

// statusTransitions encodes the monotonic lifecycle. Closed is terminal and
// never re-entered or exited.
var statusTransitions = map[Status][]Status{
	StatusOpen:         {StatusPendingClose, StatusClosed},
	StatusPendingClose: {StatusClosed},
	StatusClosed:       {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsPendingClose() bool {
	return s == StatusPendingClose
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return st, nil
}
