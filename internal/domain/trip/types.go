package trip

import "fmt"

// Status is the lifecycle state of a trip. Open trips accept reservations;
// closed and cancelled are terminal.
type Status string

const (
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusOpen, StatusClosed, StatusCancelled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown trip status %q", s)
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusCancelled
}
