package reservation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidCode = errors.New("invalid reservation code")

// Code identifies a reservation as "<tripID>-<n>", where n is the per-trip
// sequence number assigned at admission.
type Code struct {
	value string
}

func NewCode(tripID int64, seq int) Code {
	return Code{value: fmt.Sprintf("%d-%d", tripID, seq)}
}

// ParseCode validates the "<tripID>-<n>" shape of a code supplied by a caller.
func ParseCode(s string) (Code, error) {
	tripPart, seqPart, ok := strings.Cut(s, "-")
	if !ok {
		return Code{}, ErrInvalidCode
	}
	if _, err := strconv.ParseInt(tripPart, 10, 64); err != nil {
		return Code{}, ErrInvalidCode
	}
	seq, err := strconv.Atoi(seqPart)
	if err != nil || seq < 1 {
		return Code{}, ErrInvalidCode
	}
	return Code{value: s}, nil
}

func (c Code) String() string {
	return c.value
}

func (c Code) TripID() int64 {
	tripPart, _, _ := strings.Cut(c.value, "-")
	id, _ := strconv.ParseInt(tripPart, 10, 64)
	return id
}
