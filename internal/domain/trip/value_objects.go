package trip

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRoute = errors.New("route must follow the 'Origin - Destination' format")
	ErrEmptyOwner   = errors.New("owner must not be empty")
)

// Route is a "Origin - Destination" pair kept as entered by the owner.
type Route struct {
	value string
}

func NewRoute(s string) (Route, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || !strings.Contains(trimmed, "-") {
		return Route{}, ErrInvalidRoute
	}
	origin, destination, _ := strings.Cut(trimmed, "-")
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return Route{}, ErrInvalidRoute
	}
	return Route{value: trimmed}, nil
}

func (r Route) String() string {
	return r.value
}

func (r Route) Origin() string {
	origin, _, _ := strings.Cut(r.value, "-")
	return strings.TrimSpace(origin)
}

func (r Route) Destination() string {
	_, destination, _ := strings.Cut(r.value, "-")
	return strings.TrimSpace(destination)
}

// Money is a price in integer cents.
type Money int64

func NewMoney(cents int64) Money {
	return Money(cents)
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) IsPositive() bool {
	return m > 0
}
