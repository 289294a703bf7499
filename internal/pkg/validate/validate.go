// Package validate holds the field-format checks applied to trip input at the
// handler boundary. The booking core never calls these; it only sees values
// that already passed.
package validate

import "regexp"

var (
	routePattern = regexp.MustCompile(`^[A-Za-z]+\s*-\s*[A-Za-z]+$`)
	ownerPattern = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+$`)
)

// Route reports whether s follows the "Origin - Destination" format.
func Route(s string) bool {
	return routePattern.MatchString(s)
}

// OwnerName reports whether s is two capitalized names separated by a space.
func OwnerName(s string) bool {
	return ownerPattern.MatchString(s)
}

func Seats(n int) bool {
	return n > 0
}

func PriceCents(cents int64) bool {
	return cents > 0
}

func DurationMinutes(min int) bool {
	return min > 0
}
