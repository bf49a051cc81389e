// Package identifier validates entity identifiers taken from request
// paths before any query is issued. Pure, no I/O.
package identifier

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrMissing is returned when the identifier is absent or blank.
	ErrMissing = errors.New("identifier is missing")

	// ErrInvalid is returned when the identifier is present but not a
	// well-formed positive integer id.
	ErrInvalid = errors.New("identifier is invalid")
)

// Parse validates raw and returns it as an entity id.
// Leading/trailing whitespace is tolerated; zero is not a valid id.
func Parse(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrMissing
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalid
	}
	return uint(id), nil
}
