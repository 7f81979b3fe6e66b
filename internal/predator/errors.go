package predator

import "errors"

var (
	// ErrUnknownType is returned when a string names no Type.
	ErrUnknownType = errors.New("unknown predator type")

	// ErrDuplicateID is returned when a catalog is built from records sharing an ID.
	ErrDuplicateID = errors.New("duplicate predator id")

	// ErrInvalidLink is returned when a record's link is not an absolute http(s) URL.
	ErrInvalidLink = errors.New("invalid link")
)
