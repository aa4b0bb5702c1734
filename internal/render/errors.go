package render

import "errors"

var (
	// ErrInvalidGenerations is returned for a negative generation count.
	ErrInvalidGenerations = errors.New("generations must be >= 0")

	// ErrNoOutput is returned when no output path is given.
	ErrNoOutput = errors.New("no output path")
)
