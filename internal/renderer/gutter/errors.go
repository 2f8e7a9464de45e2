package gutter

import "errors"

var (
	// ErrInvalidOffset is returned for offsets outside [0, document length].
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrInvalidLine is returned for lines outside [0, line count).
	ErrInvalidLine = errors.New("invalid line")

	// ErrNoHost is returned when the gutter is not attached to a host.
	ErrNoHost = errors.New("gutter has no host")
)
