package numbers

import "errors"

var (
	// ErrInvalidInput is returned when the url parameter is missing or is not a list.
	ErrInvalidInput = errors.New("url parameter must be a list of URLs")
	// ErrInternal is returned when the fetch tasks could not be joined.
	ErrInternal = errors.New("internal aggregation failure")
)

// Client-facing messages. Internal details are logged, never returned.
const (
	msgInvalidURLs   = "Invalid URLs"
	msgInternalError = "Internal server error"
)
