package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// SourceError describes why a single source could not contribute numbers.
type SourceError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *SourceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("source %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("source %s: %v", e.URL, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the source was abandoned for exceeding the fetch timeout.
func (e *SourceError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}
