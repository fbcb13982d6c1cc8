package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when a provider is not wired up.
var ErrProviderUnavailable = errors.New("provider unavailable")

// UpstreamError captures a non-2xx or otherwise failed upstream response.
type UpstreamError struct {
	Source     string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Source, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Source, msg)
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
