package googlemaps

import (
	"errors"
	"fmt"
)

// UnavailableError reports a network or transport failure before any HTTP
// status was received.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("google maps unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// HTTPError reports a non-2xx HTTP status from the provider.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("google maps http error: status %d", e.StatusCode)
}

// APIError reports a provider body status outside {OK, ZERO_RESULTS}.
type APIError struct {
	Status  string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("google maps api error: %s (%s)", e.Status, e.Message)
	}
	return fmt.Sprintf("google maps api error: %s", e.Status)
}

// IsUnavailable reports whether err is a transport-level failure.
func IsUnavailable(err error) bool {
	var target *UnavailableError
	return errors.As(err, &target)
}
