package accountclient

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the session token is missing or unknown.
var ErrUnauthorized = errors.New("accountclient: not authenticated")

// APIError is an error envelope returned by the registry.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("registry responded %d: %s", e.StatusCode, e.Message)
}

// IsAPIError reports whether err carries an *APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
