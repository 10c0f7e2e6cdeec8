package runpod

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNoPodID is returned when the API answers without a pod id.
var ErrNoPodID = errors.New("response did not contain a pod id")

// APIError is returned when the API rejects a request, either with a
// non-2xx status or with GraphQL errors.
type APIError struct {
	StatusCode int
	Messages   []string
	Raw        string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("runpod api error (status %d): %s", e.StatusCode, strings.Join(e.Messages, "; "))
	}
	return fmt.Sprintf("runpod api error (status %d): %s", e.StatusCode, e.Raw)
}

// IsUnauthorized checks if an error indicates a rejected API key.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}
