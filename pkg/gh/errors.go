package gh

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError represents a non-2xx response from the GitHub API.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}

// IsNotFound reports whether err is a 404 from the API, i.e. the username
// does not exist.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}
