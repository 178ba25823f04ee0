package urlquery

import (
	"fmt"
	"strings"
)

// ValidationError reports request parameters rejected before any network I/O.
// Every failing parameter is listed; a request that fails validation is never
// transmitted.
type ValidationError struct {
	Failures []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Failures, "; ")
}

// APIError represents a non-success HTTP response from the API.
type APIError struct {
	StatusCode int
	Body       string
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Body
	}
	return fmt.Sprintf("urlquery API %d: %s", e.StatusCode, msg)
}

// TransportError wraps network failures, timeouts and undecodable response
// bodies. Timeout reports whether the underlying failure was a deadline or
// I/O timeout.
type TransportError struct {
	URL     string
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("urlquery: request to %s timed out: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("urlquery: request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
