package networking

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrUnexpectedShape = errors.New("unexpected response shape")

// HTTPError is returned for any non-2xx response.
// Message is what gets shown to the user.
type HTTPError struct {
	Op      string
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func newHTTPError(op string, status int, body []byte) *HTTPError {
	return &HTTPError{
		Op:      op,
		Status:  status,
		Message: serverMessage(op, status, body),
	}
}

// Pulls the server provided message out of an error body, falling back to a generic one
func serverMessage(op string, status int, body []byte) string {
	fallback := fmt.Sprintf("failed to %s: %d", op, status)

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return fallback
	}

	if !json.Valid(body) {
		// Plain text bodies are passed through, html error pages are not
		if strings.HasPrefix(trimmed, "<") {
			return fallback
		}
		return trimmed
	}

	// Valid JSON of any other shape never reaches the user raw
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fallback
	}

	for _, field := range []string{"error", "message"} {
		if text, ok := parsed[field].(string); ok && text != "" {
			return text
		}
	}

	return fallback
}

// Returns the status code if err came from a non-2xx response
func StatusCode(err error) (int, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status, true
	}

	return 0, false
}
