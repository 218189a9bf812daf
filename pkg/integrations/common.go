package integrations

import (
	"encoding/json"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/matzehuels/deptree/pkg/errors"
)

// DefaultTimeout bounds a single request/response cycle.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a non-success body is kept as the error message.
const maxErrorBody = 512

// NewHTTPClient creates an HTTP client with the given timeout.
// A non-positive timeout selects [DefaultTimeout].
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// checkStatus returns nil for 2xx responses and an API_ERROR otherwise.
// The message is taken from a JSON error body when one is present, else from
// the raw body truncated to a readable length.
func checkStatus(code int, body []byte) error {
	if code >= 200 && code < 300 {
		return nil
	}

	apiErr := &errors.APIError{Status: code}
	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
	} else {
		apiErr.Message = truncate(string(body), maxErrorBody)
	}
	return errors.Wrap(errors.ErrCodeAPI, apiErr, "service returned %d %s", code, http.StatusText(code))
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
