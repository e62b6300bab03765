package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	ErrUnexpected   = errors.New("unexpected response")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a server-reported failure decoded from {"error": {...}}.
// Fields holds the per-field messages found next to "message".
type Error struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("api error %d: %s (%s)", e.Status, e.Message, strings.Join(parts, "; "))
}

func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

type errorEnvelope struct {
	Error map[string]any `json:"error"`
}

// decodeError turns a failed response body into *Error, or into a wrapped
// ErrUnexpected when the body is not the structured error shape.
func decodeError(status int, body []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil || env.Error == nil {
		if status == http.StatusUnauthorized {
			return fmt.Errorf("%w: %w: status %d", ErrUnexpected, ErrUnauthorized, status)
		}
		return fmt.Errorf("%w: status %d", ErrUnexpected, status)
	}

	apiErr := &Error{Status: status, Fields: map[string]string{}}
	for k, v := range env.Error {
		s, ok := v.(string)
		if !ok || s == "" {
			continue
		}
		if k == "message" {
			apiErr.Message = s
			continue
		}
		apiErr.Fields[k] = s
	}
	return apiErr
}

// Message returns the server-reported message carried by err, if any.
func Message(err error) (string, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}
