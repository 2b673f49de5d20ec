// Package client is the HTTP client for the Agent Mart marketplace API.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrMissingAPIKey is returned by New when no API key is configured. It is
// raised synchronously, before any network I/O.
var ErrMissingAPIKey = errors.New("client: API key is required")

// Error represents a failed API exchange. StatusCode is zero for transport
// and decode failures; Body holds the parsed response body for diagnostics.
type Error struct {
	StatusCode int
	Message    string
	Body       json.RawMessage
	cause      error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("agentmart: %s", e.Message)
	}
	return fmt.Sprintf("agentmart: %s (HTTP %d)", e.Message, e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.StatusCode == http.StatusUnauthorized
}

// IsTransport reports whether err is a network or decode failure that never
// produced an HTTP status.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.StatusCode == 0
}

// IsInsufficientBalance reports whether err indicates the wallet could not
// cover a purchase. The backend has no structured code for this yet, so a
// 402 status or a message substring match is accepted.
func IsInsufficientBalance(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	if e.StatusCode == http.StatusPaymentRequired {
		return true
	}
	return strings.Contains(strings.ToLower(e.Message), "insufficient balance")
}

// newAPIError builds an Error from a non-2xx response. The message is taken
// from the body's "error" or "message" field when present.
func newAPIError(statusCode int, body json.RawMessage) *Error {
	msg := errorMessage(body)
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	if msg == "" {
		msg = "request failed"
	}
	return &Error{StatusCode: statusCode, Message: msg, Body: body}
}

func newTransportError(msg string, cause error) *Error {
	return &Error{Message: fmt.Sprintf("%s: %v", msg, cause), cause: cause}
}

func errorMessage(body json.RawMessage) string {
	var probe struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return ""
	}
	if probe.Error != "" {
		return probe.Error
	}
	return probe.Message
}
