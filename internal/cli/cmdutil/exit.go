// Package cmdutil carries the per-invocation state threaded into every
// command handler, plus the exit-code contract scripts depend on.
package cmdutil

import (
	"errors"
	"fmt"

	"github.com/agentmart-dev/agentmart/internal/client"
)

// Exit codes are part of the CLI's scripting contract and must stay stable
// across releases.
const (
	ExitOK                  = 0
	ExitGeneral             = 1 // includes missing authentication
	ExitNetwork             = 2
	ExitInsufficientBalance = 3
	ExitNotFound            = 4
	ExitPathConflict        = 5
)

// ErrNotAuthenticated is returned before any network work when a command
// needs an API key and none was resolved.
var ErrNotAuthenticated = errors.New("no API key configured")

// PathConflictError reports a local filesystem conflict, e.g. an install
// target that already exists.
type PathConflictError struct {
	Path string
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("path already exists: %s", e.Path)
}

// Code maps an error onto the exit-code contract.
func Code(err error) int {
	if err == nil {
		return ExitOK
	}
	var pathErr *PathConflictError
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return ExitGeneral
	case errors.As(err, &pathErr):
		return ExitPathConflict
	case client.IsInsufficientBalance(err):
		return ExitInsufficientBalance
	case client.IsNotFound(err):
		return ExitNotFound
	case client.IsTransport(err):
		return ExitNetwork
	default:
		return ExitGeneral
	}
}

// Suggestion returns the how-to-fix line paired with an error in human
// mode, or "" when the cause is not user-addressable.
func Suggestion(err error) string {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return "Set AGENTMART_API_KEY or run 'amctl auth <key>' to save a key."
	case client.IsInsufficientBalance(err):
		return "Top up your wallet: run 'amctl wallet deposit-address' for funding instructions."
	case client.IsUnauthorized(err):
		return "Check that your API key is valid; re-register with 'amctl register' if it was revoked."
	default:
		var pathErr *PathConflictError
		if errors.As(err, &pathErr) {
			return "Choose a different target directory or remove the existing one."
		}
		return ""
	}
}
