package cmdutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentmart-dev/agentmart/internal/client"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"not authenticated", ErrNotAuthenticated, ExitGeneral},
		{"wrapped not authenticated", fmt.Errorf("skills list: %w", ErrNotAuthenticated), ExitGeneral},
		{"path conflict", &PathConflictError{Path: "/tmp/x"}, ExitPathConflict},
		{"insufficient balance 402", &client.Error{StatusCode: http.StatusPaymentRequired, Message: "nope"}, ExitInsufficientBalance},
		{"insufficient balance substring", &client.Error{StatusCode: http.StatusBadRequest, Message: "Insufficient balance"}, ExitInsufficientBalance},
		{"not found", &client.Error{StatusCode: http.StatusNotFound, Message: "Skill not found"}, ExitNotFound},
		{"transport", &client.Error{Message: "connection refused"}, ExitNetwork},
		{"unauthorized is general", &client.Error{StatusCode: http.StatusUnauthorized, Message: "bad key"}, ExitGeneral},
		{"plain error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestSuggestion(t *testing.T) {
	assert.Contains(t, Suggestion(ErrNotAuthenticated), "AGENTMART_API_KEY")
	assert.Contains(t, Suggestion(&client.Error{StatusCode: http.StatusPaymentRequired}), "deposit-address")
	assert.Contains(t, Suggestion(&client.Error{StatusCode: http.StatusUnauthorized}), "register")
	assert.Contains(t, Suggestion(&PathConflictError{Path: "/tmp/x"}), "different target")
	assert.Empty(t, Suggestion(errors.New("boom")))
}
