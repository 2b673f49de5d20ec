package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmart-dev/agentmart/pkg/models"
)

func skillDraft(title, category string) models.SkillDraft {
	return models.SkillDraft{Title: title, Description: "d", Category: category}
}

// countingTransport fails every request and records how many were attempted.
type countingTransport struct {
	calls int
}

func (t *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.calls++
	return nil, http.ErrHandlerTimeout
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(Config{APIKey: "test-key", BaseURL: srv.URL, AgentID: "agent-1"})
	require.NoError(t, err)
	return c
}

func TestNewRequiresAPIKey(t *testing.T) {
	transport := &countingTransport{}
	for _, key := range []string{"", "   ", "\t\n"} {
		_, err := New(Config{
			APIKey:     key,
			HTTPClient: &http.Client{Transport: transport},
		})
		require.ErrorIs(t, err, ErrMissingAPIKey)
	}
	assert.Zero(t, transport.calls, "constructing a client must not touch the network")
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"id":"sk-1","title":"t","price":0}`))
	})

	_, err := c.GetSkill(context.Background(), "sk-1")
	require.NoError(t, err)

	assert.Equal(t, "test-key", got.Get("X-API-Key"))
	assert.Equal(t, "agent-1", got.Get("X-Agent-ID"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
}

func TestActivateLicenseKeepsAPIKey(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"activated":true}`))
	})

	_, err := c.ActivateLicense(context.Background(), "lic-123", "dev-1", "")
	require.NoError(t, err)

	assert.Equal(t, "lic-123", got.Get("X-License-Key"))
	assert.Equal(t, "test-key", got.Get("X-API-Key"),
		"the API key header must survive per-request header options")
}

func TestActivateLicenseGeneratesDeviceID(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"activated":true}`))
	})

	_, err := c.ActivateLicense(context.Background(), "lic-123", "", "darwin/arm64")
	require.NoError(t, err)

	deviceID, _ := body["deviceId"].(string)
	assert.NotEmpty(t, deviceID)
	assert.Equal(t, "darwin/arm64", body["deviceInfo"])
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		check   func(error) bool
		message string
	}{
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"error":"Skill not found"}`,
			check:   IsNotFound,
			message: "Skill not found",
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"message":"invalid api key"}`,
			check:   IsUnauthorized,
			message: "invalid api key",
		},
		{
			name:    "payment required",
			status:  http.StatusPaymentRequired,
			body:    `{"error":"Insufficient balance: need 5.00 USDT"}`,
			check:   IsInsufficientBalance,
			message: "Insufficient balance: need 5.00 USDT",
		},
		{
			name:    "balance substring without 402",
			status:  http.StatusBadRequest,
			body:    `{"error":"insufficient balance"}`,
			check:   IsInsufficientBalance,
			message: "insufficient balance",
		},
		{
			name:    "non-JSON error body",
			status:  http.StatusBadGateway,
			body:    "upstream exploded",
			check:   func(err error) bool { return !IsNotFound(err) && !IsTransport(err) },
			message: "Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := c.GetSkill(context.Background(), "whatever")
			require.Error(t, err)
			assert.True(t, tt.check(err))

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c, err := New(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)
	srv.Close()

	_, err = c.Balance(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.False(t, IsNotFound(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.StatusCode)
}

func TestResponseTextRoundTrip(t *testing.T) {
	title := "quoted \"name\" with \\backslash\\,\nnewline, 中文 and 🚀"
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"id":    "sk-1",
			"title": title,
			"price": "1.50",
		}))
	})

	detail, err := c.GetSkill(context.Background(), "sk-1")
	require.NoError(t, err)
	assert.Equal(t, title, detail.Title)
	assert.Equal(t, "1.50", detail.Price.String())
}

func TestCreateSkillResolvesCategory(t *testing.T) {
	var createBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/categories":
			w.Write([]byte(`[{"id":"cat-7","name":"Data Tools","slug":"data-tools"}]`))
		case "/skills":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&createBody))
			w.Write([]byte(`{"id":"sk-9","title":"CSV Wrangler","price":0}`))
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	})

	draft := skillDraft("CSV Wrangler", "Data tools")
	detail, err := c.CreateSkill(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "sk-9", detail.ID)
	assert.Equal(t, "cat-7", createBody["categoryId"])
}

func TestCreateSkillUnknownCategory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := c.CreateSkill(context.Background(), skillDraft("x", "no-such-category"))
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestDepositAddressDefaults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":"TXyz123"}`))
	})

	info, err := c.DepositAddress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TXyz123", info.Address)
	assert.Equal(t, "TRON", info.Chain)
	assert.Equal(t, "USDT", info.Currency)
}
