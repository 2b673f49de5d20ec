package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmart-dev/agentmart/pkg/models"
)

// Soul reads use the legacy prefix while writes use /v1; each operation must
// keep hitting the path the backend actually serves it on.
func TestSoulPathGenerations(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{"id":"s-1"}`))
	})

	ctx := context.Background()
	_, err := c.ListSouls(ctx, ListSoulsOptions{})
	require.NoError(t, err)
	_, err = c.GetSoul(ctx, "s-1")
	require.NoError(t, err)
	_, err = c.BuySoul(ctx, "s-1")
	require.NoError(t, err)
	_, err = c.CreateSoul(ctx, models.SoulDraft{Name: "helper", Content: "..."})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"GET /souls",
		"GET /souls/s-1",
		"POST /v1/souls/buy",
		"POST /v1/souls",
	}, paths)
}
