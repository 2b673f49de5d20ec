package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The backend curates category order; the client must not sort or dedupe.
func TestListCategoriesPreservesServerOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":"3","name":"Zeta","slug":"zeta"},
			{"id":"1","name":"Alpha","slug":"alpha"},
			{"id":"1","name":"Alpha","slug":"alpha"}
		]`))
	})

	categories, err := c.ListCategories(context.Background())
	require.NoError(t, err)

	slugs := make([]string, 0, len(categories))
	for _, cat := range categories {
		slugs = append(slugs, cat.Slug)
	}
	assert.Equal(t, []string{"zeta", "alpha", "alpha"}, slugs)
}
