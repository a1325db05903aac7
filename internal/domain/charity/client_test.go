package charity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(url string) *Client {
	return NewClient(url, 2*time.Second, 25, zap.NewNop())
}

func TestLookupSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"nonprofits":[{"ein":"12-345","name":"Ocean Trust"},{"slug":"trees","name":"Tree Alliance"}]}`))
	}))
	defer srv.Close()

	result := newTestClient(srv.URL).Lookup(context.Background(), 1)
	assert.False(t, result.Degraded)
	require.Len(t, result.Charities, 2)
	assert.Equal(t, Charity{ID: "12-345", Name: "Ocean Trust"}, result.Charities[0])
	assert.Equal(t, Charity{ID: "trees", Name: "Tree Alliance"}, result.Charities[1])
}

func TestLookupToleratesRenamedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"charityName":"Foodbank Net"},{"id":7,"title":"Shelter Fund"}]}`))
	}))
	defer srv.Close()

	result := newTestClient(srv.URL).Lookup(context.Background(), 0)
	assert.False(t, result.Degraded)
	require.Len(t, result.Charities, 2)
	// Missing id falls back to the name; numeric ids are stringified.
	assert.Equal(t, "Foodbank Net", result.Charities[0].ID)
	assert.Equal(t, "7", result.Charities[1].ID)
}

func TestLookupFallbackPaths(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "unparseable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>maintenance</html>`))
			},
		},
		{
			name: "empty record set",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"nonprofits":[]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			result := newTestClient(srv.URL).Lookup(context.Background(), 0)
			assert.True(t, result.Degraded)
			assert.Equal(t, FallbackCharities, result.Charities)
		})
	}
}

func TestLookupUnreachableHost(t *testing.T) {
	result := newTestClient("http://127.0.0.1:1").Lookup(context.Background(), 0)
	assert.True(t, result.Degraded)
	assert.Equal(t, FallbackCharities, result.Charities)
}

func TestLookupWithoutConfiguredURL(t *testing.T) {
	result := newTestClient("").Lookup(context.Background(), 0)
	assert.True(t, result.Degraded)
	assert.NotEmpty(t, result.Charities)
}
