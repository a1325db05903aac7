package marketplace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func pinClock(t *testing.T) {
	t.Helper()
	timeNow = func() time.Time { return fixedNow }
	t.Cleanup(func() { timeNow = time.Now })
}

func listingsServer(t *testing.T, listings []scrapedListing) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(listings))
	}))
}

func TestFetchKeepsOnlyFreshListings(t *testing.T) {
	pinClock(t)

	srv := listingsServer(t, []scrapedListing{
		{ID: "a", Title: "Beach cleanup", CreatedAt: fixedNow.Add(-24 * time.Hour)},
		{ID: "b", Title: "Soup kitchen shift", CreatedAt: fixedNow.Add(-6 * 24 * time.Hour)},
		{ID: "c", Title: "Old food drive", CreatedAt: fixedNow.Add(-8 * 24 * time.Hour)},
		{ID: "d", Title: "Exactly on the boundary", CreatedAt: fixedNow.Add(-7 * 24 * time.Hour)},
	})
	defer srv.Close()

	client := NewListingsClient(srv.URL, time.Second, 7*24*time.Hour, zap.NewNop())
	fresh := client.Fetch(context.Background())

	require.Len(t, fresh, 2, "older than seven days drops out; the boundary itself is stale")
	assert.Equal(t, "Beach cleanup", fresh[0].Title)
	assert.Equal(t, "Soup kitchen shift", fresh[1].Title)
	for _, o := range fresh {
		assert.Equal(t, SourceScraped, o.Source)
	}
}

func TestFetchStableIDsAcrossCalls(t *testing.T) {
	pinClock(t)

	srv := listingsServer(t, []scrapedListing{
		{ID: "board-42", Title: "Tree planting", CreatedAt: fixedNow.Add(-time.Hour)},
	})
	defer srv.Close()

	client := NewListingsClient(srv.URL, time.Second, 7*24*time.Hour, zap.NewNop())
	first := client.Fetch(context.Background())
	second := client.Fetch(context.Background())

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestFetchToleratesEnvelope(t *testing.T) {
	pinClock(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"listings":[{"id":"x","title":"Mentoring","created_at":"2026-08-14T00:00:00Z"}]}`))
	}))
	defer srv.Close()

	client := NewListingsClient(srv.URL, time.Second, 7*24*time.Hour, zap.NewNop())
	fresh := client.Fetch(context.Background())
	require.Len(t, fresh, 1)
	assert.Equal(t, "Mentoring", fresh[0].Title)
}

func TestFetchDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name string
		url  func(t *testing.T) string
	}{
		{
			name: "unreachable host",
			url:  func(t *testing.T) string { return "http://127.0.0.1:1" },
		},
		{
			name: "unconfigured",
			url:  func(t *testing.T) string { return "" },
		},
		{
			name: "server error",
			url: func(t *testing.T) string {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				}))
				t.Cleanup(srv.Close)
				return srv.URL
			},
		},
		{
			name: "garbage body",
			url: func(t *testing.T) string {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.Write([]byte("not json"))
				}))
				t.Cleanup(srv.Close)
				return srv.URL
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewListingsClient(tt.url(t), time.Second, 7*24*time.Hour, zap.NewNop())
			assert.Empty(t, client.Fetch(context.Background()))
		})
	}
}

func TestBrowseMergesCuratedAndScraped(t *testing.T) {
	pinClock(t)

	srv := listingsServer(t, []scrapedListing{
		{ID: "s1", Title: "Park restoration", Category: "environment", CreatedAt: fixedNow.Add(-time.Hour)},
		{ID: "s2", Title: "Coding workshop", Category: "education", CreatedAt: fixedNow.Add(-time.Hour)},
	})
	defer srv.Close()

	repo := NewRepository()
	svc := NewService(repo, NewListingsClient(srv.URL, time.Second, 7*24*time.Hour, zap.NewNop()), zap.NewNop())

	_, err := svc.CreateOpportunity(context.Background(), CreateOpportunityInput{
		Title:        "Food bank sort",
		Organization: "Feeding America",
		Category:     "environment",
	})
	require.NoError(t, err)

	env := "environment"
	merged, err := svc.Browse(context.Background(), OpportunityFilter{Category: &env})
	require.NoError(t, err)
	require.Len(t, merged, 2, "filter applies to scraped listings too")

	titles := []string{merged[0].Title, merged[1].Title}
	assert.Contains(t, titles, "Food bank sort")
	assert.Contains(t, titles, "Park restoration")
}
