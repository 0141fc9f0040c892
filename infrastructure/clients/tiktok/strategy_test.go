package tiktok_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"axlas-recipes/infrastructure/clients/tiktok"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebAPIStrategy_MapsItemsToWatchURLs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/user/detail/":
			assert.Equal(t, "axlas.cooks", r.URL.Query().Get("uniqueId"))
			w.Write([]byte(`{"userInfo":{"user":{"secUid":"SEC123"},"stats":{"videoCount":42}}}`))
		case "/api/post/item_list/":
			assert.Equal(t, "SEC123", r.URL.Query().Get("secUid"))
			assert.Equal(t, "10", r.URL.Query().Get("count"))
			w.Write([]byte(`{"itemList":[{"id":"7563006717324217622"},{"id":"7562963997083831574"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	strategy := tiktok.NewWebAPIStrategy(server.Client(), server.URL, "@axlas.cooks")
	refs, err := strategy.Attempt(context.Background())

	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "7563006717324217622", refs[0].ID)
	assert.Equal(t, server.URL+"/@axlas.cooks/video/7563006717324217622", refs[0].URL)
}

func TestWebAPIStrategy_ZeroVideoCountYieldsNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"userInfo":{"user":{"secUid":"SEC123"},"stats":{"videoCount":0}}}`))
	}))
	defer server.Close()

	strategy := tiktok.NewWebAPIStrategy(server.Client(), server.URL, "@axlas.cooks")
	refs, err := strategy.Attempt(context.Background())

	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestWebAPIStrategy_UpstreamErrorSurfacesAsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	strategy := tiktok.NewWebAPIStrategy(server.Client(), server.URL, "@axlas.cooks")
	refs, err := strategy.Attempt(context.Background())

	assert.Error(t, err)
	assert.Empty(t, refs)
}

func TestProfileScrapeStrategy_RotatesUserAgents(t *testing.T) {
	var agents []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agents = append(agents, r.Header.Get("User-Agent"))
		if len(agents) < 3 {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write([]byte(`<a href="/@axlas.cooks/video/7562229699628272918">latest</a>`))
	}))
	defer server.Close()

	strategy := tiktok.NewProfileScrapeStrategy(server.Client(), server.URL, "@axlas.cooks")
	refs, err := strategy.Attempt(context.Background())

	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "7562229699628272918", refs[0].ID)
	// Each retry must present a different client identity.
	require.Len(t, agents, 3)
	assert.NotEqual(t, agents[0], agents[1])
	assert.NotEqual(t, agents[1], agents[2])
}

func TestProfileScrapeStrategy_AllAgentsBlockedReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	strategy := tiktok.NewProfileScrapeStrategy(server.Client(), server.URL, "@axlas.cooks")
	refs, err := strategy.Attempt(context.Background())

	assert.Error(t, err)
	assert.Empty(t, refs)
}

func TestStaticFallbackStrategy(t *testing.T) {
	urls := []string{
		"https://www.tiktok.com/@axlas.cooks/video/7563006717324217622",
		"https://www.tiktok.com/@axlas.cooks/video/7562963997083831574",
	}
	strategy := tiktok.NewStaticFallbackStrategy(urls)

	refs, err := strategy.Attempt(context.Background())

	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "7563006717324217622", refs[0].ID)
	assert.Equal(t, urls[0], refs[0].URL)
	assert.Equal(t, "static-fallback", strategy.Name())
}
