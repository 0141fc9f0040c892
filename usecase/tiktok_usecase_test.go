package usecase_test

import (
	"context"
	"testing"
	"time"

	"axlas-recipes/domain/model"
	"axlas-recipes/domain/repository"
	"axlas-recipes/infrastructure/cache"
	"axlas-recipes/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations
type MockStrategy struct {
	mock.Mock
	name string
}

func (m *MockStrategy) Name() string {
	return m.name
}

func (m *MockStrategy) Attempt(ctx context.Context) ([]model.VideoReference, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VideoReference), args.Error(1)
}

type MockOEmbed struct {
	mock.Mock
}

func (m *MockOEmbed) Validate(ctx context.Context, url string) bool {
	args := m.Called(ctx, url)
	return args.Bool(0)
}

func (m *MockOEmbed) Enrich(ctx context.Context, url string) model.VideoMetadata {
	args := m.Called(ctx, url)
	return args.Get(0).(model.VideoMetadata)
}

func refs(ids ...string) []model.VideoReference {
	out := make([]model.VideoReference, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.VideoReference{
			ID:  id,
			URL: "https://www.tiktok.com/@axlas.cooks/video/" + id,
		})
	}
	return out
}

func defaultMeta() model.VideoMetadata {
	return model.VideoMetadata{Title: "Recipe Video", Author: "@axlas.cooks"}
}

func newFeedUsecase(strategies []repository.ITikTokStrategy, oembed repository.ITikTokOEmbed) usecase.ITikTokUsecase {
	return usecase.NewTikTokUsecase(strategies, oembed, cache.NewVideoURLCache(5*time.Minute), nil)
}

func TestGetFeed_CacheHitSkipsSecondDiscovery(t *testing.T) {
	strategy := &MockStrategy{name: "web-api"}
	oembed := new(MockOEmbed)

	strategy.On("Attempt", mock.Anything).Return(refs("7563006717324217622"), nil).Once()
	oembed.On("Validate", mock.Anything, mock.Anything).Return(true)
	oembed.On("Enrich", mock.Anything, mock.Anything).Return(defaultMeta())

	uc := newFeedUsecase([]repository.ITikTokStrategy{strategy}, oembed)

	first := uc.GetFeed(context.Background())
	second := uc.GetFeed(context.Background())

	assert.True(t, first.Success)
	assert.True(t, second.Success)
	assert.False(t, first.Debug.CacheValid)
	assert.True(t, second.Debug.CacheValid)
	// Exactly one discovery run for both reads.
	strategy.AssertNumberOfCalls(t, "Attempt", 1)
}

func TestGetFeed_EmptyResultRetriesOnNextRead(t *testing.T) {
	strategy := &MockStrategy{name: "web-api"}
	oembed := new(MockOEmbed)

	strategy.On("Attempt", mock.Anything).Return([]model.VideoReference{}, nil)

	uc := newFeedUsecase([]repository.ITikTokStrategy{strategy}, oembed)

	uc.GetFeed(context.Background())
	uc.GetFeed(context.Background())

	// An empty store never counts as a cache hit, so discovery ran twice.
	strategy.AssertNumberOfCalls(t, "Attempt", 2)
}

func TestDiscover_ShortCircuitsAtThreeValidations(t *testing.T) {
	strategy := &MockStrategy{name: "web-api"}
	fallback := &MockStrategy{name: "static-fallback"}
	oembed := new(MockOEmbed)

	candidates := refs(
		"7563006717324217601",
		"7563006717324217602",
		"7563006717324217603",
		"7563006717324217604",
		"7563006717324217605",
	)
	strategy.On("Attempt", mock.Anything).Return(candidates, nil).Once()
	for _, ref := range candidates[:3] {
		oembed.On("Validate", mock.Anything, ref.URL).Return(true).Once()
	}
	oembed.On("Enrich", mock.Anything, mock.Anything).Return(defaultMeta())

	uc := newFeedUsecase([]repository.ITikTokStrategy{strategy, fallback}, oembed)
	response := uc.GetFeed(context.Background())

	assert.Equal(t, 3, response.Count)
	oembed.AssertNumberOfCalls(t, "Validate", 3)
	oembed.AssertNotCalled(t, "Validate", mock.Anything, candidates[3].URL)
	oembed.AssertNotCalled(t, "Validate", mock.Anything, candidates[4].URL)
	fallback.AssertNotCalled(t, "Attempt", mock.Anything)
}

func TestDiscover_StaticFallbackIsFullyValidated(t *testing.T) {
	webAPI := &MockStrategy{name: "web-api"}
	scrape := &MockStrategy{name: "profile-scrape"}
	fallback := &MockStrategy{name: "static-fallback"}
	oembed := new(MockOEmbed)

	webAPI.On("Attempt", mock.Anything).Return(nil, assert.AnError)
	scrape.On("Attempt", mock.Anything).Return([]model.VideoReference{}, nil)
	candidates := refs(
		"7563006717324217601",
		"7563006717324217602",
		"7563006717324217603",
		"7563006717324217604",
	)
	fallback.On("Attempt", mock.Anything).Return(candidates, nil)
	oembed.On("Validate", mock.Anything, mock.Anything).Return(true)
	oembed.On("Enrich", mock.Anything, mock.Anything).Return(defaultMeta())

	uc := newFeedUsecase([]repository.ITikTokStrategy{webAPI, scrape, fallback}, oembed)
	response := uc.GetFeed(context.Background())

	// No short-circuit on the last strategy: all four candidates checked.
	oembed.AssertNumberOfCalls(t, "Validate", 4)
	assert.Equal(t, 4, response.Count)
}

func TestGetFeed_EnrichmentFailureKeepsRecord(t *testing.T) {
	strategy := &MockStrategy{name: "web-api"}
	oembed := new(MockOEmbed)

	strategy.On("Attempt", mock.Anything).Return(refs("7563006717324217622"), nil).Once()
	oembed.On("Validate", mock.Anything, mock.Anything).Return(true)
	// Enrichment degraded to the all-defaults record.
	oembed.On("Enrich", mock.Anything, mock.Anything).Return(defaultMeta())

	uc := newFeedUsecase([]repository.ITikTokStrategy{strategy}, oembed)
	response := uc.GetFeed(context.Background())

	require.Len(t, response.Videos, 1)
	video := response.Videos[0]
	assert.Equal(t, "Recipe Video", video.Title)
	assert.Nil(t, video.Thumbnail)
	assert.Equal(t, "@axlas.cooks", video.Author)
	assert.Equal(t, "7563006717324217622", video.ID)
	assert.Equal(t, "https://www.tiktok.com/embed/7563006717324217622", video.EmbedURL)
}

func TestGetFeed_AllStrategiesEmpty(t *testing.T) {
	webAPI := &MockStrategy{name: "web-api"}
	scrape := &MockStrategy{name: "profile-scrape"}
	fallback := &MockStrategy{name: "static-fallback"}
	oembed := new(MockOEmbed)

	webAPI.On("Attempt", mock.Anything).Return(nil, assert.AnError)
	scrape.On("Attempt", mock.Anything).Return([]model.VideoReference{}, nil)
	fallback.On("Attempt", mock.Anything).Return([]model.VideoReference{}, nil)

	uc := newFeedUsecase([]repository.ITikTokStrategy{webAPI, scrape, fallback}, oembed)
	response := uc.GetFeed(context.Background())

	assert.False(t, response.Success)
	assert.Equal(t, "No videos found", response.Error)
	assert.Empty(t, response.Videos)
}

func TestDiscover_InvalidCandidatesFallThrough(t *testing.T) {
	webAPI := &MockStrategy{name: "web-api"}
	fallback := &MockStrategy{name: "static-fallback"}
	oembed := new(MockOEmbed)

	dead := refs("7563006717324217601", "7563006717324217602")
	webAPI.On("Attempt", mock.Anything).Return(dead, nil).Once()
	oembed.On("Validate", mock.Anything, dead[0].URL).Return(false).Once()
	oembed.On("Validate", mock.Anything, dead[1].URL).Return(false).Once()

	alive := refs("7562229699628272918")
	fallback.On("Attempt", mock.Anything).Return(alive, nil).Once()
	oembed.On("Validate", mock.Anything, alive[0].URL).Return(true).Once()
	oembed.On("Enrich", mock.Anything, alive[0].URL).Return(defaultMeta())

	uc := newFeedUsecase([]repository.ITikTokStrategy{webAPI, fallback}, oembed)
	response := uc.GetFeed(context.Background())

	require.Len(t, response.Videos, 1)
	assert.Equal(t, "7562229699628272918", response.Videos[0].ID)
}

func TestRefresh_ForcesRediscovery(t *testing.T) {
	strategy := &MockStrategy{name: "web-api"}
	oembed := new(MockOEmbed)

	strategy.On("Attempt", mock.Anything).Return(refs("7563006717324217622"), nil)
	oembed.On("Validate", mock.Anything, mock.Anything).Return(true)
	oembed.On("Enrich", mock.Anything, mock.Anything).Return(defaultMeta())

	uc := newFeedUsecase([]repository.ITikTokStrategy{strategy}, oembed)

	uc.GetFeed(context.Background())
	response := uc.Refresh(context.Background())

	assert.True(t, response.Success)
	assert.Equal(t, 1, response.Count)
	// Refresh invalidated the warm cache and discovered again.
	strategy.AssertNumberOfCalls(t, "Attempt", 2)
}

func TestRunDiagnostics_BypassesCache(t *testing.T) {
	strategy := &MockStrategy{name: "web-api"}
	oembed := new(MockOEmbed)

	strategy.On("Attempt", mock.Anything).Return(refs("7563006717324217622"), nil)
	oembed.On("Validate", mock.Anything, mock.Anything).Return(true)
	oembed.On("Enrich", mock.Anything, mock.Anything).Return(defaultMeta())

	uc := newFeedUsecase([]repository.ITikTokStrategy{strategy}, oembed)

	uc.GetFeed(context.Background())
	response := uc.RunDiagnostics(context.Background())

	assert.True(t, response.Success)
	assert.Equal(t, 1, response.TestResults.URLsFound)
	assert.Equal(t, "Success", response.TestResults.OEmbedTest)
	assert.Equal(t, "https://www.tiktok.com/@axlas.cooks/video/7563006717324217622", response.TestResults.FirstURL)
	// Diagnostics never read the cache; the cascade ran a second time.
	strategy.AssertNumberOfCalls(t, "Attempt", 2)
}

func TestRunDiagnostics_NoURLs(t *testing.T) {
	strategy := &MockStrategy{name: "web-api"}
	oembed := new(MockOEmbed)

	strategy.On("Attempt", mock.Anything).Return([]model.VideoReference{}, nil)

	uc := newFeedUsecase([]repository.ITikTokStrategy{strategy}, oembed)
	response := uc.RunDiagnostics(context.Background())

	assert.True(t, response.Success)
	assert.Equal(t, 0, response.TestResults.URLsFound)
	assert.Equal(t, "No URLs found", response.TestResults.OEmbedTest)
	assert.Nil(t, response.TestResults.OEmbedData)
}
