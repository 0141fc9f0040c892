package usecase

import (
	"context"
	"time"

	"axlas-recipes/domain/dto"
	"axlas-recipes/domain/model"
	"axlas-recipes/domain/repository"
	"axlas-recipes/infrastructure/logger"
	"axlas-recipes/infrastructure/utils"
)

const (
	feedSource = "auto-scraped"
	// Validated URLs per feed; later candidates are skipped once reached.
	maxValidated = 3
)

// ITikTokUsecase is the video discovery pipeline behind the feed endpoints.
type ITikTokUsecase interface {
	// GetFeed serves the cached feed, running the discovery cascade on a miss.
	GetFeed(ctx context.Context) *dto.TikTokFeedResponse
	// Refresh invalidates the cache and forces a rediscovery.
	Refresh(ctx context.Context) *dto.TikTokRefreshResponse
	// RunDiagnostics executes the cascade directly, bypassing the cache.
	RunDiagnostics(ctx context.Context) *dto.TikTokTestResponse
}

// TikTokUsecase orchestrates the strategy cascade, validation, enrichment and
// the cache gate. Strategies run in declaration order; the cascade stops at
// the first strategy whose validated output is non-empty.
type TikTokUsecase struct {
	strategies   []repository.ITikTokStrategy
	oembed       repository.ITikTokOEmbed
	cache        repository.IVideoURLCache
	discoveryLog repository.IDiscoveryLog
}

func NewTikTokUsecase(
	strategies []repository.ITikTokStrategy,
	oembed repository.ITikTokOEmbed,
	cache repository.IVideoURLCache,
	discoveryLog repository.IDiscoveryLog,
) ITikTokUsecase {
	return &TikTokUsecase{
		strategies:   strategies,
		oembed:       oembed,
		cache:        cache,
		discoveryLog: discoveryLog,
	}
}

// discover runs the cascade and returns validated watch URLs plus the name of
// the strategy that produced them. Strategy errors are absorbed; a failed
// strategy contributes nothing and the cascade moves on.
func (tiktokUsecase *TikTokUsecase) discover(ctx context.Context) ([]string, string) {
	for i, strategy := range tiktokUsecase.strategies {
		refs, err := strategy.Attempt(ctx)
		if err != nil {
			logger.GetLogger().
				WithField("strategy", strategy.Name()).
				WithField("error", err).
				Warn("Discovery strategy failed")
			continue
		}
		if len(refs) == 0 {
			continue
		}

		// The last strategy is the static fallback: its list is small and
		// already curated, so every entry is checked instead of stopping at 3.
		shortCircuit := i < len(tiktokUsecase.strategies)-1

		var validated []string
		for _, ref := range refs {
			if shortCircuit && len(validated) == maxValidated {
				break
			}
			if tiktokUsecase.oembed.Validate(ctx, ref.URL) {
				validated = append(validated, ref.URL)
			}
		}
		if len(validated) > 0 {
			tiktokUsecase.recordRun(ctx, strategy.Name(), validated)
			return validated, strategy.Name()
		}
	}

	tiktokUsecase.recordRun(ctx, "none", nil)
	return nil, "none"
}

func (tiktokUsecase *TikTokUsecase) recordRun(ctx context.Context, source string, urls []string) {
	if tiktokUsecase.discoveryLog == nil {
		return
	}
	run := &model.DiscoveryRun{
		Source:    source,
		URLCount:  len(urls),
		URLs:      urls,
		CreatedAt: utils.GetCurrentTime(),
	}
	if err := tiktokUsecase.discoveryLog.RecordRun(ctx, run); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to record discovery run")
	}
}

// readURLs is the cache gate: serve a valid entry, otherwise rediscover and
// store the result. An empty store is deliberate; the cache treats it as
// invalid so the next read retries instead of freezing the failure.
func (tiktokUsecase *TikTokUsecase) readURLs(ctx context.Context) ([]string, bool) {
	if urls, ok := tiktokUsecase.cache.Get(); ok {
		return urls, true
	}
	urls, _ := tiktokUsecase.discover(ctx)
	tiktokUsecase.cache.Store(urls)
	return urls, false
}

// assemble turns watch URLs into enriched feed records. It never filters:
// every URL becomes exactly one record, with defaults when enrichment fails.
func (tiktokUsecase *TikTokUsecase) assemble(ctx context.Context, urls []string) []model.TikTokVideo {
	videos := make([]model.TikTokVideo, 0, len(urls))
	for _, u := range urls {
		id := model.ExtractVideoID(u)
		meta := tiktokUsecase.oembed.Enrich(ctx, u)
		videos = append(videos, model.TikTokVideo{
			ID:        id,
			URL:       u,
			Title:     meta.Title,
			Thumbnail: meta.Thumbnail,
			Author:    meta.Author,
			EmbedURL:  model.EmbedURL(id),
		})
	}
	return videos
}

func (tiktokUsecase *TikTokUsecase) GetFeed(ctx context.Context) *dto.TikTokFeedResponse {
	urls, cacheValid := tiktokUsecase.readURLs(ctx)
	videos := tiktokUsecase.assemble(ctx, urls)

	now := utils.GetCurrentTime().Format(time.RFC3339)
	response := &dto.TikTokFeedResponse{
		Success:     len(videos) > 0,
		Videos:      videos,
		Count:       len(videos),
		LastUpdated: now,
		Source:      feedSource,
		Debug: &dto.TikTokFeedDebug{
			TotalURLsFound:  len(urls),
			VideosProcessed: len(videos),
			CacheValid:      cacheValid,
			Timestamp:       now,
		},
	}
	if len(videos) == 0 {
		response.Error = "No videos found"
	}
	return response
}

func (tiktokUsecase *TikTokUsecase) Refresh(ctx context.Context) *dto.TikTokRefreshResponse {
	tiktokUsecase.cache.Invalidate()
	urls, _ := tiktokUsecase.readURLs(ctx)

	return &dto.TikTokRefreshResponse{
		Success:   true,
		Message:   "Cache refreshed",
		Timestamp: utils.GetCurrentTime().Format(time.RFC3339),
		Count:     len(urls),
	}
}

func (tiktokUsecase *TikTokUsecase) RunDiagnostics(ctx context.Context) *dto.TikTokTestResponse {
	urls, _ := tiktokUsecase.discover(ctx)

	results := dto.TikTokTestResults{
		URLsFound:  len(urls),
		OEmbedTest: "No URLs found",
	}
	if len(urls) > 0 {
		results.FirstURL = urls[0]
		results.OEmbedTest = "Success"
		meta := tiktokUsecase.oembed.Enrich(ctx, urls[0])
		results.OEmbedData = &meta
	}

	return &dto.TikTokTestResponse{
		Success:     true,
		TestResults: results,
		Timestamp:   utils.GetCurrentTime().Format(time.RFC3339),
	}
}
