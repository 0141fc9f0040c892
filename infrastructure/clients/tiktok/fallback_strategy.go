package tiktok

import (
	"context"

	"axlas-recipes/domain/model"
	"axlas-recipes/domain/repository"
)

// StaticFallbackStrategy serves a fixed list of previously known-good watch
// URLs. Last resort when both live strategies come back empty.
type StaticFallbackStrategy struct {
	urls []string
}

func NewStaticFallbackStrategy(urls []string) repository.ITikTokStrategy {
	return &StaticFallbackStrategy{urls: urls}
}

func (staticFallbackStrategy *StaticFallbackStrategy) Name() string {
	return "static-fallback"
}

func (staticFallbackStrategy *StaticFallbackStrategy) Attempt(ctx context.Context) ([]model.VideoReference, error) {
	refs := make([]model.VideoReference, 0, len(staticFallbackStrategy.urls))
	for _, u := range staticFallbackStrategy.urls {
		refs = append(refs, model.VideoReference{
			ID:  model.ExtractVideoID(u),
			URL: u,
		})
	}
	return refs, nil
}
