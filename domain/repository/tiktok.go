package repository

import (
	"context"

	"axlas-recipes/domain/model"
)

// ITikTokStrategy is one discovery method in the fallback cascade.
// Attempt returns candidate references in discovery order; an error means the
// strategy produced nothing usable and the orchestrator moves on.
type ITikTokStrategy interface {
	Name() string
	Attempt(ctx context.Context) ([]model.VideoReference, error)
}

// ITikTokOEmbed performs metadata lookups against the public oEmbed endpoint.
type ITikTokOEmbed interface {
	// Validate reports whether the watch URL currently resolves to a real video.
	// It never returns an error; any failure counts as invalid.
	Validate(ctx context.Context, url string) bool
	// Enrich fetches display metadata for an already-validated URL. On any
	// failure it returns the all-defaults record rather than an error, so a
	// validated video is never lost to an enrichment hiccup.
	Enrich(ctx context.Context, url string) model.VideoMetadata
}

// IVideoURLCache is the single-slot cache in front of the discovery cascade.
type IVideoURLCache interface {
	// Get returns the cached URLs and whether the entry is still valid.
	// An empty entry is never valid, regardless of age.
	Get() ([]string, bool)
	// Store replaces the slot with urls and a fresh timestamp.
	Store(urls []string)
	// Invalidate clears the slot; the next Get forces rediscovery.
	Invalidate()
}
