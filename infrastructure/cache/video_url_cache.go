package cache

import (
	"sync"
	"time"

	"axlas-recipes/domain/repository"
)

// VideoURLCache is a process-wide single-slot cache of discovered watch URLs.
// An entry is valid only while unexpired AND non-empty: an empty discovery
// result is stored but never served, so the next read retries discovery
// instead of freezing a transient failure for the whole window.
type VideoURLCache struct {
	mu        sync.Mutex
	urls      []string
	fetchedAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

func NewVideoURLCache(ttl time.Duration) repository.IVideoURLCache {
	return &VideoURLCache{
		ttl: ttl,
		now: time.Now,
	}
}

func (videoURLCache *VideoURLCache) Get() ([]string, bool) {
	videoURLCache.mu.Lock()
	defer videoURLCache.mu.Unlock()

	if len(videoURLCache.urls) == 0 {
		return nil, false
	}
	if videoURLCache.now().Sub(videoURLCache.fetchedAt) >= videoURLCache.ttl {
		return nil, false
	}
	out := make([]string, len(videoURLCache.urls))
	copy(out, videoURLCache.urls)
	return out, true
}

func (videoURLCache *VideoURLCache) Store(urls []string) {
	videoURLCache.mu.Lock()
	defer videoURLCache.mu.Unlock()

	videoURLCache.urls = make([]string, len(urls))
	copy(videoURLCache.urls, urls)
	videoURLCache.fetchedAt = videoURLCache.now()
}

func (videoURLCache *VideoURLCache) Invalidate() {
	videoURLCache.mu.Lock()
	defer videoURLCache.mu.Unlock()

	videoURLCache.urls = nil
	videoURLCache.fetchedAt = time.Time{}
}
