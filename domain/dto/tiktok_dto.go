package dto

import "axlas-recipes/domain/model"

// TikTokFeedDebug carries diagnostic fields for the feed payload.
type TikTokFeedDebug struct {
	TotalURLsFound  int    `json:"totalUrlsFound,omitempty"`
	VideosProcessed int    `json:"videosProcessed,omitempty"`
	CacheValid      bool   `json:"cacheValid"`
	Timestamp       string `json:"timestamp,omitempty"`
}

// TikTokFeedResponse is the GET feed envelope.
type TikTokFeedResponse struct {
	Success     bool                `json:"success"`
	Error       string              `json:"error,omitempty"`
	Videos      []model.TikTokVideo `json:"videos"`
	Count       int                 `json:"count,omitempty"`
	LastUpdated string              `json:"lastUpdated,omitempty"`
	Source      string              `json:"source,omitempty"`
	Debug       *TikTokFeedDebug    `json:"debug,omitempty"`
}

// TikTokActionRequest is the POST body; action is "refresh" or "test".
type TikTokActionRequest struct {
	Action string `json:"action"`
}

// TikTokRefreshResponse is returned after a forced cache refresh.
type TikTokRefreshResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Count     int    `json:"count"`
}

// TikTokTestResults is the diagnostic payload for action "test".
type TikTokTestResults struct {
	URLsFound  int                  `json:"urlsFound"`
	FirstURL   string               `json:"firstUrl,omitempty"`
	OEmbedTest string               `json:"oEmbedTest"`
	OEmbedData *model.VideoMetadata `json:"oEmbedData,omitempty"`
}

// TikTokTestResponse wraps TikTokTestResults.
type TikTokTestResponse struct {
	Success     bool              `json:"success"`
	TestResults TikTokTestResults `json:"testResults"`
	Timestamp   string            `json:"timestamp"`
}
