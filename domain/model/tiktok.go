package model

import "time"

// VideoReference is a candidate video produced by a discovery strategy.
// It only carries identity; it is discarded when oEmbed validation fails.
type VideoReference struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// TikTokVideo is a validated, enriched video ready for the frontend.
// Thumbnail is a pointer on purpose: the oEmbed endpoint frequently omits
// thumbnail_url and the UI renders its own fallback for nil.
type TikTokVideo struct {
	ID        string  `json:"id"`
	URL       string  `json:"url"`
	Title     string  `json:"title"`
	Thumbnail *string `json:"thumbnail"`
	Author    string  `json:"author"`
	EmbedURL  string  `json:"embedUrl"`
}

// TikTokOEmbed mirrors the fields we consume from the public oEmbed response.
type TikTokOEmbed struct {
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
	AuthorName   string `json:"author_name"`
	HTML         string `json:"html"`
}

// VideoMetadata is the enrichment result for a single validated URL.
// HTML is passed through from oEmbed but unused by the feed itself.
type VideoMetadata struct {
	Title     string  `json:"title"`
	Thumbnail *string `json:"thumbnail"`
	Author    string  `json:"author"`
	HTML      string  `json:"html,omitempty"`
}

// DiscoveryRun is an audit row recorded after each cascade execution.
type DiscoveryRun struct {
	ID        int64     `json:"id"`
	Source    string    `json:"source"`
	URLCount  int       `json:"url_count"`
	URLs      []string  `json:"urls"`
	CreatedAt time.Time `json:"created_at"`
}
