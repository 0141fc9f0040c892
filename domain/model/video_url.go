package model

import "regexp"

var watchURLPattern = regexp.MustCompile(`/video/(\d+)`)

// ExtractVideoID returns the numeric id embedded in a watch URL. When the URL
// carries no /video/{digits} segment the raw URL itself is returned, so the
// caller always has a non-empty identifier.
func ExtractVideoID(watchURL string) string {
	if match := watchURLPattern.FindStringSubmatch(watchURL); match != nil {
		return match[1]
	}
	return watchURL
}

// EmbedURL derives the embeddable player URL for a video id.
func EmbedURL(id string) string {
	return "https://www.tiktok.com/embed/" + id
}
