package tiktok

import (
	"regexp"
)

// Plausible length bounds for a platform video id. Matches outside this
// range are treated as false positives from the markup patterns.
const (
	minIDLength = 10
	maxIDLength = 25
)

// Each rule covers one embedding convention seen in profile markup. All rules
// run against the same document and their matches are unioned, no rule takes
// priority over another.
var markupRules = []*regexp.Regexp{
	regexp.MustCompile(`/video/(\d+)`),
	regexp.MustCompile(`"videoId":"(\d+)"`),
	regexp.MustCompile(`"itemId":"(\d+)"`),
	regexp.MustCompile(`"id":"(\d+)","desc"`),
	regexp.MustCompile(`data-video-id="(\d+)"`),
	regexp.MustCompile(`/embed/v2/(\d+)`),
}

// ExtractIDsFromMarkup pulls candidate video ids out of profile page markup.
// Results are de-duplicated and keep first-seen order.
func ExtractIDsFromMarkup(markup string) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, rule := range markupRules {
		for _, match := range rule.FindAllStringSubmatch(markup, -1) {
			id := match[1]
			if len(id) < minIDLength || len(id) > maxIDLength {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
