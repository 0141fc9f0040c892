package tiktok

import (
	"context"
	"io"
	"net/http"

	"axlas-recipes/domain/model"
	"axlas-recipes/domain/repository"
	"axlas-recipes/infrastructure/logger"
)

// Rotated between fetch attempts; profile pages answer differently per client.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
}

// ProfileScrapeStrategy fetches the public profile page and mines the markup
// for video ids. Each user agent is tried in turn until one fetch succeeds.
type ProfileScrapeStrategy struct {
	httpClient *http.Client
	baseURL    string
	handle     string
}

func NewProfileScrapeStrategy(httpClient *http.Client, baseURL string, handle string) repository.ITikTokStrategy {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ProfileScrapeStrategy{
		httpClient: httpClient,
		baseURL:    baseURL,
		handle:     handle,
	}
}

func (profileScrapeStrategy *ProfileScrapeStrategy) Name() string {
	return "profile-scrape"
}

func (profileScrapeStrategy *ProfileScrapeStrategy) Attempt(ctx context.Context) ([]model.VideoReference, error) {
	markup, err := profileScrapeStrategy.fetchProfile(ctx)
	if err != nil {
		return nil, err
	}

	ids := ExtractIDsFromMarkup(markup)
	if len(ids) > maxCandidates {
		ids = ids[:maxCandidates]
	}

	refs := make([]model.VideoReference, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, model.VideoReference{
			ID:  id,
			URL: watchURL(profileScrapeStrategy.baseURL, profileScrapeStrategy.handle, id),
		})
	}
	return refs, nil
}

func (profileScrapeStrategy *ProfileScrapeStrategy) fetchProfile(ctx context.Context) (string, error) {
	profileURL := profileScrapeStrategy.baseURL + "/" + profileScrapeStrategy.handle
	var lastErr error
	for _, userAgent := range userAgents {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
		if err != nil {
			return "", err
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")

		res, err := profileScrapeStrategy.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			lastErr = errNonSuccessStatus(res.StatusCode)
			logger.GetLogger().WithField("status", res.StatusCode).Debug("Profile fetch rejected, rotating user agent")
			continue
		}
		body, err := io.ReadAll(res.Body)
		res.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		return string(body), nil
	}
	return "", lastErr
}
