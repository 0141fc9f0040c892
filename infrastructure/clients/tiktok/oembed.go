package tiktok

import (
	"context"
	"encoding/json"
	"net/http"

	"axlas-recipes/domain/model"
	"axlas-recipes/domain/repository"
	"axlas-recipes/infrastructure/logger"

	"github.com/google/go-querystring/query"
)

const fallbackTitle = "Recipe Video"

type oembedParams struct {
	URL string `url:"url"`
}

// OEmbedClient talks to the public oEmbed endpoint. The same request backs
// both validation and enrichment; the two are issued independently because
// they answer different questions (does it exist vs what does it look like).
type OEmbedClient struct {
	httpClient *http.Client
	endpoint   string
	handle     string
}

func NewOEmbedClient(httpClient *http.Client, endpoint string, handle string) repository.ITikTokOEmbed {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OEmbedClient{
		httpClient: httpClient,
		endpoint:   endpoint,
		handle:     handle,
	}
}

func (oembedClient *OEmbedClient) lookup(ctx context.Context, watchURL string) (*model.TikTokOEmbed, error) {
	params, err := query.Values(oembedParams{URL: watchURL})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, oembedClient.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	res, err := oembedClient.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errNonSuccessStatus(res.StatusCode)
	}

	var body model.TikTokOEmbed
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &body, nil
}

func (oembedClient *OEmbedClient) Validate(ctx context.Context, watchURL string) bool {
	if _, err := oembedClient.lookup(ctx, watchURL); err != nil {
		logger.GetLogger().WithField("url", watchURL).WithField("error", err).Debug("Video failed oEmbed validation")
		return false
	}
	return true
}

func (oembedClient *OEmbedClient) Enrich(ctx context.Context, watchURL string) model.VideoMetadata {
	meta := model.VideoMetadata{
		Title:  fallbackTitle,
		Author: oembedClient.handle,
	}

	body, err := oembedClient.lookup(ctx, watchURL)
	if err != nil {
		logger.GetLogger().WithField("url", watchURL).WithField("error", err).Warn("oEmbed enrichment failed, using defaults")
		return meta
	}

	if body.Title != "" {
		meta.Title = body.Title
	}
	if body.ThumbnailURL != "" {
		thumbnail := body.ThumbnailURL
		meta.Thumbnail = &thumbnail
	}
	if body.AuthorName != "" {
		meta.Author = body.AuthorName
	}
	meta.HTML = body.HTML
	return meta
}

type errNonSuccessStatus int

func (e errNonSuccessStatus) Error() string {
	return http.StatusText(int(e))
}
