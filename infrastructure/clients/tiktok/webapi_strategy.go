package tiktok

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"axlas-recipes/domain/model"
	"axlas-recipes/domain/repository"
	"axlas-recipes/infrastructure/logger"

	"github.com/google/go-querystring/query"
)

const maxCandidates = 10

type userDetailParams struct {
	UniqueID string `url:"uniqueId"`
}

type itemListParams struct {
	SecUID string `url:"secUid"`
	Count  int    `url:"count"`
}

type userDetailResponse struct {
	UserInfo struct {
		User struct {
			SecUID string `json:"secUid"`
		} `json:"user"`
		Stats struct {
			VideoCount int `json:"videoCount"`
		} `json:"stats"`
	} `json:"userInfo"`
}

type itemListResponse struct {
	ItemList []struct {
		ID string `json:"id"`
	} `json:"itemList"`
}

// WebAPIStrategy queries the unofficial web API: profile detail first, then
// the paginated item list keyed by the profile's secUid. Any failure at any
// step collapses to zero candidates.
type WebAPIStrategy struct {
	httpClient *http.Client
	baseURL    string
	handle     string
}

func NewWebAPIStrategy(httpClient *http.Client, baseURL string, handle string) repository.ITikTokStrategy {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &WebAPIStrategy{
		httpClient: httpClient,
		baseURL:    baseURL,
		handle:     handle,
	}
}

func (webAPIStrategy *WebAPIStrategy) Name() string {
	return "web-api"
}

func (webAPIStrategy *WebAPIStrategy) Attempt(ctx context.Context) ([]model.VideoReference, error) {
	detailParams, err := query.Values(userDetailParams{
		UniqueID: strings.TrimPrefix(webAPIStrategy.handle, "@"),
	})
	if err != nil {
		return nil, err
	}

	var detail userDetailResponse
	if err := webAPIStrategy.getJSON(ctx, "/api/user/detail/?"+detailParams.Encode(), &detail); err != nil {
		return nil, err
	}
	if detail.UserInfo.Stats.VideoCount == 0 || detail.UserInfo.User.SecUID == "" {
		logger.GetLogger().WithField("handle", webAPIStrategy.handle).Info("Profile reports no videos")
		return nil, nil
	}

	listParams, err := query.Values(itemListParams{
		SecUID: detail.UserInfo.User.SecUID,
		Count:  maxCandidates,
	})
	if err != nil {
		return nil, err
	}

	var items itemListResponse
	if err := webAPIStrategy.getJSON(ctx, "/api/post/item_list/?"+listParams.Encode(), &items); err != nil {
		return nil, err
	}

	refs := make([]model.VideoReference, 0, maxCandidates)
	for _, item := range items.ItemList {
		if item.ID == "" {
			continue
		}
		refs = append(refs, model.VideoReference{
			ID:  item.ID,
			URL: watchURL(webAPIStrategy.baseURL, webAPIStrategy.handle, item.ID),
		})
		if len(refs) == maxCandidates {
			break
		}
	}
	return refs, nil
}

func (webAPIStrategy *WebAPIStrategy) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, webAPIStrategy.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgents[0])

	res, err := webAPIStrategy.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return errNonSuccessStatus(res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(dest)
}

func watchURL(baseURL string, handle string, id string) string {
	return fmt.Sprintf("%s/%s/video/%s", baseURL, handle, id)
}
