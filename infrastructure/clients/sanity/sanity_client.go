package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"axlas-recipes/domain/model"
	"axlas-recipes/domain/repository"
	"axlas-recipes/infrastructure/logger"
)

const recipeProjection = `{
	title,
	"slug": slug.current,
	summary,
	difficulty,
	prepTime,
	cookTime,
	totalTime,
	yield,
	steps,
	ingredients,
	"seasons": seasons[]->{title, "slug": slug.current},
	"heroImage": heroImage{
		"url": asset->url,
		"lqip": asset->metadata.lqip,
		alt
	},
	tags,
	publishedAt,
	featured
}`

// Client reads published documents through the Sanity HTTP query API (GROQ).
// The CDN endpoint is used; writes and drafts are out of scope.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	// BaseURL, when set, replaces the derived CDN endpoint.
	BaseURL string
}

func NewClient(httpClient *http.Client, cfg Config) repository.IRecipe {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.apicdn.sanity.io/v%s/data/query/%s",
			cfg.ProjectID, cfg.APIVersion, cfg.Dataset)
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      cfg.Token,
	}
}

// query runs a GROQ query. Params are JSON-encoded and passed as $-prefixed
// query parameters per the Sanity HTTP API convention.
func (client *Client) query(ctx context.Context, groq string, params map[string]any, dest any) error {
	values := url.Values{}
	values.Set("query", groq)
	for name, value := range params {
		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}
		values.Set("$"+name, string(raw))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return err
	}
	if client.token != "" {
		req.Header.Set("Authorization", "Bearer "+client.token)
	}

	res, err := client.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("sanity query returned status %d", res.StatusCode)
	}

	envelope := struct {
		Result json.RawMessage `json:"result"`
	}{}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return err
	}
	if envelope.Result == nil {
		return nil
	}
	return json.Unmarshal(envelope.Result, dest)
}

func (client *Client) FeaturedRecipes(ctx context.Context, limit int) ([]model.Recipe, error) {
	if limit <= 0 {
		limit = 3
	}
	groq := fmt.Sprintf(`*[_type == "recipe" && featured == true] | order(publishedAt desc)[0...%d]%s`, limit, recipeProjection)
	var recipes []model.Recipe
	if err := client.query(ctx, groq, nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (client *Client) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	groq := fmt.Sprintf(`*[_type == "recipe"] | order(publishedAt desc)%s`, recipeProjection)
	var recipes []model.Recipe
	if err := client.query(ctx, groq, nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (client *Client) RecipeBySlug(ctx context.Context, slug string) (*model.Recipe, error) {
	groq := fmt.Sprintf(`*[_type == "recipe" && slug.current == $slug][0]%s`, recipeProjection)
	var recipe *model.Recipe
	if err := client.query(ctx, groq, map[string]any{"slug": slug}, &recipe); err != nil {
		return nil, err
	}
	if recipe == nil {
		logger.GetLogger().WithField("slug", slug).Info("Recipe not found")
	}
	return recipe, nil
}

func (client *Client) ListSeasons(ctx context.Context) ([]model.Season, error) {
	groq := `*[_type == "season"] | order(title asc){title, "slug": slug.current}`
	var seasons []model.Season
	if err := client.query(ctx, groq, nil, &seasons); err != nil {
		return nil, err
	}
	return seasons, nil
}
