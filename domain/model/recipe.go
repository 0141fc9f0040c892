package model

import "time"

// Recipe is the editorial recipe document as projected by the CMS queries.
type Recipe struct {
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	Summary     string       `json:"summary,omitempty"`
	Difficulty  string       `json:"difficulty,omitempty"`
	PrepTime    int          `json:"prepTime,omitempty"`
	CookTime    int          `json:"cookTime,omitempty"`
	TotalTime   int          `json:"totalTime,omitempty"`
	Yield       string       `json:"yield,omitempty"`
	Steps       []any        `json:"steps,omitempty"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
	Seasons     []Season     `json:"seasons,omitempty"`
	HeroImage   *HeroImage   `json:"heroImage,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	PublishedAt *time.Time   `json:"publishedAt,omitempty"`
	Featured    bool         `json:"featured,omitempty"`
}

// Ingredient is a single structured ingredient line.
type Ingredient struct {
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Item     string `json:"item"`
	Note     string `json:"note,omitempty"`
}

// Season is a lightweight reference used for filtering recipes.
type Season struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// HeroImage carries the resolved asset URL plus presentation metadata.
type HeroImage struct {
	URL  string `json:"url"`
	LQIP string `json:"lqip,omitempty"`
	Alt  string `json:"alt,omitempty"`
}
