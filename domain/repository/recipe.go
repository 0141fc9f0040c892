package repository

import (
	"context"

	"axlas-recipes/domain/model"
)

// IRecipe reads published content from the headless CMS.
type IRecipe interface {
	FeaturedRecipes(ctx context.Context, limit int) ([]model.Recipe, error)
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	RecipeBySlug(ctx context.Context, slug string) (*model.Recipe, error)
	ListSeasons(ctx context.Context) ([]model.Season, error)
}

// IRecipeCache is a best-effort response cache in front of the CMS.
// Implementations must degrade silently; a broken cache never fails a read.
type IRecipeCache interface {
	// Get unmarshals the cached value into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any)
}
