package usecase

import (
	"context"
	"fmt"

	"axlas-recipes/domain/model"
	"axlas-recipes/domain/repository"
)

// IRecipeUsecase reads published content, cache-aside in front of the CMS.
type IRecipeUsecase interface {
	FeaturedRecipes(ctx context.Context, limit int) ([]model.Recipe, error)
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	RecipeBySlug(ctx context.Context, slug string) (*model.Recipe, error)
	ListSeasons(ctx context.Context) ([]model.Season, error)
}

type RecipeUsecase struct {
	recipeRepo repository.IRecipe
	cache      repository.IRecipeCache
}

func NewRecipeUsecase(recipeRepo repository.IRecipe, cache repository.IRecipeCache) IRecipeUsecase {
	return &RecipeUsecase{
		recipeRepo: recipeRepo,
		cache:      cache,
	}
}

func (recipeUsecase *RecipeUsecase) FeaturedRecipes(ctx context.Context, limit int) ([]model.Recipe, error) {
	if limit <= 0 || limit > 12 {
		limit = 3
	}
	key := fmt.Sprintf("recipes:featured:%d", limit)

	var recipes []model.Recipe
	if recipeUsecase.cache.Get(ctx, key, &recipes) {
		return recipes, nil
	}
	recipes, err := recipeUsecase.recipeRepo.FeaturedRecipes(ctx, limit)
	if err != nil {
		return nil, err
	}
	recipeUsecase.cache.Set(ctx, key, recipes)
	return recipes, nil
}

func (recipeUsecase *RecipeUsecase) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	const key = "recipes:all"

	var recipes []model.Recipe
	if recipeUsecase.cache.Get(ctx, key, &recipes) {
		return recipes, nil
	}
	recipes, err := recipeUsecase.recipeRepo.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}
	recipeUsecase.cache.Set(ctx, key, recipes)
	return recipes, nil
}

func (recipeUsecase *RecipeUsecase) RecipeBySlug(ctx context.Context, slug string) (*model.Recipe, error) {
	key := "recipes:slug:" + slug

	var recipe model.Recipe
	if recipeUsecase.cache.Get(ctx, key, &recipe) {
		return &recipe, nil
	}
	found, err := recipeUsecase.recipeRepo.RecipeBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if found == nil {
		// Misses are not cached; a slug may publish at any moment.
		return nil, nil
	}
	recipeUsecase.cache.Set(ctx, key, found)
	return found, nil
}

func (recipeUsecase *RecipeUsecase) ListSeasons(ctx context.Context) ([]model.Season, error) {
	const key = "seasons:all"

	var seasons []model.Season
	if recipeUsecase.cache.Get(ctx, key, &seasons) {
		return seasons, nil
	}
	seasons, err := recipeUsecase.recipeRepo.ListSeasons(ctx)
	if err != nil {
		return nil, err
	}
	recipeUsecase.cache.Set(ctx, key, seasons)
	return seasons, nil
}
