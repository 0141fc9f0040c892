package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"axlas-recipes/domain/model"
	"axlas-recipes/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRecipeRepo struct {
	mock.Mock
}

func (m *MockRecipeRepo) FeaturedRecipes(ctx context.Context, limit int) ([]model.Recipe, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

func (m *MockRecipeRepo) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

func (m *MockRecipeRepo) RecipeBySlug(ctx context.Context, slug string) (*model.Recipe, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeRepo) ListSeasons(ctx context.Context) ([]model.Season, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Season), args.Error(1)
}

// memoryCache is an in-process stand-in for the Redis response cache.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest any) bool {
	raw, ok := c.entries[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.entries[key] = raw
}

func TestRecipeUsecase_FeaturedRecipes_CacheAside(t *testing.T) {
	repo := new(MockRecipeRepo)
	repo.On("FeaturedRecipes", mock.Anything, 3).
		Return([]model.Recipe{{Title: "Autumn Stew", Slug: "autumn-stew", Featured: true}}, nil).
		Once()

	uc := usecase.NewRecipeUsecase(repo, newMemoryCache())

	first, err := uc.FeaturedRecipes(context.Background(), 3)
	require.NoError(t, err)
	second, err := uc.FeaturedRecipes(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "FeaturedRecipes", 1)
}

func TestRecipeUsecase_FeaturedRecipes_ClampsLimit(t *testing.T) {
	repo := new(MockRecipeRepo)
	repo.On("FeaturedRecipes", mock.Anything, 3).Return([]model.Recipe{}, nil).Once()

	uc := usecase.NewRecipeUsecase(repo, newMemoryCache())
	_, err := uc.FeaturedRecipes(context.Background(), 500)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRecipeUsecase_RecipeBySlug_MissIsNotCached(t *testing.T) {
	repo := new(MockRecipeRepo)
	repo.On("RecipeBySlug", mock.Anything, "ghost").Return(nil, nil).Twice()

	uc := usecase.NewRecipeUsecase(repo, newMemoryCache())

	recipe, err := uc.RecipeBySlug(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, recipe)

	_, err = uc.RecipeBySlug(context.Background(), "ghost")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRecipeUsecase_RecipeBySlug_HitIsCached(t *testing.T) {
	repo := new(MockRecipeRepo)
	repo.On("RecipeBySlug", mock.Anything, "autumn-stew").
		Return(&model.Recipe{Title: "Autumn Stew", Slug: "autumn-stew"}, nil).
		Once()

	uc := usecase.NewRecipeUsecase(repo, newMemoryCache())

	first, err := uc.RecipeBySlug(context.Background(), "autumn-stew")
	require.NoError(t, err)
	second, err := uc.RecipeBySlug(context.Background(), "autumn-stew")
	require.NoError(t, err)

	assert.Equal(t, first.Slug, second.Slug)
	repo.AssertNumberOfCalls(t, "RecipeBySlug", 1)
}

func TestRecipeUsecase_CMSErrorPropagates(t *testing.T) {
	repo := new(MockRecipeRepo)
	repo.On("ListRecipes", mock.Anything).Return(nil, assert.AnError).Once()

	uc := usecase.NewRecipeUsecase(repo, newMemoryCache())
	_, err := uc.ListRecipes(context.Background())

	assert.Error(t, err)
}

func TestRecipeUsecase_ListSeasons(t *testing.T) {
	repo := new(MockRecipeRepo)
	repo.On("ListSeasons", mock.Anything).
		Return([]model.Season{{Title: "Autumn", Slug: "autumn"}}, nil).
		Once()

	uc := usecase.NewRecipeUsecase(repo, newMemoryCache())

	seasons, err := uc.ListSeasons(context.Background())
	require.NoError(t, err)
	require.Len(t, seasons, 1)

	again, err := uc.ListSeasons(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seasons, again)
	repo.AssertNumberOfCalls(t, "ListSeasons", 1)
}
