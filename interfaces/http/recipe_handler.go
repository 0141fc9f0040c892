package http

import (
	"net/http"

	"axlas-recipes/domain/dto"
	"axlas-recipes/usecase"

	"github.com/gin-gonic/gin"
)

type IRecipeHandler interface {
	ListRecipes(c *gin.Context)
	GetRecipeBySlug(c *gin.Context)
	ListSeasons(c *gin.Context)
}

type RecipeHandler struct {
	RecipeUsecase usecase.IRecipeUsecase
}

func NewRecipeHandler(recipeUsecase usecase.IRecipeUsecase) IRecipeHandler {
	return &RecipeHandler{RecipeUsecase: recipeUsecase}
}

func (recipeHandler *RecipeHandler) ListRecipes(c *gin.Context) {
	var req dto.RecipeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	var err error
	var recipes any
	if req.Featured {
		recipes, err = recipeHandler.RecipeUsecase.FeaturedRecipes(c.Request.Context(), req.Limit)
	} else {
		recipes, err = recipeHandler.RecipeUsecase.ListRecipes(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (recipeHandler *RecipeHandler) GetRecipeBySlug(c *gin.Context) {
	slug := c.Param("slug")
	recipe, err := recipeHandler.RecipeUsecase.RecipeBySlug(c.Request.Context(), slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe"})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (recipeHandler *RecipeHandler) ListSeasons(c *gin.Context) {
	seasons, err := recipeHandler.RecipeUsecase.ListSeasons(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load seasons"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"seasons": seasons})
}
