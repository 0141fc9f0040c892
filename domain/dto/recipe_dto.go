package dto

// RecipeListRequest filters the recipe grid.
type RecipeListRequest struct {
	Featured bool `form:"featured"`
	Limit    int  `form:"limit"`
}
