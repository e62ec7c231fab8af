package recipes

import "foodgram/internal/domain"

// IngredientRef is one submitted {id, amount} pair.
type IngredientRef struct {
	ID     int64 `json:"id" binding:"required"`
	Amount int   `json:"amount" binding:"required"`
}

type CreateRecipeRequest struct {
	Ingredients []IngredientRef `json:"ingredients" binding:"required,min=1,dive"`
	Tags        []int64         `json:"tags" binding:"required,min=1"`
	Name        string          `json:"name" binding:"required,max=200"`
	Text        string          `json:"text" binding:"required"`
	Image       string          `json:"image" binding:"required"`
	CookingTime int             `json:"cooking_time" binding:"required"`
}

// UpdateRecipeRequest mirrors the create shape; the ingredient and tag sets
// replace the stored ones wholesale. Image is optional; an empty value
// keeps the stored file.
type UpdateRecipeRequest struct {
	Ingredients []IngredientRef `json:"ingredients" binding:"required,min=1,dive"`
	Tags        []int64         `json:"tags" binding:"required,min=1"`
	Name        string          `json:"name" binding:"required,max=200"`
	Text        string          `json:"text" binding:"required"`
	Image       string          `json:"image"`
	CookingTime int             `json:"cooking_time" binding:"required"`
}

// AuthorView is the recipe author as seen by the requester.
type AuthorView struct {
	Email        string `json:"email"`
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// IngredientAmountView is an ingredient with its amount in this recipe.
type IngredientAmountView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeView is the full recipe representation.
type RecipeView struct {
	ID               int64                  `json:"id"`
	Tags             []domain.Tag           `json:"tags"`
	Author           AuthorView             `json:"author"`
	Ingredients      []IngredientAmountView `json:"ingredients"`
	IsFavorited      bool                   `json:"is_favorited"`
	IsInShoppingCart bool                   `json:"is_in_shopping_cart"`
	Name             string                 `json:"name"`
	Image            string                 `json:"image"`
	Text             string                 `json:"text"`
	CookingTime      int                    `json:"cooking_time"`
}

// RecipeSummary is the compact form returned by the favorite and
// shopping-cart toggles.
type RecipeSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}
