package repository

import (
	"context"

	"foodgram/internal/domain"

	"gorm.io/gorm"
)

// ListKind selects which (user, recipe) association a toggle operates on.
type ListKind string

const (
	ListFavorite ListKind = "favorite"
	ListCart     ListKind = "shopping_cart"
)

// IngredientTotal is one aggregated shopping-list line: an ingredient
// identity (name + unit) with the summed amount across the cart.
type IngredientTotal struct {
	Name            string
	MeasurementUnit string
	Total           int
}

// UserRecipeListRepository backs both the favorites list and the shopping
// cart; the two differ only in which table the pair lands in.
type UserRecipeListRepository struct {
	db *gorm.DB
}

func NewUserRecipeListRepository(db *gorm.DB) *UserRecipeListRepository {
	return &UserRecipeListRepository{db: db}
}

func (r *UserRecipeListRepository) model(kind ListKind) any {
	if kind == ListCart {
		return &domain.ShoppingCart{}
	}
	return &domain.FavoriteRecipe{}
}

func (r *UserRecipeListRepository) Exists(ctx context.Context, kind ListKind, userID, recipeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(r.model(kind)).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRecipeListRepository) Add(ctx context.Context, kind ListKind, userID, recipeID int64) error {
	if kind == ListCart {
		return r.db.WithContext(ctx).Create(&domain.ShoppingCart{UserID: userID, RecipeID: recipeID}).Error
	}
	return r.db.WithContext(ctx).Create(&domain.FavoriteRecipe{UserID: userID, RecipeID: recipeID}).Error
}

func (r *UserRecipeListRepository) Remove(ctx context.Context, kind ListKind, userID, recipeID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(r.model(kind)).Error
}

// AggregateCart sums ingredient amounts across every recipe in the user's
// cart, grouped by ingredient identity. Name-ordered so the rendered file is
// stable between downloads.
func (r *UserRecipeListRepository) AggregateCart(ctx context.Context, userID int64) ([]IngredientTotal, error) {
	var totals []IngredientTotal
	err := r.db.WithContext(ctx).
		Model(&domain.RecipeIngredient{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id IN (?)",
			r.db.Model(&domain.ShoppingCart{}).
				Select("recipe_id").
				Where("user_id = ?", userID)).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name ASC").
		Scan(&totals).Error
	return totals, err
}
