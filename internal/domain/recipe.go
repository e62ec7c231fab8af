package domain

import "time"

// Recipe is owned by its author. The (author_id, name) pair is unique and a
// recipe always carries at least one ingredient and one tag; both sets are
// replaced wholesale on update.
type Recipe struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	AuthorID    int64     `json:"author_id" gorm:"not null;index;uniqueIndex:idx_author_name"`
	Name        string    `json:"name" gorm:"size:200;not null;uniqueIndex:idx_author_name"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	Image       string    `json:"image" gorm:"not null"`
	CookingTime int       `json:"cooking_time" gorm:"not null"`
	PubDate     time.Time `json:"pub_date" gorm:"autoCreateTime;index"`

	Author      *User              `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Ingredients []RecipeIngredient `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID"`
	Tags        []Tag              `json:"tags,omitempty" gorm:"many2many:recipe_tags"`
}

func (Recipe) TableName() string { return "recipes" }

// RecipeIngredient carries the amount of one ingredient in one recipe.
type RecipeIngredient struct {
	ID           int64 `json:"id" gorm:"primaryKey"`
	RecipeID     int64 `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_recipe_ingredient"`
	IngredientID int64 `json:"ingredient_id" gorm:"not null;index;uniqueIndex:idx_recipe_ingredient"`
	Amount       int   `json:"amount" gorm:"not null"`

	Recipe     *Recipe     `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Ingredient *Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }

// RecipeTag is the recipe-tag join row. Tags survive recipe deletion; the
// association rows do not.
type RecipeTag struct {
	RecipeID int64 `gorm:"primaryKey"`
	TagID    int64 `gorm:"primaryKey"`
}

func (RecipeTag) TableName() string { return "recipe_tags" }

// FavoriteRecipe marks a recipe as favorited by a user. One row per pair.
type FavoriteRecipe struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_recipe_favorite"`
	RecipeID  int64     `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_user_recipe_favorite"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Recipe *Recipe `json:"recipe,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

func (FavoriteRecipe) TableName() string { return "favorite_recipes" }

// ShoppingCart marks a recipe as selected for the user's shopping list.
type ShoppingCart struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_recipe_cart"`
	RecipeID  int64     `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_user_recipe_cart"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Recipe *Recipe `json:"recipe,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

func (ShoppingCart) TableName() string { return "shopping_carts" }
