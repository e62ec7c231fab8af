package repository

import (
	"context"

	"foodgram/internal/domain"

	"gorm.io/gorm"
)

// RecipeFilters narrows recipe listings. Zero values mean "not applied".
type RecipeFilters struct {
	AuthorID    int64
	TagSlugs    []string
	FavoritedBy int64
	InCartOf    int64
	Limit       int
	Offset      int
}

// IngredientAmount is one submitted {ingredient id, amount} pair for a
// recipe write.
type IngredientAmount struct {
	IngredientID int64
	Amount       int
}

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func (r *RecipeRepository) DB() *gorm.DB { return r.db }

// Create inserts the recipe together with its ingredient-amount and tag
// association rows as one atomic unit. A partially created recipe is never
// observable.
func (r *RecipeRepository) Create(ctx context.Context, recipe *domain.Recipe, ingredients []IngredientAmount, tagIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients", "Tags", "Author").Create(recipe).Error; err != nil {
			return err
		}
		return createAssociations(tx, recipe.ID, ingredients, tagIDs)
	})
}

// Update replaces the recipe row and its full ingredient and tag sets in one
// transaction. This is full-replace semantics: associations absent from the
// submitted sets are dropped.
func (r *RecipeRepository) Update(ctx context.Context, recipe *domain.Recipe, ingredients []IngredientAmount, tagIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&domain.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&domain.RecipeTag{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Recipe{}).
			Where("id = ?", recipe.ID).
			Updates(map[string]any{
				"name":         recipe.Name,
				"text":         recipe.Text,
				"image":        recipe.Image,
				"cooking_time": recipe.CookingTime,
			}).Error; err != nil {
			return err
		}
		return createAssociations(tx, recipe.ID, ingredients, tagIDs)
	})
}

func createAssociations(tx *gorm.DB, recipeID int64, ingredients []IngredientAmount, tagIDs []int64) error {
	rows := make([]domain.RecipeIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		rows = append(rows, domain.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: ing.IngredientID,
			Amount:       ing.Amount,
		})
	}
	if len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}

	tagRows := make([]domain.RecipeTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		tagRows = append(tagRows, domain.RecipeTag{RecipeID: recipeID, TagID: id})
	}
	if len(tagRows) > 0 {
		if err := tx.Create(&tagRows).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the recipe and its association rows. Favorites and cart
// entries referencing it go too; ingredient and tag reference rows stay.
func (r *RecipeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&domain.RecipeIngredient{},
			&domain.RecipeTag{},
			&domain.FavoriteRecipe{},
			&domain.ShoppingCart{},
		} {
			if err := tx.Where("recipe_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&domain.Recipe{}, id).Error
	})
}

func (r *RecipeRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Ingredients.Ingredient").
		Preload("Tags").
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// List returns recipes newest-first with the requested filters applied.
func (r *RecipeRepository) List(ctx context.Context, f RecipeFilters) ([]domain.Recipe, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Recipe{})

	if f.AuthorID != 0 {
		q = q.Where("recipes.author_id = ?", f.AuthorID)
	}
	if len(f.TagSlugs) > 0 {
		q = q.Where("recipes.id IN (?)",
			r.db.Model(&domain.RecipeTag{}).
				Select("recipe_tags.recipe_id").
				Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
				Where("tags.slug IN ?", f.TagSlugs))
	}
	if f.FavoritedBy != 0 {
		q = q.Where("recipes.id IN (?)",
			r.db.Model(&domain.FavoriteRecipe{}).
				Select("recipe_id").
				Where("user_id = ?", f.FavoritedBy))
	}
	if f.InCartOf != 0 {
		q = q.Where("recipes.id IN (?)",
			r.db.Model(&domain.ShoppingCart{}).
				Select("recipe_id").
				Where("user_id = ?", f.InCartOf))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []domain.Recipe
	err := q.
		Preload("Author").
		Preload("Ingredients.Ingredient").
		Preload("Tags").
		Order("recipes.pub_date DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&recipes).Error
	return recipes, total, err
}

func (r *RecipeRepository) ExistsByAuthorAndName(ctx context.Context, authorID int64, name string, excludeID int64) (bool, error) {
	q := r.db.WithContext(ctx).Model(&domain.Recipe{}).
		Where("author_id = ? AND name = ?", authorID, name)
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

// ListByAuthor returns an author's recipes newest-first, capped at limit
// when limit > 0. Used for subscription payloads.
func (r *RecipeRepository) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, error) {
	q := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("pub_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recipes []domain.Recipe
	err := q.Find(&recipes).Error
	return recipes, err
}

func (r *RecipeRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}
