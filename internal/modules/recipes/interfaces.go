package recipes

import (
	"context"

	"foodgram/internal/domain"
	"foodgram/internal/repository"
)

// RecipeRepositoryInterface defines the store operations the recipe service
// uses. Create and Update are atomic over the recipe row and both
// association sets.
type RecipeRepositoryInterface interface {
	Create(ctx context.Context, recipe *domain.Recipe, ingredients []repository.IngredientAmount, tagIDs []int64) error
	Update(ctx context.Context, recipe *domain.Recipe, ingredients []repository.IngredientAmount, tagIDs []int64) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	List(ctx context.Context, f repository.RecipeFilters) ([]domain.Recipe, int64, error)
	ExistsByAuthorAndName(ctx context.Context, authorID int64, name string, excludeID int64) (bool, error)
}

// IngredientReader checks submitted ingredient references
type IngredientReader interface {
	CountByIDs(ctx context.Context, ids []int64) (int64, error)
}

// TagReader checks submitted tag references
type TagReader interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error)
}

// ListRepositoryInterface manages favorite and shopping-cart pairs and the
// cart aggregation.
type ListRepositoryInterface interface {
	Exists(ctx context.Context, kind repository.ListKind, userID, recipeID int64) (bool, error)
	Add(ctx context.Context, kind repository.ListKind, userID, recipeID int64) error
	Remove(ctx context.Context, kind repository.ListKind, userID, recipeID int64) error
	AggregateCart(ctx context.Context, userID int64) ([]repository.IngredientTotal, error)
}

// SubscriptionChecker fills in is_subscribed on recipe author payloads
type SubscriptionChecker interface {
	Exists(ctx context.Context, subscriberID, authorID int64) (bool, error)
}
