package recipes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"foodgram/internal/domain"
	"foodgram/internal/pkg/images"
	"foodgram/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const imageSubdir = "recipes"

// Bounds are the configured validation limits for recipe writes.
type Bounds struct {
	AmountMin      int
	AmountMax      int
	CookingTimeMin int
	CookingTimeMax int
}

// Service owns recipe CRUD, the favorite/cart toggles and the shopping-list
// aggregation.
type Service struct {
	recipes       RecipeRepositoryInterface
	ingredients   IngredientReader
	tags          TagReader
	lists         ListRepositoryInterface
	subscriptions SubscriptionChecker
	bounds        Bounds
	mediaDir      string
}

func NewService(
	recipes RecipeRepositoryInterface,
	ingredients IngredientReader,
	tags TagReader,
	lists ListRepositoryInterface,
	subscriptions SubscriptionChecker,
	bounds Bounds,
	mediaDir string,
) *Service {
	return &Service{
		recipes:       recipes,
		ingredients:   ingredients,
		tags:          tags,
		lists:         lists,
		subscriptions: subscriptions,
		bounds:        bounds,
		mediaDir:      mediaDir,
	}
}

// Create validates the submission and writes the recipe plus its ingredient
// and tag rows as one atomic unit.
func (s *Service) Create(ctx context.Context, authorID int64, req CreateRecipeRequest) (*RecipeView, error) {
	ingredients, tagIDs, err := s.validateWrite(ctx, authorID, req.Ingredients, req.Tags, req.CookingTime, req.Name, 0)
	if err != nil {
		return nil, err
	}

	imagePath, err := images.SaveBase64(req.Image, s.mediaDir, imageSubdir)
	if err != nil {
		if errors.Is(err, images.ErrInvalidPayload) {
			return nil, ErrInvalidImage
		}
		return nil, err
	}

	recipe := &domain.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       imagePath,
		CookingTime: req.CookingTime,
	}

	if err := s.recipes.Create(ctx, recipe, ingredients, tagIDs); err != nil {
		return nil, translateConflict(err)
	}

	return s.Get(ctx, authorID, recipe.ID)
}

// Update replaces the recipe's fields and its full ingredient and tag sets.
// Only the author or an administrator may edit.
func (s *Service) Update(ctx context.Context, userID int64, isAdmin bool, recipeID int64, req UpdateRecipeRequest) (*RecipeView, error) {
	existing, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != userID && !isAdmin {
		return nil, ErrPermissionDenied
	}

	// the duplicate-name check excludes the recipe being updated
	ingredients, tagIDs, err := s.validateWrite(ctx, existing.AuthorID, req.Ingredients, req.Tags, req.CookingTime, req.Name, recipeID)
	if err != nil {
		return nil, err
	}

	imagePath := existing.Image
	if req.Image != "" {
		imagePath, err = images.SaveBase64(req.Image, s.mediaDir, imageSubdir)
		if err != nil {
			if errors.Is(err, images.ErrInvalidPayload) {
				return nil, ErrInvalidImage
			}
			return nil, err
		}
	}

	updated := &domain.Recipe{
		ID:          recipeID,
		AuthorID:    existing.AuthorID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       imagePath,
		CookingTime: req.CookingTime,
	}

	if err := s.recipes.Update(ctx, updated, ingredients, tagIDs); err != nil {
		return nil, translateConflict(err)
	}

	return s.Get(ctx, userID, recipeID)
}

// Delete removes the recipe and everything it owns.
func (s *Service) Delete(ctx context.Context, userID int64, isAdmin bool, recipeID int64) error {
	existing, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if existing.AuthorID != userID && !isAdmin {
		return ErrPermissionDenied
	}
	return s.recipes.Delete(ctx, recipeID)
}

// Get returns the full representation as seen by the requester (0 for
// anonymous).
func (s *Service) Get(ctx context.Context, requesterID, recipeID int64) (*RecipeView, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, requesterID, recipe)
}

// List returns a page of recipes newest-first.
func (s *Service) List(ctx context.Context, requesterID int64, f repository.RecipeFilters) ([]RecipeView, int64, error) {
	// the favorited/in-cart filters only narrow for authenticated requesters
	if requesterID == 0 {
		f.FavoritedBy = 0
		f.InCartOf = 0
	}

	list, total, err := s.recipes.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	views := make([]RecipeView, 0, len(list))
	for i := range list {
		v, err := s.toView(ctx, requesterID, &list[i])
		if err != nil {
			return nil, 0, err
		}
		views = append(views, *v)
	}
	return views, total, nil
}

// AddToList puts the recipe on the user's favorite or cart list. Adding a
// pair that is already present is an observable error, not a no-op.
func (s *Service) AddToList(ctx context.Context, kind repository.ListKind, userID, recipeID int64) (*RecipeSummary, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	exists, err := s.lists.Exists(ctx, kind, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyInList
	}

	if err := s.lists.Add(ctx, kind, userID, recipeID); err != nil {
		return nil, err
	}

	return &RecipeSummary{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}, nil
}

// RemoveFromList is the inverse toggle; removing an absent pair fails.
func (s *Service) RemoveFromList(ctx context.Context, kind repository.ListKind, userID, recipeID int64) error {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		return err
	}

	exists, err := s.lists.Exists(ctx, kind, userID, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotInList
	}

	return s.lists.Remove(ctx, kind, userID, recipeID)
}

// ShoppingList renders the user's aggregated cart as plain text: a header
// line, then one line per ingredient identity with the summed amount.
func (s *Service) ShoppingList(ctx context.Context, userID int64) (string, error) {
	totals, err := s.lists.AggregateCart(ctx, userID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Shopping list:\n")
	for _, t := range totals {
		fmt.Fprintf(&b, "%s, %d %s\n", t.Name, t.Total, t.MeasurementUnit)
	}
	return b.String(), nil
}

// validateWrite runs the recipe write checks in a fixed order: duplicate
// ingredients, amount bounds, cooking-time bounds, duplicate (author, name),
// then reference existence.
func (s *Service) validateWrite(ctx context.Context, authorID int64, ingredients []IngredientRef, tagIDs []int64, cookingTime int, name string, excludeID int64) ([]repository.IngredientAmount, []int64, error) {
	if len(ingredients) == 0 {
		return nil, nil, ErrNoIngredients
	}
	if len(tagIDs) == 0 {
		return nil, nil, ErrNoTags
	}

	seen := make(map[int64]struct{}, len(ingredients))
	for _, ing := range ingredients {
		if _, dup := seen[ing.ID]; dup {
			return nil, nil, ErrDuplicateIngredient
		}
		seen[ing.ID] = struct{}{}
	}

	for _, ing := range ingredients {
		if ing.Amount < s.bounds.AmountMin || ing.Amount > s.bounds.AmountMax {
			return nil, nil, ErrAmountOutOfRange
		}
	}

	if cookingTime < s.bounds.CookingTimeMin || cookingTime > s.bounds.CookingTimeMax {
		return nil, nil, ErrCookingTimeOutOfRange
	}

	taken, err := s.recipes.ExistsByAuthorAndName(ctx, authorID, name, excludeID)
	if err != nil {
		return nil, nil, err
	}
	if taken {
		return nil, nil, ErrDuplicateRecipeName
	}

	ids := make([]int64, 0, len(ingredients))
	rows := make([]repository.IngredientAmount, 0, len(ingredients))
	for _, ing := range ingredients {
		ids = append(ids, ing.ID)
		rows = append(rows, repository.IngredientAmount{IngredientID: ing.ID, Amount: ing.Amount})
	}

	count, err := s.ingredients.CountByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	if count != int64(len(ids)) {
		return nil, nil, ErrIngredientNotFound
	}

	uniqueTags := make([]int64, 0, len(tagIDs))
	tagSeen := make(map[int64]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		if _, dup := tagSeen[id]; dup {
			continue
		}
		tagSeen[id] = struct{}{}
		uniqueTags = append(uniqueTags, id)
	}

	found, err := s.tags.GetByIDs(ctx, uniqueTags)
	if err != nil {
		return nil, nil, err
	}
	if len(found) != len(uniqueTags) {
		return nil, nil, ErrTagNotFound
	}

	return rows, uniqueTags, nil
}

func (s *Service) toView(ctx context.Context, requesterID int64, recipe *domain.Recipe) (*RecipeView, error) {
	author := AuthorView{ID: recipe.AuthorID}
	if recipe.Author != nil {
		author = AuthorView{
			Email:     recipe.Author.Email,
			ID:        recipe.Author.ID,
			Username:  recipe.Author.Username,
			FirstName: recipe.Author.FirstName,
			LastName:  recipe.Author.LastName,
		}
	}

	var err error
	isFavorited, isInCart := false, false
	if requesterID != 0 {
		if requesterID != recipe.AuthorID {
			author.IsSubscribed, err = s.subscriptions.Exists(ctx, requesterID, recipe.AuthorID)
			if err != nil {
				return nil, err
			}
		}
		isFavorited, err = s.lists.Exists(ctx, repository.ListFavorite, requesterID, recipe.ID)
		if err != nil {
			return nil, err
		}
		isInCart, err = s.lists.Exists(ctx, repository.ListCart, requesterID, recipe.ID)
		if err != nil {
			return nil, err
		}
	}

	ingredients := make([]IngredientAmountView, 0, len(recipe.Ingredients))
	for _, ri := range recipe.Ingredients {
		view := IngredientAmountView{ID: ri.IngredientID, Amount: ri.Amount}
		if ri.Ingredient != nil {
			view.Name = ri.Ingredient.Name
			view.MeasurementUnit = ri.Ingredient.MeasurementUnit
		}
		ingredients = append(ingredients, view)
	}

	tags := recipe.Tags
	if tags == nil {
		tags = []domain.Tag{}
	}

	return &RecipeView{
		ID:               recipe.ID,
		Tags:             tags,
		Author:           author,
		Ingredients:      ingredients,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInCart,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}, nil
}

// translateConflict maps store-level uniqueness violations onto the
// duplicate-name sentinel; the explicit pre-check catches everything else
// first, so a conflict here means two concurrent writes raced.
func translateConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateRecipeName
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateRecipeName
	}
	return err
}
