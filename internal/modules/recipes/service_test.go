package recipes

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain"
	"foodgram/internal/repository"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	svc := NewService(
		repository.NewRecipeRepository(db),
		repository.NewIngredientRepository(db),
		repository.NewTagRepository(db),
		repository.NewUserRecipeListRepository(db),
		repository.NewSubscriptionRepository(db),
		Bounds{AmountMin: 1, AmountMax: 10000, CookingTimeMin: 1, CookingTimeMax: 600},
		t.TempDir(),
	)
	return svc, db
}

func seedReferenceData(t *testing.T, db *gorm.DB) (author domain.User, flour, sugar domain.Ingredient, breakfast domain.Tag) {
	author = domain.User{
		Email:        "author@example.com",
		Username:     "author",
		FirstName:    "First",
		LastName:     "Author",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&author).Error)

	flour = domain.Ingredient{Name: "flour", MeasurementUnit: "g"}
	sugar = domain.Ingredient{Name: "sugar", MeasurementUnit: "g"}
	require.NoError(t, db.Create(&flour).Error)
	require.NoError(t, db.Create(&sugar).Error)

	breakfast = domain.Tag{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"}
	require.NoError(t, db.Create(&breakfast).Error)
	return
}

func testImage() string {
	return base64.StdEncoding.EncodeToString([]byte("fake image bytes"))
}

func TestCreate_RoundTrip(t *testing.T) {
	svc, db := setupService(t)
	author, flour, sugar, breakfast := seedReferenceData(t, db)

	view, err := svc.Create(context.Background(), author.ID, CreateRecipeRequest{
		Ingredients: []IngredientRef{
			{ID: flour.ID, Amount: 200},
			{ID: sugar.ID, Amount: 50},
		},
		Tags:        []int64{breakfast.ID},
		Name:        "Pancakes",
		Text:        "Mix and fry.",
		Image:       testImage(),
		CookingTime: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, "Pancakes", view.Name)
	assert.Equal(t, author.ID, view.Author.ID)
	assert.Equal(t, "author", view.Author.Username)
	assert.False(t, view.IsFavorited)
	assert.False(t, view.IsInShoppingCart)
	assert.NotEmpty(t, view.Image)

	require.Len(t, view.Ingredients, 2)
	byName := map[string]IngredientAmountView{}
	for _, ing := range view.Ingredients {
		byName[ing.Name] = ing
	}
	assert.Equal(t, 200, byName["flour"].Amount)
	assert.Equal(t, "g", byName["flour"].MeasurementUnit)
	assert.Equal(t, 50, byName["sugar"].Amount)

	require.Len(t, view.Tags, 1)
	assert.Equal(t, "breakfast", view.Tags[0].Slug)
}

func TestCreate_DuplicateIngredient(t *testing.T) {
	svc, db := setupService(t)
	author, flour, _, breakfast := seedReferenceData(t, db)

	_, err := svc.Create(context.Background(), author.ID, CreateRecipeRequest{
		Ingredients: []IngredientRef{
			{ID: flour.ID, Amount: 100},
			{ID: flour.ID, Amount: 200},
		},
		Tags:        []int64{breakfast.ID},
		Name:        "Dup",
		Text:        "t",
		Image:       testImage(),
		CookingTime: 10,
	})

	assert.ErrorIs(t, err, ErrDuplicateIngredient)
}

func TestCreate_AmountOutOfRange(t *testing.T) {
	svc, db := setupService(t)
	author, flour, _, breakfast := seedReferenceData(t, db)

	for _, amount := range []int{0, 10001} {
		_, err := svc.Create(context.Background(), author.ID, CreateRecipeRequest{
			Ingredients: []IngredientRef{{ID: flour.ID, Amount: amount}},
			Tags:        []int64{breakfast.ID},
			Name:        "Bad amount",
			Text:        "t",
			Image:       testImage(),
			CookingTime: 10,
		})
		assert.ErrorIs(t, err, ErrAmountOutOfRange)
	}
}

func TestCreate_CookingTimeOutOfRange(t *testing.T) {
	svc, db := setupService(t)
	author, flour, _, breakfast := seedReferenceData(t, db)

	for _, minutes := range []int{0, 601} {
		_, err := svc.Create(context.Background(), author.ID, CreateRecipeRequest{
			Ingredients: []IngredientRef{{ID: flour.ID, Amount: 100}},
			Tags:        []int64{breakfast.ID},
			Name:        "Bad time",
			Text:        "t",
			Image:       testImage(),
			CookingTime: minutes,
		})
		assert.ErrorIs(t, err, ErrCookingTimeOutOfRange)
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	svc, db := setupService(t)
	author, flour, _, breakfast := seedReferenceData(t, db)

	req := CreateRecipeRequest{
		Ingredients: []IngredientRef{{ID: flour.ID, Amount: 100}},
		Tags:        []int64{breakfast.ID},
		Name:        "Pancakes",
		Text:        "t",
		Image:       testImage(),
		CookingTime: 10,
	}

	_, err := svc.Create(context.Background(), author.ID, req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), author.ID, req)
	assert.ErrorIs(t, err, ErrDuplicateRecipeName)

	// another author may reuse the name
	other := domain.User{Email: "other@example.com", Username: "other", PasswordHash: "x"}
	require.NoError(t, db.Create(&other).Error)
	_, err = svc.Create(context.Background(), other.ID, req)
	assert.NoError(t, err)
}

func TestCreate_UnknownReferences(t *testing.T) {
	svc, db := setupService(t)
	author, flour, _, breakfast := seedReferenceData(t, db)

	_, err := svc.Create(context.Background(), author.ID, CreateRecipeRequest{
		Ingredients: []IngredientRef{{ID: 9999, Amount: 100}},
		Tags:        []int64{breakfast.ID},
		Name:        "Ghost ingredient",
		Text:        "t",
		Image:       testImage(),
		CookingTime: 10,
	})
	assert.ErrorIs(t, err, ErrIngredientNotFound)

	_, err = svc.Create(context.Background(), author.ID, CreateRecipeRequest{
		Ingredients: []IngredientRef{{ID: flour.ID, Amount: 100}},
		Tags:        []int64{9999},
		Name:        "Ghost tag",
		Text:        "t",
		Image:       testImage(),
		CookingTime: 10,
	})
	assert.ErrorIs(t, err, ErrTagNotFound)
}

func TestUpdate_ReplacesAssociations(t *testing.T) {
	svc, db := setupService(t)
	author, flour, sugar, breakfast := seedReferenceData(t, db)

	created, err := svc.Create(context.Background(), author.ID, CreateRecipeRequest{
		Ingredients: []IngredientRef{{ID: flour.ID, Amount: 100}},
		Tags:        []int64{breakfast.ID},
		Name:        "Cake",
		Text:        "t",
		Image:       testImage(),
		CookingTime: 30,
	})
	require.NoError(t, err)

	dinner := domain.Tag{Name: "Dinner", Color: "#8775D2", Slug: "dinner"}
	require.NoError(t, db.Create(&dinner).Error)

	updated, err := svc.Update(context.Background(), author.ID, false, created.ID, UpdateRecipeRequest{
		Ingredients: []IngredientRef{{ID: sugar.ID, Amount: 75}},
		Tags:        []int64{dinner.ID},
		Name:        "Cake v2",
		Text:        "updated",
		CookingTime: 45,
	})

	require.NoError(t, err)
	assert.Equal(t, "Cake v2", updated.Name)
	assert.Equal(t, 45, updated.CookingTime)
	assert.Equal(t, created.Image, updated.Image) // empty image keeps the stored file
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, "sugar", updated.Ingredients[0].Name)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "dinner", updated.Tags[0].Slug)
}

func TestUpdate_PermissionDenied(t *testing.T) {
	svc, db := setupService(t)
	author, flour, _, breakfast := seedReferenceData(t, db)

	created, err := svc.Create(context.Background(), author.ID, CreateRecipeRequest{
		Ingredients: []IngredientRef{{ID: flour.ID, Amount: 100}},
		Tags:        []int64{breakfast.ID},
		Name:        "Owned",
		Text:        "t",
		Image:       testImage(),
		CookingTime: 10,
	})
	require.NoError(t, err)

	stranger := domain.User{Email: "stranger@example.com", Username: "stranger", PasswordHash: "x"}
	require.NoError(t, db.Create(&stranger).Error)

	req := UpdateRecipeRequest{
		Ingredients: []IngredientRef{{ID: flour.ID, Amount: 100}},
		Tags:        []int64{breakfast.ID},
		Name:        "Stolen",
		Text:        "t",
		CookingTime: 10,
	}

	_, err = svc.Update(context.Background(), stranger.ID, false, created.ID, req)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = svc.Delete(context.Background(), stranger.ID, false, created.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// an administrator may edit and delete any recipe
	_, err = svc.Update(context.Background(), stranger.ID, true, created.ID, req)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), stranger.ID, true, created.ID))

	_, err = svc.Get(context.Background(), 0, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListToggles(t *testing.T) {
	svc, db := setupService(t)
	author, flour, _, breakfast := seedReferenceData(t, db)

	created, err := svc.Create(context.Background(), author.ID, CreateRecipeRequest{
		Ingredients: []IngredientRef{{ID: flour.ID, Amount: 100}},
		Tags:        []int64{breakfast.ID},
		Name:        "Toggled",
		Text:        "t",
		Image:       testImage(),
		CookingTime: 10,
	})
	require.NoError(t, err)

	reader := domain.User{Email: "reader@example.com", Username: "reader", PasswordHash: "x"}
	require.NoError(t, db.Create(&reader).Error)

	for _, kind := range []repository.ListKind{repository.ListFavorite, repository.ListCart} {
		summary, err := svc.AddToList(context.Background(), kind, reader.ID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Toggled", summary.Name)

		_, err = svc.AddToList(context.Background(), kind, reader.ID, created.ID)
		assert.ErrorIs(t, err, ErrAlreadyInList)
	}

	view, err := svc.Get(context.Background(), reader.ID, created.ID)
	require.NoError(t, err)
	assert.True(t, view.IsFavorited)
	assert.True(t, view.IsInShoppingCart)

	require.NoError(t, svc.RemoveFromList(context.Background(), repository.ListFavorite, reader.ID, created.ID))
	err = svc.RemoveFromList(context.Background(), repository.ListFavorite, reader.ID, created.ID)
	assert.ErrorIs(t, err, ErrNotInList)
}

func TestShoppingList_AggregatesSharedIngredients(t *testing.T) {
	svc, db := setupService(t)
	author, flour, sugar, breakfast := seedReferenceData(t, db)

	first, err := svc.Create(context.Background(), author.ID, CreateRecipeRequest{
		Ingredients: []IngredientRef{
			{ID: flour.ID, Amount: 200},
			{ID: sugar.ID, Amount: 50},
		},
		Tags:        []int64{breakfast.ID},
		Name:        "Bread",
		Text:        "t",
		Image:       testImage(),
		CookingTime: 60,
	})
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), author.ID, CreateRecipeRequest{
		Ingredients: []IngredientRef{{ID: flour.ID, Amount: 300}},
		Tags:        []int64{breakfast.ID},
		Name:        "Buns",
		Text:        "t",
		Image:       testImage(),
		CookingTime: 40,
	})
	require.NoError(t, err)

	for _, id := range []int64{first.ID, second.ID} {
		_, err := svc.AddToList(context.Background(), repository.ListCart, author.ID, id)
		require.NoError(t, err)
	}

	text, err := svc.ShoppingList(context.Background(), author.ID)
	require.NoError(t, err)

	assert.Equal(t, "Shopping list:\nflour, 500 g\nsugar, 50 g\n", text)
}

func TestList_Filters(t *testing.T) {
	svc, db := setupService(t)
	author, flour, _, breakfast := seedReferenceData(t, db)

	dinner := domain.Tag{Name: "Dinner", Color: "#8775D2", Slug: "dinner"}
	require.NoError(t, db.Create(&dinner).Error)

	tagged, err := svc.Create(context.Background(), author.ID, CreateRecipeRequest{
		Ingredients: []IngredientRef{{ID: flour.ID, Amount: 100}},
		Tags:        []int64{breakfast.ID},
		Name:        "Morning",
		Text:        "t",
		Image:       testImage(),
		CookingTime: 10,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), author.ID, CreateRecipeRequest{
		Ingredients: []IngredientRef{{ID: flour.ID, Amount: 100}},
		Tags:        []int64{dinner.ID},
		Name:        "Evening",
		Text:        "t",
		Image:       testImage(),
		CookingTime: 10,
	})
	require.NoError(t, err)

	views, total, err := svc.List(context.Background(), 0, repository.RecipeFilters{
		TagSlugs: []string{"breakfast"},
		Limit:    6,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, views, 1)
	assert.Equal(t, "Morning", views[0].Name)

	reader := domain.User{Email: "reader@example.com", Username: "reader", PasswordHash: "x"}
	require.NoError(t, db.Create(&reader).Error)
	_, err = svc.AddToList(context.Background(), repository.ListFavorite, reader.ID, tagged.ID)
	require.NoError(t, err)

	views, total, err = svc.List(context.Background(), reader.ID, repository.RecipeFilters{
		FavoritedBy: reader.ID,
		Limit:       6,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, views, 1)
	assert.True(t, views[0].IsFavorited)

	// anonymous requesters cannot narrow by favorites
	_, total, err = svc.List(context.Background(), 0, repository.RecipeFilters{
		FavoritedBy: reader.ID,
		Limit:       6,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
