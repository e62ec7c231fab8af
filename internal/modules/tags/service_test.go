package tags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram/internal/database"
	"foodgram/internal/domain"
	"foodgram/internal/repository"
)

func setupService(t *testing.T) *Service {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewService(repository.NewTagRepository(db))
}

func TestCreate_AcceptsHexColors(t *testing.T) {
	svc := setupService(t)

	for i, color := range []string{"#FF0000", "#f00", "#49B64E"} {
		err := svc.Create(context.Background(), &domain.Tag{
			Name:  "Tag",
			Color: color,
			Slug:  "tag-" + string(rune('a'+i)),
		})
		assert.NoError(t, err, color)
	}
}

func TestCreate_RejectsBadColors(t *testing.T) {
	svc := setupService(t)

	for _, color := range []string{"FF0000", "#FF00", "#GGGGGG", "red", ""} {
		err := svc.Create(context.Background(), &domain.Tag{
			Name:  "Tag",
			Color: color,
			Slug:  "tag",
		})
		assert.ErrorIs(t, err, ErrInvalidColor, color)
	}
}

func TestCreate_SlugTaken(t *testing.T) {
	svc := setupService(t)

	require.NoError(t, svc.Create(context.Background(), &domain.Tag{
		Name:  "Breakfast",
		Color: "#E26C2D",
		Slug:  "breakfast",
	}))

	err := svc.Create(context.Background(), &domain.Tag{
		Name:  "Second breakfast",
		Color: "#E26C2D",
		Slug:  "breakfast",
	})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestListAndGet(t *testing.T) {
	svc := setupService(t)

	require.NoError(t, svc.Create(context.Background(), &domain.Tag{
		Name:  "Lunch",
		Color: "#49B64E",
		Slug:  "lunch",
	}))

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	got, err := svc.Get(context.Background(), list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "lunch", got.Slug)
}
