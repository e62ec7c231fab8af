package ingredients

import (
	"context"
	"strings"
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
	return NewService(repository.NewIngredientRepository(db)), db
}

func TestImportCSV_LoadsRows(t *testing.T) {
	svc, db := setupService(t)

	csv := "flour,g\nsugar,g\nmilk,ml\n"
	count, err := svc.ImportCSV(context.Background(), strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 3, count)

	list, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, list, 3)

	var milk domain.Ingredient
	require.NoError(t, db.Where("name = ?", "milk").First(&milk).Error)
	assert.Equal(t, "ml", milk.MeasurementUnit)
}

func TestImportCSV_ReplacesExistingRows(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("flour,g\n"))
	require.NoError(t, err)

	count, err := svc.ImportCSV(context.Background(), strings.NewReader("salt,g\npepper,g\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	list, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, ing := range list {
		assert.NotEqual(t, "flour", ing.Name)
	}
}

func TestImportCSV_MalformedRowAbortsAfterWipe(t *testing.T) {
	svc, db := setupService(t)

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("flour,g\n"))
	require.NoError(t, err)

	_, err = svc.ImportCSV(context.Background(), strings.NewReader("salt,g\nonly-one-field\n"))
	assert.ErrorIs(t, err, ErrMalformedRow)

	// the wipe runs before parsing, so a bad file leaves the table empty
	var count int64
	require.NoError(t, db.Model(&domain.Ingredient{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestImportCSV_EmptyFieldRejected(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("flour,\n"))
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestList_NamePrefix(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("salt,g\nsalmon,g\nsugar,g\n"))
	require.NoError(t, err)

	list, err := svc.List(context.Background(), "sal")
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, ing := range list {
		assert.True(t, strings.HasPrefix(ing.Name, "sal"))
	}
}
