package repository

import (
	"context"

	"foodgram/internal/domain"

	"gorm.io/gorm"
)

type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// List returns ingredients, optionally narrowed to a name prefix.
// Reference data is unpaginated.
func (r *IngredientRepository) List(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if namePrefix != "" {
		q = q.Where("name LIKE ?", namePrefix+"%")
	}
	var ingredients []domain.Ingredient
	err := q.Find(&ingredients).Error
	return ingredients, err
}

func (r *IngredientRepository) GetByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	if err := r.db.WithContext(ctx).First(&ing, id).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *IngredientRepository) Create(ctx context.Context, ing *domain.Ingredient) error {
	return r.db.WithContext(ctx).Create(ing).Error
}

// CountByIDs reports how many of the given ids exist, so callers can detect
// references to missing ingredients without a per-id query.
func (r *IngredientRepository) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Ingredient{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}

// Wipe deletes every ingredient row. The CSV importer wipes before loading,
// so an aborted load leaves the table empty rather than half-replaced.
func (r *IngredientRepository) Wipe(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.Ingredient{}).Error
}

func (r *IngredientRepository) BulkInsert(ctx context.Context, rows []domain.Ingredient) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
