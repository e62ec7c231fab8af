package ingredients

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"foodgram/internal/domain"
)

// Repository is the ingredient store surface the service needs.
type Repository interface {
	List(ctx context.Context, namePrefix string) ([]domain.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*domain.Ingredient, error)
	Create(ctx context.Context, ing *domain.Ingredient) error
	Wipe(ctx context.Context) error
	BulkInsert(ctx context.Context, rows []domain.Ingredient) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	return s.repo.List(ctx, namePrefix)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Ingredient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, ing *domain.Ingredient) error {
	return s.repo.Create(ctx, ing)
}

// ImportCSV wipes the ingredients table and reloads it from a two-column
// CSV (name, measurement_unit). The wipe happens first, so a malformed row
// aborts the load and leaves the table empty until a fixed file is loaded.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	if err := s.repo.Wipe(ctx); err != nil {
		return 0, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	var rows []domain.Ingredient
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return 0, fmt.Errorf("line %d: %w: %v", line, ErrMalformedRow, err)
		}

		name := strings.TrimSpace(record[0])
		unit := strings.TrimSpace(record[1])
		if name == "" || unit == "" {
			return 0, fmt.Errorf("line %d: %w: empty field", line, ErrMalformedRow)
		}

		rows = append(rows, domain.Ingredient{Name: name, MeasurementUnit: unit})
	}

	if err := s.repo.BulkInsert(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}
