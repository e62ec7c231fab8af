package tags

import (
	"context"
	"regexp"

	"foodgram/internal/domain"
)

var colorRe = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// Repository is the tag store surface the service needs.
type Repository interface {
	List(ctx context.Context) ([]domain.Tag, error)
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)
	Create(ctx context.Context, tag *domain.Tag) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Tag, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Tag, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, tag *domain.Tag) error {
	if !colorRe.MatchString(tag.Color) {
		return ErrInvalidColor
	}

	taken, err := s.repo.SlugExists(ctx, tag.Slug)
	if err != nil {
		return err
	}
	if taken {
		return ErrSlugTaken
	}

	return s.repo.Create(ctx, tag)
}
