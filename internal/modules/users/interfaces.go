package users

import (
	"context"

	"foodgram/internal/domain"
)

// UserReader provides the profile lookups the service needs.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
}

// SubscriptionRepositoryInterface manages the (subscriber, author) association.
type SubscriptionRepositoryInterface interface {
	Exists(ctx context.Context, subscriberID, authorID int64) (bool, error)
	Add(ctx context.Context, subscriberID, authorID int64) error
	Remove(ctx context.Context, subscriberID, authorID int64) error
	ListAuthors(ctx context.Context, subscriberID int64, limit, offset int) ([]domain.User, int64, error)
}

// RecipeReader loads the author's recipes shown on subscription payloads.
type RecipeReader interface {
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}
