package users

import (
	"context"

	"foodgram/internal/domain"
)

// Service handles profile reads and the subscription toggle.
type Service struct {
	users         UserReader
	subscriptions SubscriptionRepositoryInterface
	recipes       RecipeReader
}

func NewService(users UserReader, subscriptions SubscriptionRepositoryInterface, recipes RecipeReader) *Service {
	return &Service{users: users, subscriptions: subscriptions, recipes: recipes}
}

// GetProfile returns one user as seen by the requester (0 for anonymous).
func (s *Service) GetProfile(ctx context.Context, requesterID, userID int64) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	isSubscribed := false
	if requesterID != 0 && requesterID != userID {
		isSubscribed, err = s.subscriptions.Exists(ctx, requesterID, userID)
		if err != nil {
			return nil, err
		}
	}

	p := toProfile(user, isSubscribed)
	return &p, nil
}

// ListProfiles returns a page of users with is_subscribed filled in for the
// requester.
func (s *Service) ListProfiles(ctx context.Context, requesterID int64, limit, offset int) ([]Profile, int64, error) {
	list, total, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	profiles := make([]Profile, 0, len(list))
	for i := range list {
		isSubscribed := false
		if requesterID != 0 && requesterID != list[i].ID {
			isSubscribed, err = s.subscriptions.Exists(ctx, requesterID, list[i].ID)
			if err != nil {
				return nil, 0, err
			}
		}
		profiles = append(profiles, toProfile(&list[i], isSubscribed))
	}
	return profiles, total, nil
}

// Subscribe adds a subscription and returns the author's profile with their
// recipes. Self-subscription and double-subscription are rejected.
func (s *Service) Subscribe(ctx context.Context, subscriberID, authorID int64, recipesLimit int) (*SubscriptionProfile, error) {
	if subscriberID == authorID {
		return nil, ErrSelfSubscription
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	exists, err := s.subscriptions.Exists(ctx, subscriberID, authorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadySubscribed
	}

	if err := s.subscriptions.Add(ctx, subscriberID, authorID); err != nil {
		return nil, err
	}

	return s.subscriptionProfile(ctx, author, recipesLimit)
}

// Unsubscribe removes the pair; removing an absent pair is an error, so a
// double-unsubscribe is observable.
func (s *Service) Unsubscribe(ctx context.Context, subscriberID, authorID int64) error {
	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		return err
	}

	exists, err := s.subscriptions.Exists(ctx, subscriberID, authorID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotSubscribed
	}

	return s.subscriptions.Remove(ctx, subscriberID, authorID)
}

// Subscriptions returns the authors the user follows, each with recipes and
// a recipe count.
func (s *Service) Subscriptions(ctx context.Context, subscriberID int64, limit, offset, recipesLimit int) ([]SubscriptionProfile, int64, error) {
	authors, total, err := s.subscriptions.ListAuthors(ctx, subscriberID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	out := make([]SubscriptionProfile, 0, len(authors))
	for i := range authors {
		sp, err := s.subscriptionProfile(ctx, &authors[i], recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *sp)
	}
	return out, total, nil
}

func (s *Service) subscriptionProfile(ctx context.Context, author *domain.User, recipesLimit int) (*SubscriptionProfile, error) {
	recipes, err := s.recipes.ListByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	count, err := s.recipes.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	return &SubscriptionProfile{
		Profile:      toProfile(author, true),
		Recipes:      toRecipeSummaries(recipes),
		RecipesCount: count,
	}, nil
}
