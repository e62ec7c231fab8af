package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodgram/internal/domain"
)

type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserReader) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

type mockSubscriptionRepo struct {
	mock.Mock
}

func (m *mockSubscriptionRepo) Exists(ctx context.Context, subscriberID, authorID int64) (bool, error) {
	args := m.Called(ctx, subscriberID, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSubscriptionRepo) Add(ctx context.Context, subscriberID, authorID int64) error {
	args := m.Called(ctx, subscriberID, authorID)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) Remove(ctx context.Context, subscriberID, authorID int64) error {
	args := m.Called(ctx, subscriberID, authorID)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) ListAuthors(ctx context.Context, subscriberID int64, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, subscriberID, limit, offset)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

type mockRecipeReader struct {
	mock.Mock
}

func (m *mockRecipeReader) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, error) {
	args := m.Called(ctx, authorID, limit)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *mockRecipeReader) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

func TestSubscribe_Self(t *testing.T) {
	svc := NewService(new(mockUserReader), new(mockSubscriptionRepo), new(mockRecipeReader))

	_, err := svc.Subscribe(context.Background(), 3, 3, 3)

	assert.ErrorIs(t, err, ErrSelfSubscription)
}

func TestSubscribe_Twice(t *testing.T) {
	users := new(mockUserReader)
	subs := new(mockSubscriptionRepo)
	svc := NewService(users, subs, new(mockRecipeReader))

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Username: "anna"}, nil)
	subs.On("Exists", mock.Anything, int64(1), int64(2)).Return(true, nil)

	_, err := svc.Subscribe(context.Background(), 1, 2, 3)

	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestSubscribe_Success(t *testing.T) {
	users := new(mockUserReader)
	subs := new(mockSubscriptionRepo)
	recipes := new(mockRecipeReader)
	svc := NewService(users, subs, recipes)

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Username: "anna"}, nil)
	subs.On("Exists", mock.Anything, int64(1), int64(2)).Return(false, nil)
	subs.On("Add", mock.Anything, int64(1), int64(2)).Return(nil)
	recipes.On("ListByAuthor", mock.Anything, int64(2), 3).Return([]domain.Recipe{
		{ID: 10, Name: "Pancakes", CookingTime: 15},
	}, nil)
	recipes.On("CountByAuthor", mock.Anything, int64(2)).Return(int64(5), nil)

	sp, err := svc.Subscribe(context.Background(), 1, 2, 3)

	require.NoError(t, err)
	assert.True(t, sp.IsSubscribed)
	assert.Equal(t, int64(5), sp.RecipesCount)
	require.Len(t, sp.Recipes, 1)
	assert.Equal(t, "Pancakes", sp.Recipes[0].Name)
	subs.AssertExpectations(t)
}

func TestUnsubscribe_NotSubscribed(t *testing.T) {
	users := new(mockUserReader)
	subs := new(mockSubscriptionRepo)
	svc := NewService(users, subs, new(mockRecipeReader))

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	subs.On("Exists", mock.Anything, int64(1), int64(2)).Return(false, nil)

	err := svc.Unsubscribe(context.Background(), 1, 2)

	assert.ErrorIs(t, err, ErrNotSubscribed)
}

func TestUnsubscribe_Success(t *testing.T) {
	users := new(mockUserReader)
	subs := new(mockSubscriptionRepo)
	svc := NewService(users, subs, new(mockRecipeReader))

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	subs.On("Exists", mock.Anything, int64(1), int64(2)).Return(true, nil)
	subs.On("Remove", mock.Anything, int64(1), int64(2)).Return(nil)

	err := svc.Unsubscribe(context.Background(), 1, 2)

	require.NoError(t, err)
	subs.AssertExpectations(t)
}

func TestGetProfile_AnonymousNeverSubscribed(t *testing.T) {
	users := new(mockUserReader)
	subs := new(mockSubscriptionRepo)
	svc := NewService(users, subs, new(mockRecipeReader))

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Username: "anna"}, nil)

	p, err := svc.GetProfile(context.Background(), 0, 2)

	require.NoError(t, err)
	assert.False(t, p.IsSubscribed)
	subs.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

func TestListProfiles_SubscribedFlag(t *testing.T) {
	users := new(mockUserReader)
	subs := new(mockSubscriptionRepo)
	svc := NewService(users, subs, new(mockRecipeReader))

	users.On("List", mock.Anything, 6, 0).Return([]domain.User{
		{ID: 1, Username: "me"},
		{ID: 2, Username: "anna"},
	}, int64(2), nil)
	subs.On("Exists", mock.Anything, int64(1), int64(2)).Return(true, nil)

	profiles, total, err := svc.ListProfiles(context.Background(), 1, 6, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.False(t, profiles[0].IsSubscribed)
	assert.True(t, profiles[1].IsSubscribed)
}
