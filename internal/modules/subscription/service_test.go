package subscription

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"foodgram/internal/domain"
	"foodgram/internal/repository"
)

type mockFollowRepo struct {
	mock.Mock
}

func (m *mockFollowRepo) Add(ctx context.Context, userID, authorID int64) (*domain.Follow, error) {
	args := m.Called(ctx, userID, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Follow), args.Error(1)
}

func (m *mockFollowRepo) Remove(ctx context.Context, userID, authorID int64) error {
	args := m.Called(ctx, userID, authorID)
	return args.Error(0)
}

func (m *mockFollowRepo) Exists(ctx context.Context, userID, authorID int64) (bool, error) {
	args := m.Called(ctx, userID, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFollowRepo) ListAuthors(ctx context.Context, userID int64, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *mockUserRepo) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

type mockRecipeRepo struct {
	mock.Mock
}

func (m *mockRecipeRepo) Create(ctx context.Context, recipe *domain.Recipe, ingredients []domain.RecipeIngredient, tagIDs []int64) error {
	args := m.Called(ctx, recipe, ingredients, tagIDs)
	return args.Error(0)
}

func (m *mockRecipeRepo) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *mockRecipeRepo) Update(ctx context.Context, recipe *domain.Recipe, ingredients []domain.RecipeIngredient, tagIDs []int64) error {
	args := m.Called(ctx, recipe, ingredients, tagIDs)
	return args.Error(0)
}

func (m *mockRecipeRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRecipeRepo) List(ctx context.Context, filter repository.RecipeFilter) ([]domain.Recipe, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *mockRecipeRepo) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, error) {
	args := m.Called(ctx, authorID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *mockRecipeRepo) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService() (*Service, *mockFollowRepo, *mockUserRepo, *mockRecipeRepo) {
	follows := new(mockFollowRepo)
	users := new(mockUserRepo)
	recipes := new(mockRecipeRepo)
	return NewService(follows, users, recipes), follows, users, recipes
}

func TestService_Subscribe_Self(t *testing.T) {
	svc, follows, users, _ := newTestService()

	_, err := svc.Subscribe(context.Background(), 7, 7)

	// самоподписка запрещена до любых обращений к БД
	assert.ErrorIs(t, err, ErrSelfFollow)
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	follows.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Subscribe_AuthorNotFound(t *testing.T) {
	svc, follows, users, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Subscribe(context.Background(), 7, 404)

	assert.ErrorIs(t, err, ErrAuthorNotFound)
	follows.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Subscribe_AlreadyFollowing(t *testing.T) {
	svc, follows, users, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	follows.On("Add", mock.Anything, int64(7), int64(2)).Return(nil, repository.ErrDuplicatePair)

	_, err := svc.Subscribe(context.Background(), 7, 2)

	assert.ErrorIs(t, err, ErrAlreadyFollowing)
}

func TestService_Subscribe_Success(t *testing.T) {
	svc, follows, users, recipes := newTestService()

	author := &domain.User{ID: 2, Username: "chef", FirstName: "Борис"}
	users.On("GetByID", mock.Anything, int64(2)).Return(author, nil)
	follows.On("Add", mock.Anything, int64(7), int64(2)).
		Return(&domain.Follow{UserID: 7, AuthorID: 2}, nil)
	recipes.On("ListByAuthor", mock.Anything, int64(2), 0).Return([]domain.Recipe{
		{ID: 11, Name: "Суп с говядиной", CookingTime: 90},
	}, nil)
	recipes.On("CountByAuthor", mock.Anything, int64(2)).Return(int64(5), nil)

	resp, err := svc.Subscribe(context.Background(), 7, 2)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)
	assert.True(t, resp.IsSubscribed)
	assert.Len(t, resp.Recipes, 1)
	assert.Equal(t, int64(5), resp.RecipesCount)
}

func TestService_Unsubscribe_NotFollowing(t *testing.T) {
	svc, follows, users, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	follows.On("Remove", mock.Anything, int64(7), int64(2)).Return(repository.ErrNotFound)

	err := svc.Unsubscribe(context.Background(), 7, 2)

	assert.ErrorIs(t, err, ErrNotFollowing)
}

func TestService_Subscriptions_RecipesLimit(t *testing.T) {
	svc, follows, _, recipes := newTestService()

	follows.On("ListAuthors", mock.Anything, int64(7), 10, 0).
		Return([]domain.User{{ID: 2, Username: "chef"}}, int64(1), nil)
	recipes.On("ListByAuthor", mock.Anything, int64(2), 3).Return([]domain.Recipe{
		{ID: 11}, {ID: 12}, {ID: 13},
	}, nil)
	recipes.On("CountByAuthor", mock.Anything, int64(2)).Return(int64(8), nil)

	resp, err := svc.Subscriptions(context.Background(), 7, 1, 10, 3)

	assert.NoError(t, err)
	assert.Len(t, resp.Authors, 1)
	assert.Len(t, resp.Authors[0].Recipes, 3)
	assert.Equal(t, int64(8), resp.Authors[0].RecipesCount)
	assert.True(t, resp.Authors[0].IsSubscribed)
	recipes.AssertExpectations(t)
}
