package subscription

import (
	"context"
	"errors"

	"foodgram/internal/domain"
	"foodgram/internal/modules/recipe"
	"foodgram/internal/modules/user"
	"foodgram/internal/repository"

	"gorm.io/gorm"
)

// Service реализует подписки на авторов рецептов.
type Service struct {
	follows repository.FollowRepository
	users   repository.UserRepository
	recipes repository.RecipeRepository
}

func NewService(follows repository.FollowRepository, users repository.UserRepository, recipes repository.RecipeRepository) *Service {
	return &Service{follows: follows, users: users, recipes: recipes}
}

// Subscribe подписывает пользователя на автора. Подписка на самого
// себя запрещена независимо от текущего состояния пары.
func (s *Service) Subscribe(ctx context.Context, userID, authorID int64) (*AuthorResponse, error) {
	if userID == authorID {
		return nil, ErrSelfFollow
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	if _, err := s.follows.Add(ctx, userID, authorID); err != nil {
		if errors.Is(err, repository.ErrDuplicatePair) {
			return nil, ErrAlreadyFollowing
		}
		return nil, err
	}

	resp, err := s.authorResponse(ctx, author, 0)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *Service) Unsubscribe(ctx context.Context, userID, authorID int64) error {
	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAuthorNotFound
		}
		return err
	}

	if err := s.follows.Remove(ctx, userID, authorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFollowing
		}
		return err
	}
	return nil
}

// Subscriptions возвращает авторов, на которых подписан пользователь,
// с их рецептами. recipesLimit обрезает список рецептов каждого автора
// (0 — без ограничения).
func (s *Service) Subscriptions(ctx context.Context, userID int64, page, perPage, recipesLimit int) (*ListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	authors, total, err := s.follows.ListAuthors(ctx, userID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	items := make([]AuthorResponse, len(authors))
	for i := range authors {
		items[i], err = s.authorResponse(ctx, &authors[i], recipesLimit)
		if err != nil {
			return nil, err
		}
	}

	totalPages := int(total) / perPage
	if int(total)%perPage > 0 {
		totalPages++
	}
	return &ListResponse{
		Authors:    items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) authorResponse(ctx context.Context, author *domain.User, recipesLimit int) (AuthorResponse, error) {
	recipes, err := s.recipes.ListByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return AuthorResponse{}, err
	}
	count, err := s.recipes.CountByAuthor(ctx, author.ID)
	if err != nil {
		return AuthorResponse{}, err
	}

	briefs := make([]recipe.Brief, len(recipes))
	for i := range recipes {
		briefs[i] = recipe.ToBrief(&recipes[i])
	}

	// В ленте подписок автор по определению подписан.
	return AuthorResponse{
		Response:     user.ToResponse(author, true),
		Recipes:      briefs,
		RecipesCount: count,
	}, nil
}
