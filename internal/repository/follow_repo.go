package repository

import (
	"context"

	"foodgram/internal/domain"

	"gorm.io/gorm"
)

// FollowRepository определяет методы для работы с подписками на авторов
type FollowRepository interface {
	Add(ctx context.Context, userID, authorID int64) (*domain.Follow, error)
	Remove(ctx context.Context, userID, authorID int64) error
	Exists(ctx context.Context, userID, authorID int64) (bool, error)
	ListAuthors(ctx context.Context, userID int64, limit, offset int) ([]domain.User, int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Add(ctx context.Context, userID, authorID int64) (*domain.Follow, error) {
	exists, err := r.Exists(ctx, userID, authorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePair
	}

	follow := &domain.Follow{
		UserID:   userID,
		AuthorID: authorID,
	}
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		if IsDuplicateError(err) {
			return nil, ErrDuplicatePair
		}
		return nil, err
	}
	return follow, nil
}

func (r *followRepository) Remove(ctx context.Context, userID, authorID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&domain.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, userID, authorID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return count > 0, err
}

// ListAuthors возвращает авторов, на которых подписан пользователь.
// Выборка идёт напрямую через join по таблице подписок, без
// промежуточных списков имён.
func (r *followRepository) ListAuthors(ctx context.Context, userID int64, limit, offset int) ([]domain.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Follow{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var authors []domain.User
	query := r.db.WithContext(ctx).Model(&domain.User{}).
		Joins("JOIN follows ON follows.author_id = users.id").
		Where("follows.user_id = ?", userID).
		Order("follows.created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&authors).Error; err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}
