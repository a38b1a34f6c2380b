package repository

import (
	"context"

	"foodgram/internal/domain"

	"gorm.io/gorm"
)

// FavoriteRepository определяет методы для работы с избранным
type FavoriteRepository interface {
	Add(ctx context.Context, userID, recipeID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, recipeID int64) error
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add добавляет рецепт в избранное пользователя.
// Повторное добавление отбрасывается с ErrDuplicatePair: уникальный
// индекс закрывает и гонку двух одновременных запросов.
func (r *favoriteRepository) Add(ctx context.Context, userID, recipeID int64) (*domain.Favorite, error) {
	exists, err := r.Exists(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePair
	}

	favorite := &domain.Favorite{
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		if IsDuplicateError(err) {
			return nil, ErrDuplicatePair
		}
		return nil, err
	}
	return favorite, nil
}

// Remove удаляет рецепт из избранного.
// Возвращает ErrNotFound, если связки не было.
func (r *favoriteRepository) Remove(ctx context.Context, userID, recipeID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&domain.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists проверяет, есть ли рецепт в избранном у пользователя.
// Используется и для viewer-зависимого поля is_favorited.
func (r *favoriteRepository) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}
