package repository

import (
	"context"

	"foodgram/internal/domain"

	"gorm.io/gorm"
)

// IngredientRepository — справочник ингредиентов с поиском по префиксу имени.
type IngredientRepository interface {
	Search(ctx context.Context, prefix string) ([]domain.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*domain.Ingredient, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error)
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

// Search ищет ингредиенты по началу имени (как ^name в оригинальном API).
// Пустой префикс возвращает весь справочник.
func (r *ingredientRepository) Search(ctx context.Context, prefix string) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient
	query := r.db.WithContext(ctx).Order("name ASC")
	if prefix != "" {
		query = query.Where("name LIKE ?", prefix+"%")
	}
	err := query.Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) GetByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	var ingredient domain.Ingredient
	if err := r.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}
