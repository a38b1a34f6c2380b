package repository

import (
	"context"

	"foodgram/internal/domain"

	"gorm.io/gorm"
)

// ShoppingListItem — строка агрегированного списка покупок:
// один ингредиент в одной единице измерения с просуммированным количеством
// по всем рецептам корзины.
type ShoppingListItem struct {
	Name            string `gorm:"column:name"`
	MeasurementUnit string `gorm:"column:measurement_unit"`
	TotalAmount     int64  `gorm:"column:total_amount"`
}

// CartRepository определяет методы для работы с корзиной покупок
type CartRepository interface {
	Add(ctx context.Context, userID, recipeID int64) (*domain.ShoppingCart, error)
	Remove(ctx context.Context, userID, recipeID int64) error
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)
	ShoppingList(ctx context.Context, userID int64) ([]ShoppingListItem, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Add(ctx context.Context, userID, recipeID int64) (*domain.ShoppingCart, error) {
	exists, err := r.Exists(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePair
	}

	item := &domain.ShoppingCart{
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		if IsDuplicateError(err) {
			return nil, ErrDuplicatePair
		}
		return nil, err
	}
	return item, nil
}

func (r *cartRepository) Remove(ctx context.Context, userID, recipeID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&domain.ShoppingCart{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *cartRepository) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ShoppingCart{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

// ShoppingList собирает количества ингредиентов по всем рецептам корзины.
// Группировка идёт по (имя, единица измерения): мука в граммах из двух
// разных рецептов складывается в одну строку. Сортировка по имени даёт
// воспроизводимый порядок.
func (r *cartRepository) ShoppingList(ctx context.Context, userID int64) ([]ShoppingListItem, error) {
	var items []ShoppingListItem
	err := r.db.WithContext(ctx).
		Table("recipe_ingredients").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total_amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name ASC").
		Scan(&items).Error
	return items, err
}
