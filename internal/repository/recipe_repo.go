package repository

import (
	"context"

	"foodgram/internal/domain"

	"gorm.io/gorm"
)

// RecipeFilter — параметры выборки рецептов.
// TagSlugs работает по принципу OR: достаточно совпадения одного тега.
// FavoritedBy и InCartOf равны 0 для анонимного просмотра и тогда
// не влияют на выборку.
type RecipeFilter struct {
	AuthorID    int64
	TagSlugs    []string
	FavoritedBy int64
	InCartOf    int64
	Limit       int
	Offset      int
}

// RecipeRepository определяет методы для работы с рецептами
type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe, ingredients []domain.RecipeIngredient, tagIDs []int64) error
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	Update(ctx context.Context, recipe *domain.Recipe, ingredients []domain.RecipeIngredient, tagIDs []int64) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter RecipeFilter) ([]domain.Recipe, int64, error)
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create сохраняет рецепт вместе с тегами и количествами ингредиентов
// в одной транзакции: либо записывается всё, либо ничего.
func (r *recipeRepository) Create(ctx context.Context, recipe *domain.Recipe, ingredients []domain.RecipeIngredient, tagIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Ingredients", "Author").Create(recipe).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].RecipeID = recipe.ID
		}
		if err := tx.Create(&ingredients).Error; err != nil {
			return err
		}
		tags := make([]domain.Tag, len(tagIDs))
		for i, id := range tagIDs {
			tags[i] = domain.Tag{ID: id}
		}
		return tx.Model(recipe).Association("Tags").Append(tags)
	})
}

func (r *recipeRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Update перезаписывает поля рецепта и заменяет наборы тегов и
// ингредиентов целиком (clear-then-insert, без слияния со старыми).
func (r *recipeRepository) Update(ctx context.Context, recipe *domain.Recipe, ingredients []domain.RecipeIngredient, tagIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(recipe).
			Select("name", "image", "text", "cooking_time").
			Updates(recipe).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&domain.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].RecipeID = recipe.ID
		}
		if err := tx.Create(&ingredients).Error; err != nil {
			return err
		}

		tags := make([]domain.Tag, len(tagIDs))
		for i, id := range tagIDs {
			tags[i] = domain.Tag{ID: id}
		}
		return tx.Model(recipe).Association("Tags").Replace(tags)
	})
}

func (r *recipeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&domain.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&domain.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&domain.ShoppingCart{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Recipe{}, id).Error
	})
}

func (r *recipeRepository) List(ctx context.Context, filter RecipeFilter) ([]domain.Recipe, int64, error) {
	base := r.db.WithContext(ctx).Model(&domain.Recipe{})

	if filter.AuthorID != 0 {
		base = base.Where("recipes.author_id = ?", filter.AuthorID)
	}
	// Джойн по тегам размножает строки (рецепт с двумя подходящими
	// тегами попадает в выборку дважды), поэтому рецепты схлопываются
	// через GROUP BY recipes.id, а не через DISTINCT: сортировка по
	// created_at не входит в select-лист, и postgres такой DISTINCT
	// не принимает. Группировка по первичному ключу оставляет
	// created_at доступным для ORDER BY в обоих драйверах.
	dedup := len(filter.TagSlugs) > 0
	if dedup {
		base = base.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs)
	}
	if filter.FavoritedBy != 0 {
		base = base.Joins("JOIN favorites ON favorites.recipe_id = recipes.id AND favorites.user_id = ?", filter.FavoritedBy)
	}
	if filter.InCartOf != 0 {
		base = base.Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipes.id AND shopping_carts.user_id = ?", filter.InCartOf)
	}

	countQuery := base.Session(&gorm.Session{})
	if dedup {
		countQuery = countQuery.Distinct("recipes.id")
	}
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []int64
	idQuery := base.Session(&gorm.Session{}).
		Order("recipes.created_at DESC, recipes.id DESC")
	if dedup {
		idQuery = idQuery.Group("recipes.id")
	}
	if filter.Limit > 0 {
		idQuery = idQuery.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := idQuery.Pluck("recipes.id", &ids).Error; err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return []domain.Recipe{}, total, nil
	}

	var recipes []domain.Recipe
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Where("id IN ?", ids).
		Order("created_at DESC, id DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

func (r *recipeRepository) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	query := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}
