package recipe

import (
	"foodgram/internal/domain"
	"foodgram/internal/modules/user"
)

// IngredientAmount — ссылка на ингредиент с количеством в запросе.
type IngredientAmount struct {
	ID     int64 `json:"id"`
	Amount int   `json:"amount"`
}

// WriteRequest — тело создания и частичного обновления рецепта.
// Наборы тегов и ингредиентов при обновлении заменяются целиком.
type WriteRequest struct {
	Name        string             `json:"name" binding:"required,max=200"`
	Text        string             `json:"text" binding:"required"`
	CookingTime int                `json:"cooking_time"`
	Image       string             `json:"image"`
	Ingredients []IngredientAmount `json:"ingredients"`
	Tags        []int64            `json:"tags"`
}

// IngredientInRecipe — строка ингредиента в карточке рецепта.
type IngredientInRecipe struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// Response — карточка рецепта глазами конкретного зрителя.
// is_favorited и is_in_shopping_cart пересчитываются на каждый запрос,
// на сущности они не кэшируются.
type Response struct {
	ID               int64                `json:"id"`
	Tags             []domain.Tag         `json:"tags"`
	Author           user.Response        `json:"author"`
	Ingredients      []IngredientInRecipe `json:"ingredients"`
	IsFavorited      bool                 `json:"is_favorited"`
	IsInShoppingCart bool                 `json:"is_in_shopping_cart"`
	Name             string               `json:"name"`
	Image            string               `json:"image"`
	Text             string               `json:"text"`
	CookingTime      int                  `json:"cooking_time"`
}

// Brief — краткая карточка для избранного, корзины и подписок.
type Brief struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func ToBrief(r *domain.Recipe) Brief {
	return Brief{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}

// ListFilter — параметры листинга из query string.
type ListFilter struct {
	Author           int64
	Tags             []string
	IsFavorited      bool
	IsInShoppingCart bool
	Page             int
	Limit            int
}

// ListResponse — страница рецептов
type ListResponse struct {
	Recipes    []Response `json:"recipes"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
	TotalPages int        `json:"total_pages"`
}
