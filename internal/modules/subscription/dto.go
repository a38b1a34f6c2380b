package subscription

import (
	"foodgram/internal/modules/recipe"
	"foodgram/internal/modules/user"
)

// AuthorResponse — автор в ленте подписок: профиль, его рецепты
// (возможно, урезанные recipes_limit) и общее число рецептов.
type AuthorResponse struct {
	user.Response
	Recipes      []recipe.Brief `json:"recipes"`
	RecipesCount int64          `json:"recipes_count"`
}

// ListResponse — страница подписок
type ListResponse struct {
	Authors    []AuthorResponse `json:"authors"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	TotalPages int              `json:"total_pages"`
}
