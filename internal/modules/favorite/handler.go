package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/modules/recipe"
	"foodgram/internal/pkg/response"
	"foodgram/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler обрабатывает HTTP запросы для избранного
type Handler struct {
	favorites repository.FavoriteRepository
	recipes   repository.RecipeRepository
}

// NewHandler создаёт новый handler
func NewHandler(favorites repository.FavoriteRepository, recipes repository.RecipeRepository) *Handler {
	return &Handler{favorites: favorites, recipes: recipes}
}

// RegisterRoutes регистрирует routes для избранного
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recipes/:id/favorite", h.Add)
	rg.DELETE("/recipes/:id/favorite", h.Remove)
}

// Add добавляет рецепт в избранное текущего пользователя.
// Повторное добавление — конфликт, а не тихий успех.
func (h *Handler) Add(c *gin.Context) {
	userID := c.GetInt64("user_id")

	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid recipe id")
		return
	}

	rec, err := h.recipes.GetByID(c.Request.Context(), recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to add favorite")
		return
	}

	if _, err := h.favorites.Add(c.Request.Context(), userID, recipeID); err != nil {
		if errors.Is(err, repository.ErrDuplicatePair) {
			response.Error(c, http.StatusConflict, "CONFLICT", "recipe already in favorites")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to add favorite")
		return
	}

	response.Success(c, http.StatusCreated, recipe.ToBrief(rec))
}

// Remove убирает рецепт из избранного. Отсутствующая связка —
// ошибка клиента, не сервера.
func (h *Handler) Remove(c *gin.Context) {
	userID := c.GetInt64("user_id")

	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid recipe id")
		return
	}

	if err := h.favorites.Remove(c.Request.Context(), userID, recipeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe is not in favorites")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to remove favorite")
		return
	}
	response.NoContent(c)
}
