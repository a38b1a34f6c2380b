package cart

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

// Handler обрабатывает HTTP запросы корзины покупок
type Handler struct {
	service *Service
	carts   repository.CartRepository
	recipes repository.RecipeRepository
}

func NewHandler(service *Service, carts repository.CartRepository, recipes repository.RecipeRepository) *Handler {
	return &Handler{service: service, carts: carts, recipes: recipes}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	// выгрузка живёт под /shopping_cart: статический путь рядом
	// с GET /recipes/:id роутер gin не принимает
	rg.GET("/shopping_cart/download", h.Download)
	rg.POST("/recipes/:id/shopping_cart", h.Add)
	rg.DELETE("/recipes/:id/shopping_cart", h.Remove)
}

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
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to add to shopping cart")
		return
	}

	if _, err := h.carts.Add(c.Request.Context(), userID, recipeID); err != nil {
		if errors.Is(err, repository.ErrDuplicatePair) {
			response.Error(c, http.StatusConflict, "CONFLICT", "recipe already in shopping cart")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to add to shopping cart")
		return
	}

	response.Success(c, http.StatusCreated, recipe.ToBrief(rec))
}

func (h *Handler) Remove(c *gin.Context) {
	userID := c.GetInt64("user_id")

	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid recipe id")
		return
	}

	if err := h.carts.Remove(c.Request.Context(), userID, recipeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe is not in shopping cart")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to remove from shopping cart")
		return
	}
	response.NoContent(c)
}

// Download отдаёт агрегированный список покупок текстовым файлом.
func (h *Handler) Download(c *gin.Context) {
	userID := c.GetInt64("user_id")

	items, err := h.service.ShoppingList(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to build shopping list")
		return
	}

	response.Attachment(c, "shopping_cart.txt", RenderText(items))
}
