package ingredient

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/pkg/response"
	"foodgram/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler — read-only каталог ингредиентов с поиском по началу имени.
type Handler struct {
	ingredients repository.IngredientRepository
}

func NewHandler(ingredients repository.IngredientRepository) *Handler {
	return &Handler{ingredients: ingredients}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	ingredients := rg.Group("/ingredients")
	{
		ingredients.GET("", h.List)
		ingredients.GET("/:id", h.Get)
	}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.ingredients.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list ingredients")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid ingredient id")
		return
	}

	item, err := h.ingredients.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "ingredient not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to get ingredient")
		return
	}
	response.Success(c, http.StatusOK, item)
}
