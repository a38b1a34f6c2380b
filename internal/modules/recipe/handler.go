package recipe

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler обрабатывает HTTP запросы рецептов
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes регистрирует открытые маршруты (листинг и карточка
// доступны анониму, viewer-поля для него всегда false).
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	{
		recipes.GET("", h.List)
		recipes.GET("/:id", h.Get)
	}
}

// RegisterProtectedRoutes регистрирует маршруты, требующие токен.
// PUT намеренно отвечает 405: полная замена запрещена, только PATCH.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	{
		recipes.POST("", h.Create)
		recipes.PATCH("/:id", h.Update)
		recipes.PUT("/:id", h.MethodNotAllowed)
		recipes.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	viewerID := c.GetInt64("user_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	author, _ := strconv.ParseInt(c.Query("author"), 10, 64)

	filter := ListFilter{
		Author:           author,
		Tags:             c.QueryArray("tags"),
		IsFavorited:      c.Query("is_favorited") == "1" || c.Query("is_favorited") == "true",
		IsInShoppingCart: c.Query("is_in_shopping_cart") == "1" || c.Query("is_in_shopping_cart") == "true",
		Page:             page,
		Limit:            limit,
	}

	res, err := h.service.List(c.Request.Context(), filter, viewerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list recipes")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid recipe id")
		return
	}

	res, err := h.service.Get(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrRecipeNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to get recipe")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req WriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	res, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) Update(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid recipe id")
		return
	}

	var req WriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	res, err := h.service.Update(c.Request.Context(), id, userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid recipe id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		h.writeError(c, err)
		return
	}
	response.NoContent(c)
}

// MethodNotAllowed отвечает на PUT: замена рецепта целиком не
// поддерживается, клиент должен использовать PATCH.
func (h *Handler) MethodNotAllowed(c *gin.Context) {
	response.Error(c, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use PATCH for recipe updates")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", vErr.Message, gin.H{vErr.Field: vErr.Message})
	case errors.Is(err, ErrRecipeNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
	case errors.Is(err, ErrNotAuthor):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "recipe operation failed")
	}
}
