package subscription

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler обрабатывает HTTP запросы подписок
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	// /subscriptions вынесен из /users: статический сегмент
	// конфликтовал бы с /users/:id в радикс-дереве gin.
	rg.GET("/subscriptions", h.List)

	users := rg.Group("/users")
	{
		users.POST("/:id/subscribe", h.Subscribe)
		users.DELETE("/:id/subscribe", h.Unsubscribe)
	}
}

func (h *Handler) Subscribe(c *gin.Context) {
	userID := c.GetInt64("user_id")

	authorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid user id")
		return
	}

	res, err := h.service.Subscribe(c.Request.Context(), userID, authorID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfFollow):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrAuthorNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrAlreadyFollowing):
			response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to subscribe")
		}
		return
	}
	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	userID := c.GetInt64("user_id")

	authorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid user id")
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), userID, authorID); err != nil {
		switch {
		case errors.Is(err, ErrAuthorNotFound), errors.Is(err, ErrNotFollowing):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to unsubscribe")
		}
		return
	}
	response.NoContent(c)
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	recipesLimit, _ := strconv.Atoi(c.Query("recipes_limit"))

	res, err := h.service.Subscriptions(c.Request.Context(), userID, page, perPage, recipesLimit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list subscriptions")
		return
	}
	response.Success(c, http.StatusOK, res)
}
