package user

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/modules/auth"
	"foodgram/internal/pkg/response"
	"foodgram/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler обрабатывает HTTP запросы профилей пользователей
type Handler struct {
	users       repository.UserRepository
	follows     repository.FollowRepository
	authService *auth.Service
}

func NewHandler(users repository.UserRepository, follows repository.FollowRepository, authService *auth.Service) *Handler {
	return &Handler{users: users, follows: follows, authService: authService}
}

// RegisterRoutes регистрирует открытые маршруты (anonymous-friendly)
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/:id", h.Get)
	}
}

// RegisterProtectedRoutes регистрирует маршруты, требующие токен.
// Живут под /profile: радикс-дерево gin не позволяет статический
// сегмент рядом с /users/:id.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	profile := rg.Group("/profile")
	{
		profile.GET("/me", h.Me)
		profile.POST("/set_password", h.SetPassword)
	}
}

func (h *Handler) List(c *gin.Context) {
	viewerID := c.GetInt64("user_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	users, total, err := h.users.List(c.Request.Context(), perPage, (page-1)*perPage)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list users")
		return
	}

	items := make([]Response, len(users))
	for i := range users {
		isSubscribed := false
		if viewerID != 0 && viewerID != users[i].ID {
			isSubscribed, err = h.follows.Exists(c.Request.Context(), viewerID, users[i].ID)
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list users")
				return
			}
		}
		items[i] = ToResponse(&users[i], isSubscribed)
	}

	totalPages := int(total) / perPage
	if int(total)%perPage > 0 {
		totalPages++
	}
	response.Success(c, http.StatusOK, ListResponse{
		Users:      items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid user id")
		return
	}

	u, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "user not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to get user")
		return
	}

	isSubscribed := false
	if viewerID := c.GetInt64("user_id"); viewerID != 0 && viewerID != u.ID {
		isSubscribed, err = h.follows.Exists(c.Request.Context(), viewerID, u.ID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to get user")
			return
		}
	}
	response.Success(c, http.StatusOK, ToResponse(u, isSubscribed))
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")

	u, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to get user")
		return
	}
	response.Success(c, http.StatusOK, ToResponse(u, false))
}

func (h *Handler) SetPassword(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req auth.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.authService.SetPassword(c.Request.Context(), userID, req); err != nil {
		if errors.Is(err, auth.ErrWrongPassword) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to set password")
		return
	}
	response.NoContent(c)
}
