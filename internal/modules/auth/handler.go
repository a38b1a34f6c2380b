package auth

import (
	"errors"
	"net/http"

	"foodgram/internal/domain"
	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler обрабатывает регистрацию и вход
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists), errors.Is(err, ErrUsernameAlreadyExists):
			response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to register")
		}
		return
	}

	response.Success(c, http.StatusCreated, toUserPublic(user))
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to login")
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{
		AuthToken: token,
		User:      toUserPublic(user),
	})
}

func toUserPublic(u *domain.User) UserPublic {
	return UserPublic{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
