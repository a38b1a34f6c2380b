package tag

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/pkg/response"
	"foodgram/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler — read-only каталог тегов (наполняется через seed/админку).
type Handler struct {
	tags repository.TagRepository
}

func NewHandler(tags repository.TagRepository) *Handler {
	return &Handler{tags: tags}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	tags := rg.Group("/tags")
	{
		tags.GET("", h.List)
		tags.GET("/:id", h.Get)
	}
}

func (h *Handler) List(c *gin.Context) {
	tags, err := h.tags.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list tags")
		return
	}
	response.Success(c, http.StatusOK, tags)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid tag id")
		return
	}

	t, err := h.tags.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "tag not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to get tag")
		return
	}
	response.Success(c, http.StatusOK, t)
}
