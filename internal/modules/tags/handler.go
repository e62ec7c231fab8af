package tags

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/domain"
	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/tags", h.ListTags)
	api.GET("/tags/:id", h.GetTag)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/tags", h.CreateTag)
}

func (h *Handler) ListTags(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list tags")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) GetTag(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid tag ID")
		return
	}

	tag, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Tag not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load tag")
		return
	}

	response.Success(c, http.StatusOK, tag)
}

type createTagRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Color string `json:"color" binding:"required"`
	Slug  string `json:"slug" binding:"required,max=200"`
}

func (h *Handler) CreateTag(c *gin.Context) {
	var req createTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	tag := &domain.Tag{Name: req.Name, Color: req.Color, Slug: req.Slug}
	if err := h.service.Create(c.Request.Context(), tag); err != nil {
		switch {
		case errors.Is(err, ErrInvalidColor):
			response.Error(c, http.StatusBadRequest, "INVALID_COLOR", err.Error())
		case errors.Is(err, ErrSlugTaken):
			response.Error(c, http.StatusBadRequest, "SLUG_EXISTS", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create tag")
		}
		return
	}

	response.Success(c, http.StatusCreated, tag)
}
