package ingredients

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

// Reference data is readable by everyone and unpaginated.
func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/ingredients", h.ListIngredients)
	api.GET("/ingredients/:id", h.GetIngredient)
}

// RegisterAdminRoutes mounts the admin-managed mutation.
func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/ingredients", h.CreateIngredient)
}

func (h *Handler) ListIngredients(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list ingredients")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) GetIngredient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ingredient ID")
		return
	}

	ing, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Ingredient not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load ingredient")
		return
	}

	response.Success(c, http.StatusOK, ing)
}

type createIngredientRequest struct {
	Name            string `json:"name" binding:"required,max=255"`
	MeasurementUnit string `json:"measurement_unit" binding:"required,max=64"`
}

func (h *Handler) CreateIngredient(c *gin.Context) {
	var req createIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ing := &domain.Ingredient{Name: req.Name, MeasurementUnit: req.MeasurementUnit}
	if err := h.service.Create(c.Request.Context(), ing); err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create ingredient")
		return
	}

	response.Success(c, http.StatusCreated, ing)
}
