package users

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service  *Service
	pageSize int
}

func NewHandler(service *Service, pageSize int) *Handler {
	return &Handler{service: service, pageSize: pageSize}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/users", h.ListUsers)
	api.GET("/users/:id", h.GetUser)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/users/me", h.Me)
	protected.GET("/users/subscriptions", h.Subscriptions)
	protected.POST("/users/:id/subscribe", h.Subscribe)
	protected.DELETE("/users/:id/subscribe", h.Unsubscribe)
}

func (h *Handler) ListUsers(c *gin.Context) {
	limit, offset, page := h.pagination(c)

	profiles, total, err := h.service.ListProfiles(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list users")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users":      profiles,
		"pagination": paginationMeta(page, limit, total),
	})
}

func (h *Handler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), c.GetInt64("user_id"), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "PROFILE_FAILED", "Failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, profile)
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")

	profile, err := h.service.GetProfile(c.Request.Context(), userID, userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "PROFILE_FAILED", "Failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, profile)
}

func (h *Handler) Subscribe(c *gin.Context) {
	authorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	recipesLimit, _ := strconv.Atoi(c.DefaultQuery("recipes_limit", "0"))

	sp, err := h.service.Subscribe(c.Request.Context(), c.GetInt64("user_id"), authorID, recipesLimit)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfSubscription):
			response.Error(c, http.StatusBadRequest, "SELF_SUBSCRIPTION", "Cannot subscribe to yourself")
		case errors.Is(err, ErrAlreadySubscribed):
			response.Error(c, http.StatusBadRequest, "ALREADY_EXISTS", "Subscription already exists")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "SUBSCRIBE_FAILED", "Failed to subscribe")
		}
		return
	}

	response.Success(c, http.StatusCreated, sp)
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	authorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	err = h.service.Unsubscribe(c.Request.Context(), c.GetInt64("user_id"), authorID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotSubscribed):
			response.Error(c, http.StatusBadRequest, "NOT_FOUND_IN_LIST", "Subscription does not exist")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UNSUBSCRIBE_FAILED", "Failed to unsubscribe")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Subscriptions(c *gin.Context) {
	limit, offset, page := h.pagination(c)
	recipesLimit, _ := strconv.Atoi(c.DefaultQuery("recipes_limit", "0"))

	subs, total, err := h.service.Subscriptions(c.Request.Context(), c.GetInt64("user_id"), limit, offset, recipesLimit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SUBSCRIPTIONS_FAILED", "Failed to list subscriptions")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"subscriptions": subs,
		"pagination":    paginationMeta(page, limit, total),
	})
}

func (h *Handler) pagination(c *gin.Context) (limit, offset, page int) {
	limit = h.pageSize
	if raw := c.Query("limit"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil && val > 0 && val <= 100 {
			limit = val
		}
	}

	page = 1
	if raw := c.Query("page"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil && val > 0 {
			page = val
		}
	}
	return limit, (page - 1) * limit, page
}

func paginationMeta(page, limit int, total int64) gin.H {
	totalPages := (int(total) + limit - 1) / limit
	return gin.H{
		"page":        page,
		"limit":       limit,
		"total":       total,
		"total_pages": totalPages,
	}
}
