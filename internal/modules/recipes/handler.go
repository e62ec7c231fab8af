package recipes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"foodgram/internal/pkg/response"
	"foodgram/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service      *Service
	pageSize     int
	cartFilename string
}

func NewHandler(service *Service, pageSize int, cartFilename string) *Handler {
	return &Handler{service: service, pageSize: pageSize, cartFilename: cartFilename}
}

// RegisterPublicRoutes mounts the read endpoints; the optional-auth
// middleware upstream fills in the requester when a token is present.
func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/recipes", h.ListRecipes)
	api.GET("/recipes/:id", h.GetRecipe)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/recipes", h.CreateRecipe)
	protected.PATCH("/recipes/:id", h.UpdateRecipe)
	protected.DELETE("/recipes/:id", h.DeleteRecipe)

	protected.POST("/recipes/:id/favorite", h.listAdder(repository.ListFavorite))
	protected.DELETE("/recipes/:id/favorite", h.listRemover(repository.ListFavorite))
	protected.POST("/recipes/:id/shopping_cart", h.listAdder(repository.ListCart))
	protected.DELETE("/recipes/:id/shopping_cart", h.listRemover(repository.ListCart))

	protected.GET("/recipes/download_shopping_cart", h.DownloadShoppingCart)
}

func (h *Handler) ListRecipes(c *gin.Context) {
	f := repository.RecipeFilters{}

	if author := c.Query("author"); author != "" {
		if val, err := strconv.ParseInt(author, 10, 64); err == nil {
			f.AuthorID = val
		}
	}
	f.TagSlugs = c.QueryArray("tags")

	requesterID := c.GetInt64("user_id")
	if c.Query("is_favorited") == "1" || c.Query("is_favorited") == "true" {
		f.FavoritedBy = requesterID
	}
	if c.Query("is_in_shopping_cart") == "1" || c.Query("is_in_shopping_cart") == "true" {
		f.InCartOf = requesterID
	}

	f.Limit = h.pageSize
	if raw := c.Query("limit"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil && val > 0 && val <= 100 {
			f.Limit = val
		}
	}
	page := 1
	if raw := c.Query("page"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil && val > 0 {
			page = val
		}
	}
	f.Offset = (page - 1) * f.Limit

	views, total, err := h.service.List(c.Request.Context(), requesterID, f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list recipes")
		return
	}

	totalPages := (int(total) + f.Limit - 1) / f.Limit
	response.Success(c, http.StatusOK, gin.H{
		"recipes": views,
		"pagination": gin.H{
			"page":        page,
			"limit":       f.Limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

func (h *Handler) GetRecipe(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return
	}

	view, err := h.service.Get(c.Request.Context(), c.GetInt64("user_id"), recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Recipe not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "RECIPE_FAILED", "Failed to load recipe")
		return
	}

	response.Success(c, http.StatusOK, view)
}

func (h *Handler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, view)
}

func (h *Handler) UpdateRecipe(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), c.GetBool("is_admin"), recipeID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}

func (h *Handler) DeleteRecipe(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return
	}

	err = h.service.Delete(c.Request.Context(), c.GetInt64("user_id"), c.GetBool("is_admin"), recipeID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) listAdder(kind repository.ListKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
			return
		}

		summary, err := h.service.AddToList(c.Request.Context(), kind, c.GetInt64("user_id"), recipeID)
		if err != nil {
			switch {
			case errors.Is(err, ErrAlreadyInList):
				response.Error(c, http.StatusBadRequest, "ALREADY_EXISTS", "Recipe is already in the list")
			case errors.Is(err, gorm.ErrRecordNotFound):
				response.Error(c, http.StatusNotFound, "NOT_FOUND", "Recipe not found")
			default:
				response.Error(c, http.StatusInternalServerError, "TOGGLE_FAILED", "Failed to add recipe to the list")
			}
			return
		}

		response.Success(c, http.StatusCreated, summary)
	}
}

func (h *Handler) listRemover(kind repository.ListKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
			return
		}

		err = h.service.RemoveFromList(c.Request.Context(), kind, c.GetInt64("user_id"), recipeID)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotInList):
				response.Error(c, http.StatusBadRequest, "NOT_FOUND_IN_LIST", "Recipe is not in the list")
			case errors.Is(err, gorm.ErrRecordNotFound):
				response.Error(c, http.StatusNotFound, "NOT_FOUND", "Recipe not found")
			default:
				response.Error(c, http.StatusInternalServerError, "TOGGLE_FAILED", "Failed to remove recipe from the list")
			}
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func (h *Handler) DownloadShoppingCart(c *gin.Context) {
	body, err := h.service.ShoppingList(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DOWNLOAD_FAILED", "Failed to build shopping list")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", h.cartFilename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDuplicateIngredient):
		response.Error(c, http.StatusBadRequest, "DUPLICATE_INGREDIENT", err.Error())
	case errors.Is(err, ErrAmountOutOfRange):
		response.Error(c, http.StatusBadRequest, "AMOUNT_OUT_OF_RANGE", err.Error())
	case errors.Is(err, ErrCookingTimeOutOfRange):
		response.Error(c, http.StatusBadRequest, "COOKING_TIME_OUT_OF_RANGE", err.Error())
	case errors.Is(err, ErrDuplicateRecipeName):
		response.Error(c, http.StatusBadRequest, "DUPLICATE_RECIPE_NAME", err.Error())
	case errors.Is(err, ErrNoIngredients), errors.Is(err, ErrNoTags), errors.Is(err, ErrInvalidImage):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrIngredientNotFound), errors.Is(err, ErrTagNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrPermissionDenied):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Recipe not found")
	default:
		response.Error(c, http.StatusInternalServerError, "RECIPE_WRITE_FAILED", "Failed to write recipe")
	}
}
