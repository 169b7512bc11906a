package categories

import (
	"net/http"
	"strings"

	users_middleware "lessonbook/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryController struct {
	categoryService *CategoryService
}

func (c *CategoryController) RegisterRoutes(router *gin.RouterGroup) {
	categoryRoutes := router.Group("/categories")

	categoryRoutes.GET("", c.GetCategories)
	categoryRoutes.POST("", c.CreateCategory)
	categoryRoutes.DELETE("/:categoryId", c.DeleteCategory)
}

// GetCategories
// @Summary List categories
// @Description Get all lesson categories ordered by name
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListCategoriesResponseDTO
// @Failure 401 {object} map[string]string
// @Router /categories [get]
func (c *CategoryController) GetCategories(ctx *gin.Context) {
	categoriesList, err := c.categoryService.GetCategories()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}

	ctx.JSON(http.StatusOK, ListCategoriesResponseDTO{Categories: categoriesList})
}

// CreateCategory
// @Summary Create a category
// @Description Create a category, or return the existing one when the name matches ignoring case
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCategoryRequestDTO true "Category data"
// @Success 200 {object} Category
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /categories [post]
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var request CreateCategoryRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	category, err := c.categoryService.GetOrCreateCategory(request.Name, request.Description)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// DeleteCategory
// @Summary Delete a category
// @Description Delete a category (administrators only); lessons keep their rows and become uncategorized
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param categoryId path string true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /categories/{categoryId} [delete]
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	categoryID, err := uuid.Parse(ctx.Param("categoryId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	if err := c.categoryService.DeleteCategory(categoryID, user); err != nil {
		if strings.HasPrefix(err.Error(), "only administrators") {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if strings.HasSuffix(err.Error(), "not found") {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
