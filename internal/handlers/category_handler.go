package handlers

import (
	"net/http"

	"resto_backend/internal/middleware"
	"resto_backend/internal/models"
	"resto_backend/internal/services"
	"resto_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	*BaseHandler
	categoryService services.CategoryService
}

func NewCategoryHandler(base *BaseHandler, categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     base,
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	public := r.Group("/categories")
	{
		public.GET("", h.ListCategories)
		public.GET("/:categoryId", h.GetCategory)
	}

	admin := r.Group("/categories")
	admin.Use(authMW, middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.POST("", h.CreateCategory)
		admin.PUT("/:categoryId", h.UpdateCategory)
		admin.DELETE("/:categoryId", h.DeleteCategory)
	}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, ok := ParseParamID(c, "categoryId")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(categoryID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, ok := ParseParamID(c, "categoryId")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.categoryService.UpdateCategory(categoryID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, ok := ParseParamID(c, "categoryId")
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(categoryID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AckResponse{Message: "Category deleted"})
}
