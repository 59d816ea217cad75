package handlers

import (
	"net/http"

	"resto_backend/internal/middleware"
	"resto_backend/internal/models"
	"resto_backend/internal/services"
	"resto_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DishHandler struct {
	*BaseHandler
	dishService services.DishService
}

func NewDishHandler(base *BaseHandler, dishService services.DishService) *DishHandler {
	return &DishHandler{
		BaseHandler: base,
		dishService: dishService,
	}
}

func (h *DishHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	// Menu lives under its restaurant; single dishes are addressable flat.
	nested := r.Group("/restaurants/:restaurantId/dishes")
	{
		nested.GET("", h.ListDishes)
	}

	nestedAdmin := r.Group("/restaurants/:restaurantId/dishes")
	nestedAdmin.Use(authMW, middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		nestedAdmin.POST("", h.CreateDish)
	}

	flat := r.Group("/dishes")
	{
		flat.GET("/:dishId", h.GetDish)
	}

	flatAdmin := r.Group("/dishes")
	flatAdmin.Use(authMW, middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		flatAdmin.PUT("/:dishId", h.UpdateDish)
		flatAdmin.DELETE("/:dishId", h.DeleteDish)
	}
}

func (h *DishHandler) ListDishes(c *gin.Context) {
	restaurantID, ok := ParseParamID(c, "restaurantId")
	if !ok {
		return
	}

	dishes, err := h.dishService.ListDishes(restaurantID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

func (h *DishHandler) GetDish(c *gin.Context) {
	dishID, ok := ParseParamID(c, "dishId")
	if !ok {
		return
	}

	dish, err := h.dishService.GetDish(dishID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (h *DishHandler) CreateDish(c *gin.Context) {
	restaurantID, ok := ParseParamID(c, "restaurantId")
	if !ok {
		return
	}

	var req dto.CreateDishRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	dish, err := h.dishService.CreateDish(restaurantID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dish)
}

func (h *DishHandler) UpdateDish(c *gin.Context) {
	dishID, ok := ParseParamID(c, "dishId")
	if !ok {
		return
	}

	var req dto.UpdateDishRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	dish, err := h.dishService.UpdateDish(dishID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (h *DishHandler) DeleteDish(c *gin.Context) {
	dishID, ok := ParseParamID(c, "dishId")
	if !ok {
		return
	}

	if err := h.dishService.DeleteDish(dishID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AckResponse{Message: "Dish deleted"})
}
