package handlers

import (
	"net/http"

	"resto_backend/internal/middleware"
	"resto_backend/internal/models"
	"resto_backend/internal/services"
	"resto_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	*BaseHandler
	restaurantService services.RestaurantService
}

func NewRestaurantHandler(base *BaseHandler, restaurantService services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		BaseHandler:       base,
		restaurantService: restaurantService,
	}
}

func (h *RestaurantHandler) RegisterRoutes(r *gin.RouterGroup, authMW, optionalAuthMW gin.HandlerFunc) {
	// Public catalogue. Optional auth lets submitters and admins see their
	// pending entries on the detail route.
	public := r.Group("/restaurants")
	public.Use(optionalAuthMW)
	{
		public.GET("", h.ListRestaurants)
		public.GET("/:restaurantId", h.GetRestaurant)
	}

	protected := r.Group("/restaurants")
	protected.Use(authMW)
	{
		protected.POST("", h.CreateRestaurant)
	}

	adminOnly := r.Group("/restaurants")
	adminOnly.Use(authMW, middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		adminOnly.PUT("/:restaurantId", h.UpdateRestaurant)
		adminOnly.DELETE("/:restaurantId", h.DeleteRestaurant)
	}

	moderation := r.Group("/admin/restaurants")
	moderation.Use(authMW, middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		moderation.GET("/pending", h.ListPendingRestaurants)
		moderation.PATCH("/:restaurantId/approve", h.ApproveRestaurant)
		moderation.PATCH("/:restaurantId/reject", h.RejectRestaurant)
	}
}

func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	var filter dto.RestaurantFilterRequest
	if !h.BindAndValidateQuery(c, &filter) {
		return
	}

	restaurants, err := h.restaurantService.ListRestaurants(&filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	restaurantID, ok := ParseParamID(c, "restaurantId")
	if !ok {
		return
	}

	// Anonymous viewers carry an empty id and the ordinary role.
	viewerID := middleware.GetUserID(c)
	restaurant, err := h.restaurantService.GetRestaurant(restaurantID, viewerID, h.CallerRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRestaurantRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	restaurant, err := h.restaurantService.CreateRestaurant(userID, h.CallerRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	restaurantID, ok := ParseParamID(c, "restaurantId")
	if !ok {
		return
	}

	var req dto.UpdateRestaurantRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	restaurant, err := h.restaurantService.UpdateRestaurant(restaurantID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) DeleteRestaurant(c *gin.Context) {
	restaurantID, ok := ParseParamID(c, "restaurantId")
	if !ok {
		return
	}

	if err := h.restaurantService.DeleteRestaurant(restaurantID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AckResponse{Message: "Restaurant deleted"})
}

func (h *RestaurantHandler) ListPendingRestaurants(c *gin.Context) {
	restaurants, err := h.restaurantService.ListPendingRestaurants()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

func (h *RestaurantHandler) ApproveRestaurant(c *gin.Context) {
	h.setStatus(c, models.RestaurantStatusApproved, "Restaurant approved")
}

func (h *RestaurantHandler) RejectRestaurant(c *gin.Context) {
	h.setStatus(c, models.RestaurantStatusRejected, "Restaurant rejected")
}

func (h *RestaurantHandler) setStatus(c *gin.Context, status models.RestaurantStatus, message string) {
	restaurantID, ok := ParseParamID(c, "restaurantId")
	if !ok {
		return
	}

	if err := h.restaurantService.SetRestaurantStatus(restaurantID, status); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AckResponse{Message: message})
}
