package handlers

import (
	"net/http"

	"resto_backend/internal/services"
	"resto_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DishReviewHandler struct {
	*BaseHandler
	dishReviewService services.DishReviewService
}

func NewDishReviewHandler(base *BaseHandler, dishReviewService services.DishReviewService) *DishReviewHandler {
	return &DishReviewHandler{
		BaseHandler:       base,
		dishReviewService: dishReviewService,
	}
}

func (h *DishReviewHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	public := r.Group("/dishes/:dishId/reviews")
	{
		public.GET("", h.ListReviews)
	}

	nested := r.Group("/dishes/:dishId/reviews")
	nested.Use(authMW)
	{
		nested.POST("", h.CreateReview)
	}

	flat := r.Group("/dish-reviews")
	flat.Use(authMW)
	{
		flat.PUT("/:reviewId", h.UpdateReview)
		flat.DELETE("/:reviewId", h.DeleteReview)
	}
}

func (h *DishReviewHandler) ListReviews(c *gin.Context) {
	dishID, ok := ParseParamID(c, "dishId")
	if !ok {
		return
	}

	reviews, err := h.dishReviewService.ListReviews(dishID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *DishReviewHandler) CreateReview(c *gin.Context) {
	dishID, ok := ParseParamID(c, "dishId")
	if !ok {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.dishReviewService.CreateReview(dishID, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *DishReviewHandler) UpdateReview(c *gin.Context) {
	reviewID, ok := ParseParamID(c, "reviewId")
	if !ok {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.dishReviewService.UpdateReview(reviewID, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *DishReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, ok := ParseParamID(c, "reviewId")
	if !ok {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.dishReviewService.DeleteReview(reviewID, userID, h.CallerRole(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AckResponse{Message: "Review deleted"})
}
