package handlers

import (
	"net/http"

	"resto_backend/internal/models"
	"resto_backend/internal/services"
	"resto_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	public := r.Group("/restaurants/:restaurantId/reviews")
	{
		public.GET("", h.ListReviews)
	}

	nested := r.Group("/restaurants/:restaurantId/reviews")
	nested.Use(authMW)
	{
		nested.POST("", h.CreateReview)
	}

	reviews := r.Group("/reviews")
	reviews.Use(authMW)
	{
		reviews.PUT("/:reviewId", h.UpdateReview)
		reviews.DELETE("/:reviewId", h.DeleteReview)
		reviews.POST("/:reviewId/like", h.LikeReview)
		reviews.POST("/:reviewId/dislike", h.DislikeReview)
	}
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	restaurantID, ok := ParseParamID(c, "restaurantId")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListReviews(restaurantID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	restaurantID, ok := ParseParamID(c, "restaurantId")
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

	review, err := h.reviewService.CreateReview(restaurantID, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
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

	review, err := h.reviewService.UpdateReview(reviewID, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, ok := ParseParamID(c, "reviewId")
	if !ok {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.reviewService.DeleteReview(reviewID, userID, h.CallerRole(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AckResponse{Message: "Review deleted"})
}

func (h *ReviewHandler) LikeReview(c *gin.Context) {
	h.toggleVote(c, models.VoteLike, "Like recorded")
}

func (h *ReviewHandler) DislikeReview(c *gin.Context) {
	h.toggleVote(c, models.VoteDislike, "Dislike recorded")
}

func (h *ReviewHandler) toggleVote(c *gin.Context, direction models.VoteValue, message string) {
	reviewID, ok := ParseParamID(c, "reviewId")
	if !ok {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.reviewService.ToggleVote(reviewID, userID, direction); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AckResponse{Message: message})
}
