package dto

import "time"

// ======================
// Request DTOs
// ======================

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,min=1,max=2000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,min=1,max=2000"`
}

// ======================
// Response DTOs
// ======================

type ReviewResponse struct {
	ID           string        `json:"id"`
	RestaurantID string        `json:"restaurant_id,omitempty"`
	DishID       string        `json:"dish_id,omitempty"`
	Rating       int           `json:"rating"`
	Comment      string        `json:"comment"`
	CreatedAt    time.Time     `json:"created_at"`
	Author       *UserResponse `json:"author,omitempty"`

	// Vote counters, restaurant reviews only.
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

type AckResponse struct {
	Message string `json:"message"`
}
