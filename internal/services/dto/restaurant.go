package dto

import "time"

// ======================
// Request DTOs
// ======================

type CreateRestaurantRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=150"`
	Description string `json:"description" validate:"required,max=2000"`
	CategoryID  string `json:"category_id" validate:"required,uuid"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Address     string `json:"address" validate:"omitempty,max=300"`
}

type UpdateRestaurantRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	CategoryID  *string `json:"category_id,omitempty" validate:"omitempty,uuid"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=300"`
}

type RestaurantFilterRequest struct {
	CategoryID string `form:"category_id" validate:"omitempty,uuid"`
}

// ======================
// Response DTOs
// ======================

type RestaurantResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	Address     string    `json:"address,omitempty"`
	CategoryID  string    `json:"category_id"`
	Category    string    `json:"category,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	RatingSummary RatingSummary `json:"rating_summary"`
}

// RatingSummary is the denormalized aggregate view exposed to clients.
type RatingSummary struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
	TotalLikes    int64   `json:"total_likes,omitempty"`
	TotalDislikes int64   `json:"total_dislikes,omitempty"`
}
