package handlers

import (
	"resto_backend/internal/services"
	"resto_backend/internal/validator"
)

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	CategoryHandler   *CategoryHandler
	RestaurantHandler *RestaurantHandler
	DishHandler       *DishHandler
	ReviewHandler     *ReviewHandler
	DishReviewHandler *DishReviewHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:       NewAuthHandler(base, sc.AuthService),
		CategoryHandler:   NewCategoryHandler(base, sc.CategoryService),
		RestaurantHandler: NewRestaurantHandler(base, sc.RestaurantService),
		DishHandler:       NewDishHandler(base, sc.DishService),
		ReviewHandler:     NewReviewHandler(base, sc.ReviewService),
		DishReviewHandler: NewDishReviewHandler(base, sc.DishReviewService),
	}
}
