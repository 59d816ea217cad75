package services

import (
	"resto_backend/internal/auth"
	"resto_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService       AuthService
	CategoryService   CategoryService
	RestaurantService RestaurantService
	DishService       DishService
	ReviewService     ReviewService
	DishReviewService DishReviewService
}

// NewServiceContainer builds the full service graph over one shared database
// handle. Repositories are stateless; the handle is the only injected state.
func NewServiceContainer(db *gorm.DB, tokens *auth.TokenManager) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	categoryRepo := repositories.NewCategoryRepository()
	restaurantRepo := repositories.NewRestaurantRepository()
	dishRepo := repositories.NewDishRepository()
	reviewRepo := repositories.NewReviewRepository()
	dishReviewRepo := repositories.NewDishReviewRepository()

	return &ServiceContainer{
		AuthService:       NewAuthService(db, userRepo, tokens),
		CategoryService:   NewCategoryService(db, categoryRepo),
		RestaurantService: NewRestaurantService(db, restaurantRepo, categoryRepo),
		DishService:       NewDishService(db, dishRepo, restaurantRepo),
		ReviewService:     NewReviewService(db, reviewRepo, restaurantRepo),
		DishReviewService: NewDishReviewService(db, dishReviewRepo, dishRepo),
	}
}
