package database

import (
	"resto_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Category{},
		&models.Restaurant{},
		&models.Dish{},
		&models.Review{},
		&models.ReviewVote{},
		&models.DishReview{},
	)
}
