package services

import (
	"fmt"
	"testing"

	"resto_backend/internal/auth"
	"resto_backend/internal/models"
	"resto_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Category{},
		&models.Restaurant{},
		&models.Dish{},
		&models.Review{},
		&models.ReviewVote{},
		&models.DishReview{},
	))
	return db
}

func newTestTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", 60)
}

func createTestUser(t *testing.T, db *gorm.DB, username string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createTestRestaurant(t *testing.T, db *gorm.DB, name string, categoryID, creatorID string) *models.Restaurant {
	t.Helper()

	restaurant := &models.Restaurant{
		Name:        name,
		Description: "test restaurant",
		CategoryID:  categoryID,
		Status:      models.RestaurantStatusApproved,
		CreatedByID: creatorID,
	}
	require.NoError(t, db.Create(restaurant).Error)
	return restaurant
}

func createTestDish(t *testing.T, db *gorm.DB, restaurantID, name string) *models.Dish {
	t.Helper()

	dish := &models.Dish{
		RestaurantID: restaurantID,
		Name:         name,
		Price:        9.99,
	}
	require.NoError(t, db.Create(dish).Error)
	return dish
}

func loadRestaurant(t *testing.T, db *gorm.DB, id string) *models.Restaurant {
	t.Helper()

	var restaurant models.Restaurant
	require.NoError(t, db.First(&restaurant, "id = ?", id).Error)
	return &restaurant
}

func loadDish(t *testing.T, db *gorm.DB, id string) *models.Dish {
	t.Helper()

	var dish models.Dish
	require.NoError(t, db.First(&dish, "id = ?", id).Error)
	return &dish
}

func newReviewFixture(t *testing.T) (*gorm.DB, ReviewService, *models.User, *models.Restaurant) {
	t.Helper()

	db := newTestDB(t)
	author := createTestUser(t, db, "author", models.UserRoleUser)
	category := createTestCategory(t, db, "Italian")
	restaurant := createTestRestaurant(t, db, "Trattoria", category.ID, author.ID)

	svc := NewReviewService(db, repositories.NewReviewRepository(), repositories.NewRestaurantRepository())
	return db, svc, author, restaurant
}
