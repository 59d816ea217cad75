package repositories

import (
	"errors"

	"resto_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDishNotFound = errors.New("dish not found")

type DishRepository interface {
	Create(db *gorm.DB, dish *models.Dish) error
	FindByID(db *gorm.DB, id string) (*models.Dish, error)
	FindByRestaurant(db *gorm.DB, restaurantID string) ([]models.Dish, error)
	Update(db *gorm.DB, id string, changes DishChanges) error
	Delete(db *gorm.DB, id string) error

	// Same contract as RestaurantRepository.ApplySummaryDelta; dishes carry no
	// vote aggregates so only the rating fields exist.
	ApplySummaryDelta(db *gorm.DB, id string, delta SummaryDelta) error
}

// DishChanges is the closed set of admin-updatable fields.
type DishChanges struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
}

func (c DishChanges) fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if c.Name != nil {
		fields["name"] = *c.Name
	}
	if c.Description != nil {
		fields["description"] = *c.Description
	}
	if c.Price != nil {
		fields["price"] = *c.Price
	}
	if c.ImageURL != nil {
		fields["image_url"] = *c.ImageURL
	}
	return fields
}

type DishRepositoryImpl struct{}

func NewDishRepository() DishRepository {
	return &DishRepositoryImpl{}
}

func (r *DishRepositoryImpl) Create(db *gorm.DB, dish *models.Dish) error {
	return db.Create(dish).Error
}

func (r *DishRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Dish, error) {
	var dish models.Dish
	err := db.First(&dish, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}
	return &dish, nil
}

func (r *DishRepositoryImpl) FindByRestaurant(db *gorm.DB, restaurantID string) ([]models.Dish, error) {
	var dishes []models.Dish
	err := db.Where("restaurant_id = ?", restaurantID).
		Order("name ASC").
		Find(&dishes).Error
	return dishes, err
}

func (r *DishRepositoryImpl) Update(db *gorm.DB, id string, changes DishChanges) error {
	fields := changes.fields()
	if len(fields) == 0 {
		return nil
	}

	result := db.Model(&models.Dish{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDishNotFound
	}
	return nil
}

func (r *DishRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Dish{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDishNotFound
	}
	return nil
}

func (r *DishRepositoryImpl) ApplySummaryDelta(db *gorm.DB, id string, delta SummaryDelta) error {
	if delta.IsZero() {
		return nil
	}

	result := db.Model(&models.Dish{}).Where("id = ?", id).UpdateColumns(map[string]interface{}{
		"total_rating_sum": gorm.Expr("total_rating_sum + ?", delta.RatingSum),
		"review_count":     gorm.Expr("review_count + ?", delta.Reviews),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDishNotFound
	}
	return nil
}
