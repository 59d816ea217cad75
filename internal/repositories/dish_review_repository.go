package repositories

import (
	"errors"

	"resto_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDishReviewNotFound = errors.New("dish review not found")

type DishReviewRepository interface {
	Create(db *gorm.DB, review *models.DishReview) error
	FindByID(db *gorm.DB, id string) (*models.DishReview, error)
	FindByDish(db *gorm.DB, dishID string) ([]models.DishReview, error)
	UpdateFields(db *gorm.DB, id string, changes ReviewChanges) error
	Delete(db *gorm.DB, id string) error
}

type DishReviewRepositoryImpl struct{}

func NewDishReviewRepository() DishReviewRepository {
	return &DishReviewRepositoryImpl{}
}

func (r *DishReviewRepositoryImpl) Create(db *gorm.DB, review *models.DishReview) error {
	return db.Create(review).Error
}

func (r *DishReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.DishReview, error) {
	var review models.DishReview
	err := db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *DishReviewRepositoryImpl) FindByDish(db *gorm.DB, dishID string) ([]models.DishReview, error) {
	var reviews []models.DishReview
	err := db.Preload("Author").
		Where("dish_id = ?", dishID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *DishReviewRepositoryImpl) UpdateFields(db *gorm.DB, id string, changes ReviewChanges) error {
	fields := changes.fields()
	if len(fields) == 0 {
		return nil
	}

	result := db.Model(&models.DishReview{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDishReviewNotFound
	}
	return nil
}

func (r *DishReviewRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.DishReview{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDishReviewNotFound
	}
	return nil
}
