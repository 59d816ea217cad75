package repositories

import (
	"errors"

	"resto_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRestaurantNotFound      = errors.New("restaurant not found")
	ErrRestaurantAlreadyExists = errors.New("restaurant with this name already exists")
)

type RestaurantRepository interface {
	Create(db *gorm.DB, restaurant *models.Restaurant) error
	FindByID(db *gorm.DB, id string) (*models.Restaurant, error)
	FindByName(db *gorm.DB, name string) (*models.Restaurant, error)
	FindAll(db *gorm.DB, filter RestaurantFilter) ([]models.Restaurant, error)
	Update(db *gorm.DB, id string, changes RestaurantChanges) error
	UpdateStatus(db *gorm.DB, id string, status models.RestaurantStatus) error
	Delete(db *gorm.DB, id string) error

	// ApplySummaryDelta is the only write path for the denormalized rating
	// summary. It issues SQL-side increments so concurrent transactions both
	// land; the summary row is never read-modify-written as a whole.
	ApplySummaryDelta(db *gorm.DB, id string, delta SummaryDelta) error
}

type RestaurantFilter struct {
	CategoryID string
	Status     models.RestaurantStatus
}

// RestaurantChanges is the closed set of admin-updatable fields.
type RestaurantChanges struct {
	Name        *string
	Description *string
	ImageURL    *string
	Address     *string
	CategoryID  *string
}

func (c RestaurantChanges) fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if c.Name != nil {
		fields["name"] = *c.Name
	}
	if c.Description != nil {
		fields["description"] = *c.Description
	}
	if c.ImageURL != nil {
		fields["image_url"] = *c.ImageURL
	}
	if c.Address != nil {
		fields["address"] = *c.Address
	}
	if c.CategoryID != nil {
		fields["category_id"] = *c.CategoryID
	}
	return fields
}

// SummaryDelta is the closed set of increment operations a review mutation may
// apply to its parent's summary.
type SummaryDelta struct {
	RatingSum int64
	Reviews   int64
	Likes     int64
	Dislikes  int64
}

func (d SummaryDelta) IsZero() bool {
	return d.RatingSum == 0 && d.Reviews == 0 && d.Likes == 0 && d.Dislikes == 0
}

type RestaurantRepositoryImpl struct{}

func NewRestaurantRepository() RestaurantRepository {
	return &RestaurantRepositoryImpl{}
}

func (r *RestaurantRepositoryImpl) Create(db *gorm.DB, restaurant *models.Restaurant) error {
	return db.Create(restaurant).Error
}

func (r *RestaurantRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := db.Preload("Category").First(&restaurant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepositoryImpl) FindByName(db *gorm.DB, name string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := db.First(&restaurant, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepositoryImpl) FindAll(db *gorm.DB, filter RestaurantFilter) ([]models.Restaurant, error) {
	query := db.Preload("Category").Order("name ASC")
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var restaurants []models.Restaurant
	err := query.Find(&restaurants).Error
	return restaurants, err
}

func (r *RestaurantRepositoryImpl) Update(db *gorm.DB, id string, changes RestaurantChanges) error {
	fields := changes.fields()
	if len(fields) == 0 {
		return nil
	}

	result := db.Model(&models.Restaurant{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}

func (r *RestaurantRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.RestaurantStatus) error {
	result := db.Model(&models.Restaurant{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}

func (r *RestaurantRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Restaurant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}

func (r *RestaurantRepositoryImpl) ApplySummaryDelta(db *gorm.DB, id string, delta SummaryDelta) error {
	if delta.IsZero() {
		return nil
	}

	result := db.Model(&models.Restaurant{}).Where("id = ?", id).UpdateColumns(map[string]interface{}{
		"total_rating_sum": gorm.Expr("total_rating_sum + ?", delta.RatingSum),
		"review_count":     gorm.Expr("review_count + ?", delta.Reviews),
		"total_likes":      gorm.Expr("total_likes + ?", delta.Likes),
		"total_dislikes":   gorm.Expr("total_dislikes + ?", delta.Dislikes),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Parent vanished mid-transaction; the caller aborts the scope.
		return ErrRestaurantNotFound
	}
	return nil
}
