package repositories

import (
	"errors"

	"resto_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category with this name already exists")
)

type CategoryRepository interface {
	Create(db *gorm.DB, category *models.Category) error
	FindByID(db *gorm.DB, id string) (*models.Category, error)
	FindByName(db *gorm.DB, name string) (*models.Category, error)
	FindAll(db *gorm.DB) ([]models.Category, error)
	Update(db *gorm.DB, id string, changes CategoryChanges) error
	Delete(db *gorm.DB, id string) error
}

// CategoryChanges is the closed set of fields an update may touch.
type CategoryChanges struct {
	Name        *string
	Description *string
}

func (c CategoryChanges) fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if c.Name != nil {
		fields["name"] = *c.Name
	}
	if c.Description != nil {
		fields["description"] = *c.Description
	}
	return fields
}

type CategoryRepositoryImpl struct{}

func NewCategoryRepository() CategoryRepository {
	return &CategoryRepositoryImpl{}
}

func (r *CategoryRepositoryImpl) Create(db *gorm.DB, category *models.Category) error {
	return db.Create(category).Error
}

func (r *CategoryRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	err := db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindByName(db *gorm.DB, name string) (*models.Category, error) {
	var category models.Category
	err := db.First(&category, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindAll(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) Update(db *gorm.DB, id string, changes CategoryChanges) error {
	fields := changes.fields()
	if len(fields) == 0 {
		return nil
	}

	result := db.Model(&models.Category{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
