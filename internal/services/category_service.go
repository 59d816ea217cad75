package services

import (
	"net/http"

	"resto_backend/internal/models"
	"resto_backend/internal/repositories"
	"resto_backend/internal/services/dto"
	"resto_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetCategory(id string) (*dto.CategoryResponse, error)
	ListCategories() ([]*dto.CategoryResponse, error)
	UpdateCategory(id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(id string) error
}

type categoryService struct {
	db           *gorm.DB
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(db *gorm.DB, categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{db: db, categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if _, err := s.categoryRepo.FindByName(s.db, req.Name); err == nil {
		return nil, apperrors.ErrAlreadyExists(repositories.ErrCategoryAlreadyExists, "category", "A category with this name already exists")
	} else if !apperrors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, s.mapError(err)
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(s.db, category); err != nil {
		return nil, s.mapError(err)
	}
	return buildCategoryResponse(category), nil
}

func (s *categoryService) GetCategory(id string) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(s.db, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	return buildCategoryResponse(category), nil
}

func (s *categoryService) ListCategories() ([]*dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(s.db)
	if err != nil {
		return nil, s.mapError(err)
	}

	responses := make([]*dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, buildCategoryResponse(&categories[i]))
	}
	return responses, nil
}

func (s *categoryService) UpdateCategory(id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	changes := repositories.CategoryChanges{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Update(s.db, id, changes); err != nil {
		return nil, s.mapError(err)
	}

	category, err := s.categoryRepo.FindByID(s.db, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	return buildCategoryResponse(category), nil
}

func (s *categoryService) DeleteCategory(id string) error {
	return s.mapError(s.categoryRepo.Delete(s.db, id))
}

func (s *categoryService) mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.Is(err, repositories.ErrCategoryNotFound):
		return apperrors.ErrNotFound(err, "category", "Category not found")
	default:
		if appErr, ok := apperrors.AsAppError(err); ok {
			return appErr
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "category", "Database operation failed", http.StatusInternalServerError)
	}
}

func buildCategoryResponse(category *models.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}
