package services

import (
	"net/http"

	"resto_backend/internal/models"
	"resto_backend/internal/repositories"
	"resto_backend/internal/services/dto"
	"resto_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type DishService interface {
	CreateDish(restaurantID string, req *dto.CreateDishRequest) (*dto.DishResponse, error)
	GetDish(id string) (*dto.DishResponse, error)
	ListDishes(restaurantID string) ([]*dto.DishResponse, error)
	UpdateDish(id string, req *dto.UpdateDishRequest) (*dto.DishResponse, error)
	DeleteDish(id string) error
}

type dishService struct {
	db             *gorm.DB
	dishRepo       repositories.DishRepository
	restaurantRepo repositories.RestaurantRepository
}

func NewDishService(
	db *gorm.DB,
	dishRepo repositories.DishRepository,
	restaurantRepo repositories.RestaurantRepository,
) DishService {
	return &dishService{
		db:             db,
		dishRepo:       dishRepo,
		restaurantRepo: restaurantRepo,
	}
}

func (s *dishService) CreateDish(restaurantID string, req *dto.CreateDishRequest) (*dto.DishResponse, error) {
	if _, err := s.restaurantRepo.FindByID(s.db, restaurantID); err != nil {
		return nil, s.mapError(err)
	}

	dish := &models.Dish{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
	}
	if err := s.dishRepo.Create(s.db, dish); err != nil {
		return nil, s.mapError(err)
	}
	return buildDishResponse(dish), nil
}

func (s *dishService) GetDish(id string) (*dto.DishResponse, error) {
	dish, err := s.dishRepo.FindByID(s.db, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	return buildDishResponse(dish), nil
}

func (s *dishService) ListDishes(restaurantID string) ([]*dto.DishResponse, error) {
	if _, err := s.restaurantRepo.FindByID(s.db, restaurantID); err != nil {
		return nil, s.mapError(err)
	}

	dishes, err := s.dishRepo.FindByRestaurant(s.db, restaurantID)
	if err != nil {
		return nil, s.mapError(err)
	}

	responses := make([]*dto.DishResponse, 0, len(dishes))
	for i := range dishes {
		responses = append(responses, buildDishResponse(&dishes[i]))
	}
	return responses, nil
}

func (s *dishService) UpdateDish(id string, req *dto.UpdateDishRequest) (*dto.DishResponse, error) {
	changes := repositories.DishChanges{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
	if err := s.dishRepo.Update(s.db, id, changes); err != nil {
		return nil, s.mapError(err)
	}

	dish, err := s.dishRepo.FindByID(s.db, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	return buildDishResponse(dish), nil
}

func (s *dishService) DeleteDish(id string) error {
	return s.mapError(s.dishRepo.Delete(s.db, id))
}

func (s *dishService) mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.Is(err, repositories.ErrDishNotFound):
		return apperrors.ErrNotFound(err, "dish", "Dish not found")
	case apperrors.Is(err, repositories.ErrRestaurantNotFound):
		return apperrors.ErrNotFound(err, "restaurant", "Restaurant not found")
	default:
		if appErr, ok := apperrors.AsAppError(err); ok {
			return appErr
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "dish", "Database operation failed", http.StatusInternalServerError)
	}
}

func buildDishResponse(dish *models.Dish) *dto.DishResponse {
	return &dto.DishResponse{
		ID:           dish.ID,
		RestaurantID: dish.RestaurantID,
		Name:         dish.Name,
		Description:  dish.Description,
		Price:        dish.Price,
		ImageURL:     dish.ImageURL,
		CreatedAt:    dish.CreatedAt,
		RatingSummary: dto.RatingSummary{
			AverageRating: dish.AverageRating(),
			ReviewCount:   dish.ReviewCount,
		},
	}
}
