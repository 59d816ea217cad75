package services

import (
	"net/http"

	"resto_backend/internal/models"
	"resto_backend/internal/repositories"
	"resto_backend/internal/services/dto"
	"resto_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type RestaurantService interface {
	CreateRestaurant(creatorID string, creatorRole models.UserRole, req *dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error)
	GetRestaurant(id string, viewerID string, viewerRole models.UserRole) (*dto.RestaurantResponse, error)
	ListRestaurants(filter *dto.RestaurantFilterRequest) ([]*dto.RestaurantResponse, error)
	ListPendingRestaurants() ([]*dto.RestaurantResponse, error)
	UpdateRestaurant(id string, req *dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error)
	SetRestaurantStatus(id string, status models.RestaurantStatus) error
	DeleteRestaurant(id string) error
}

type restaurantService struct {
	db             *gorm.DB
	restaurantRepo repositories.RestaurantRepository
	categoryRepo   repositories.CategoryRepository
}

func NewRestaurantService(
	db *gorm.DB,
	restaurantRepo repositories.RestaurantRepository,
	categoryRepo repositories.CategoryRepository,
) RestaurantService {
	return &restaurantService{
		db:             db,
		restaurantRepo: restaurantRepo,
		categoryRepo:   categoryRepo,
	}
}

// CreateRestaurant accepts submissions from any authenticated user. Admin
// submissions go live immediately; everyone else enters the moderation queue.
func (s *restaurantService) CreateRestaurant(creatorID string, creatorRole models.UserRole, req *dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	if _, err := s.categoryRepo.FindByID(s.db, req.CategoryID); err != nil {
		return nil, s.mapError(err)
	}

	if _, err := s.restaurantRepo.FindByName(s.db, req.Name); err == nil {
		return nil, apperrors.ErrAlreadyExists(repositories.ErrRestaurantAlreadyExists, "restaurant", "A restaurant with this name already exists")
	} else if !apperrors.Is(err, repositories.ErrRestaurantNotFound) {
		return nil, s.mapError(err)
	}

	status := models.RestaurantStatusPending
	if creatorRole == models.UserRoleAdmin {
		status = models.RestaurantStatusApproved
	}

	restaurant := &models.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Address:     req.Address,
		CategoryID:  req.CategoryID,
		Status:      status,
		CreatedByID: creatorID,
	}
	if err := s.restaurantRepo.Create(s.db, restaurant); err != nil {
		return nil, s.mapError(err)
	}

	return buildRestaurantResponse(restaurant), nil
}

func (s *restaurantService) GetRestaurant(id string, viewerID string, viewerRole models.UserRole) (*dto.RestaurantResponse, error) {
	restaurant, err := s.restaurantRepo.FindByID(s.db, id)
	if err != nil {
		return nil, s.mapError(err)
	}

	// Unapproved entries exist only for their submitter and for moderators.
	if restaurant.Status != models.RestaurantStatusApproved &&
		viewerRole != models.UserRoleAdmin &&
		restaurant.CreatedByID != viewerID {
		return nil, apperrors.ErrNotFound(repositories.ErrRestaurantNotFound, "restaurant", "Restaurant not found")
	}

	return buildRestaurantResponse(restaurant), nil
}

// ListRestaurants is the public catalogue: approved entries only.
func (s *restaurantService) ListRestaurants(filter *dto.RestaurantFilterRequest) ([]*dto.RestaurantResponse, error) {
	repoFilter := repositories.RestaurantFilter{
		Status: models.RestaurantStatusApproved,
	}
	if filter != nil {
		repoFilter.CategoryID = filter.CategoryID
	}

	restaurants, err := s.restaurantRepo.FindAll(s.db, repoFilter)
	if err != nil {
		return nil, s.mapError(err)
	}
	return buildRestaurantResponses(restaurants), nil
}

func (s *restaurantService) ListPendingRestaurants() ([]*dto.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepo.FindAll(s.db, repositories.RestaurantFilter{
		Status: models.RestaurantStatusPending,
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	return buildRestaurantResponses(restaurants), nil
}

func (s *restaurantService) UpdateRestaurant(id string, req *dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(s.db, *req.CategoryID); err != nil {
			return nil, s.mapError(err)
		}
	}

	changes := repositories.RestaurantChanges{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Address:     req.Address,
		CategoryID:  req.CategoryID,
	}
	if err := s.restaurantRepo.Update(s.db, id, changes); err != nil {
		return nil, s.mapError(err)
	}

	restaurant, err := s.restaurantRepo.FindByID(s.db, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	return buildRestaurantResponse(restaurant), nil
}

func (s *restaurantService) SetRestaurantStatus(id string, status models.RestaurantStatus) error {
	return s.mapError(s.restaurantRepo.UpdateStatus(s.db, id, status))
}

func (s *restaurantService) DeleteRestaurant(id string) error {
	return s.mapError(s.restaurantRepo.Delete(s.db, id))
}

func (s *restaurantService) mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.Is(err, repositories.ErrRestaurantNotFound):
		return apperrors.ErrNotFound(err, "restaurant", "Restaurant not found")
	case apperrors.Is(err, repositories.ErrCategoryNotFound):
		return apperrors.ErrNotFound(err, "category", "Category not found")
	default:
		if appErr, ok := apperrors.AsAppError(err); ok {
			return appErr
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "restaurant", "Database operation failed", http.StatusInternalServerError)
	}
}

func buildRestaurantResponse(restaurant *models.Restaurant) *dto.RestaurantResponse {
	resp := &dto.RestaurantResponse{
		ID:          restaurant.ID,
		Name:        restaurant.Name,
		Description: restaurant.Description,
		ImageURL:    restaurant.ImageURL,
		Address:     restaurant.Address,
		CategoryID:  restaurant.CategoryID,
		Status:      string(restaurant.Status),
		CreatedAt:   restaurant.CreatedAt,
		RatingSummary: dto.RatingSummary{
			AverageRating: restaurant.AverageRating(),
			ReviewCount:   restaurant.ReviewCount,
			TotalLikes:    restaurant.TotalLikes,
			TotalDislikes: restaurant.TotalDislikes,
		},
	}
	if restaurant.Category.ID != "" {
		resp.Category = restaurant.Category.Name
	}
	return resp
}

func buildRestaurantResponses(restaurants []models.Restaurant) []*dto.RestaurantResponse {
	responses := make([]*dto.RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		responses = append(responses, buildRestaurantResponse(&restaurants[i]))
	}
	return responses
}
