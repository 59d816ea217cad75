package services

import (
	"resto_backend/internal/models"
	"resto_backend/internal/repositories"
	"resto_backend/internal/services/dto"
	"resto_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// DishReviewService applies the same transactional summary discipline as
// ReviewService, with a dish as the parent instead of a restaurant.
type DishReviewService interface {
	CreateReview(dishID, authorID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	UpdateReview(reviewID, callerID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(reviewID, callerID string, callerRole models.UserRole) error
	ListReviews(dishID string) ([]*dto.ReviewResponse, error)
}

type dishReviewService struct {
	db             *gorm.DB
	dishReviewRepo repositories.DishReviewRepository
	dishRepo       repositories.DishRepository
}

func NewDishReviewService(
	db *gorm.DB,
	dishReviewRepo repositories.DishReviewRepository,
	dishRepo repositories.DishRepository,
) DishReviewService {
	return &dishReviewService{
		db:             db,
		dishReviewRepo: dishReviewRepo,
		dishRepo:       dishRepo,
	}
}

func (s *dishReviewService) CreateReview(dishID, authorID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	review := &models.DishReview{
		DishID:   dishID,
		AuthorID: authorID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.dishRepo.FindByID(tx, dishID); err != nil {
			return err
		}
		if err := s.dishReviewRepo.Create(tx, review); err != nil {
			return err
		}
		return s.dishRepo.ApplySummaryDelta(tx, dishID, repositories.SummaryDelta{
			RatingSum: int64(req.Rating),
			Reviews:   1,
		})
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return buildDishReviewResponse(review), nil
}

func (s *dishReviewService) UpdateReview(reviewID, callerID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	var updated *models.DishReview

	err := s.db.Transaction(func(tx *gorm.DB) error {
		review, err := s.dishReviewRepo.FindByID(tx, reviewID)
		if err != nil {
			return err
		}

		if review.AuthorID != callerID {
			return apperrors.NewForbiddenError("Only the author can edit this review")
		}

		changes := repositories.ReviewChanges{
			Comment: req.Comment,
			Rating:  req.Rating,
		}
		if changes.IsEmpty() {
			updated = review
			return nil
		}

		if err := s.dishReviewRepo.UpdateFields(tx, reviewID, changes); err != nil {
			return err
		}

		if req.Rating != nil && *req.Rating != review.Rating {
			delta := repositories.SummaryDelta{RatingSum: int64(*req.Rating - review.Rating)}
			if err := s.dishRepo.ApplySummaryDelta(tx, review.DishID, delta); err != nil {
				return err
			}
		}

		if req.Rating != nil {
			review.Rating = *req.Rating
		}
		if req.Comment != nil {
			review.Comment = *req.Comment
		}
		updated = review
		return nil
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return buildDishReviewResponse(updated), nil
}

func (s *dishReviewService) DeleteReview(reviewID, callerID string, callerRole models.UserRole) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		review, err := s.dishReviewRepo.FindByID(tx, reviewID)
		if err != nil {
			return err
		}

		if !canDeleteReview(review.AuthorID, callerID, callerRole) {
			return apperrors.NewForbiddenError("Only the author or an administrator can delete this review")
		}

		if err := s.dishReviewRepo.Delete(tx, reviewID); err != nil {
			return err
		}
		return s.dishRepo.ApplySummaryDelta(tx, review.DishID, repositories.SummaryDelta{
			RatingSum: -int64(review.Rating),
			Reviews:   -1,
		})
	})
	return s.mapError(err)
}

func (s *dishReviewService) ListReviews(dishID string) ([]*dto.ReviewResponse, error) {
	if _, err := s.dishRepo.FindByID(s.db, dishID); err != nil {
		return nil, s.mapError(err)
	}

	reviews, err := s.dishReviewRepo.FindByDish(s.db, dishID)
	if err != nil {
		return nil, s.mapError(err)
	}

	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, buildDishReviewResponse(&reviews[i]))
	}
	return responses, nil
}

func (s *dishReviewService) mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.Is(err, repositories.ErrDishReviewNotFound):
		return apperrors.ErrNotFound(err, "dish_review", "Review not found")
	case apperrors.Is(err, repositories.ErrDishNotFound):
		return apperrors.ErrNotFound(err, "dish", "Dish not found")
	default:
		if appErr, ok := apperrors.AsAppError(err); ok {
			return appErr
		}
		return apperrors.TransactionFailed(err)
	}
}

func buildDishReviewResponse(review *models.DishReview) *dto.ReviewResponse {
	resp := &dto.ReviewResponse{
		ID:        review.ID,
		DishID:    review.DishID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
	if review.Author.ID != "" {
		resp.Author = &dto.UserResponse{
			ID:       review.Author.ID,
			Username: review.Author.Username,
		}
	}
	return resp
}
