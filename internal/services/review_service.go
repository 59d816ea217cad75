package services

import (
	"resto_backend/internal/models"
	"resto_backend/internal/repositories"
	"resto_backend/internal/services/dto"
	"resto_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ReviewService is the aggregation core for restaurant reviews. Every mutation
// that touches both a review and its parent's rating summary runs inside one
// transaction scope: the writes land together or not at all, and the summary
// fields are adjusted only through increment deltas.
type ReviewService interface {
	CreateReview(restaurantID, authorID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	UpdateReview(reviewID, callerID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(reviewID, callerID string, callerRole models.UserRole) error
	ToggleVote(reviewID, callerID string, direction models.VoteValue) error
	ListReviews(restaurantID string) ([]*dto.ReviewResponse, error)
}

type reviewService struct {
	db             *gorm.DB
	reviewRepo     repositories.ReviewRepository
	restaurantRepo repositories.RestaurantRepository
}

func NewReviewService(
	db *gorm.DB,
	reviewRepo repositories.ReviewRepository,
	restaurantRepo repositories.RestaurantRepository,
) ReviewService {
	return &reviewService{
		db:             db,
		reviewRepo:     reviewRepo,
		restaurantRepo: restaurantRepo,
	}
}

func (s *reviewService) CreateReview(restaurantID, authorID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	review := &models.Review{
		RestaurantID: restaurantID,
		AuthorID:     authorID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// The parent is looked up inside the scope so we never attach a
		// review to a restaurant deleted by a concurrent request.
		if _, err := s.restaurantRepo.FindByID(tx, restaurantID); err != nil {
			return err
		}

		if err := s.reviewRepo.Create(tx, review); err != nil {
			return err
		}

		return s.restaurantRepo.ApplySummaryDelta(tx, restaurantID, repositories.SummaryDelta{
			RatingSum: int64(req.Rating),
			Reviews:   1,
		})
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return buildReviewResponse(review), nil
}

func (s *reviewService) UpdateReview(reviewID, callerID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	var updated *models.Review

	err := s.db.Transaction(func(tx *gorm.DB) error {
		review, err := s.reviewRepo.FindByID(tx, reviewID)
		if err != nil {
			return err
		}

		// Only the author may edit.
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

		if err := s.reviewRepo.UpdateFields(tx, reviewID, changes); err != nil {
			return err
		}

		// A rating edit shifts the parent's sum by the difference, in the
		// same scope as the review write.
		if req.Rating != nil && *req.Rating != review.Rating {
			delta := repositories.SummaryDelta{RatingSum: int64(*req.Rating - review.Rating)}
			if err := s.restaurantRepo.ApplySummaryDelta(tx, review.RestaurantID, delta); err != nil {
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

	return buildReviewResponse(updated), nil
}

func (s *reviewService) DeleteReview(reviewID, callerID string, callerRole models.UserRole) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		review, err := s.reviewRepo.FindByID(tx, reviewID)
		if err != nil {
			return err
		}

		if !canDeleteReview(review.AuthorID, callerID, callerRole) {
			return apperrors.NewForbiddenError("Only the author or an administrator can delete this review")
		}

		if err := s.reviewRepo.DeleteVotesByReview(tx, reviewID); err != nil {
			return err
		}
		if err := s.reviewRepo.Delete(tx, reviewID); err != nil {
			return err
		}

		return s.restaurantRepo.ApplySummaryDelta(tx, review.RestaurantID, repositories.SummaryDelta{
			RatingSum: -int64(review.Rating),
			Reviews:   -1,
			Likes:     -review.LikeCount,
			Dislikes:  -review.DislikeCount,
		})
	})
	return s.mapError(err)
}

// canDeleteReview is an exhaustive role check: authors delete their own
// reviews, administrators delete anyone's.
func canDeleteReview(authorID, callerID string, callerRole models.UserRole) bool {
	if authorID == callerID {
		return true
	}
	switch callerRole {
	case models.UserRoleAdmin:
		return true
	case models.UserRoleUser:
		return false
	default:
		return false
	}
}

func (s *reviewService) ToggleVote(reviewID, callerID string, direction models.VoteValue) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		review, err := s.reviewRepo.FindByID(tx, reviewID)
		if err != nil {
			return err
		}

		if review.AuthorID == callerID {
			return apperrors.NewForbiddenError("Voting on your own review is not allowed")
		}

		prior, err := s.reviewRepo.FindVote(tx, reviewID, callerID)
		if err != nil && !apperrors.Is(err, repositories.ErrVoteNotFound) {
			return err
		}

		// Deltas are derived from the actual set transition, so repeating a
		// vote is a no-op and switching moves one count across, never two.
		var likeDelta, dislikeDelta int64
		switch {
		case prior == nil:
			if err := s.reviewRepo.CreateVote(tx, &models.ReviewVote{
				ReviewID: reviewID,
				UserID:   callerID,
				Value:    direction,
			}); err != nil {
				return err
			}
			if direction == models.VoteLike {
				likeDelta = 1
			} else {
				dislikeDelta = 1
			}

		case prior.Value == direction:
			// Same direction again: state is already what the caller asked
			// for, nothing moves.
			return nil

		default:
			if err := s.reviewRepo.UpdateVoteValue(tx, reviewID, callerID, direction); err != nil {
				return err
			}
			if direction == models.VoteLike {
				likeDelta, dislikeDelta = 1, -1
			} else {
				likeDelta, dislikeDelta = -1, 1
			}
		}

		if err := s.reviewRepo.ApplyVoteCountDelta(tx, reviewID, likeDelta, dislikeDelta); err != nil {
			return err
		}

		return s.restaurantRepo.ApplySummaryDelta(tx, review.RestaurantID, repositories.SummaryDelta{
			Likes:    likeDelta,
			Dislikes: dislikeDelta,
		})
	})
	return s.mapError(err)
}

func (s *reviewService) ListReviews(restaurantID string) ([]*dto.ReviewResponse, error) {
	// Read-only one-shot snapshot, no transaction needed.
	if _, err := s.restaurantRepo.FindByID(s.db, restaurantID); err != nil {
		return nil, s.mapError(err)
	}

	reviews, err := s.reviewRepo.FindByRestaurant(s.db, restaurantID)
	if err != nil {
		return nil, s.mapError(err)
	}

	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, buildReviewResponse(&reviews[i]))
	}
	return responses, nil
}

// mapError translates repository sentinels into transport-ready AppErrors.
// Anything unexpected inside a transaction scope is a TransactionFailed: the
// scope was rolled back and no partial state is observable.
func (s *reviewService) mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.Is(err, repositories.ErrReviewNotFound):
		return apperrors.ErrNotFound(err, "review", "Review not found")
	case apperrors.Is(err, repositories.ErrRestaurantNotFound):
		return apperrors.ErrNotFound(err, "restaurant", "Restaurant not found")
	default:
		if appErr, ok := apperrors.AsAppError(err); ok {
			return appErr
		}
		return apperrors.TransactionFailed(err)
	}
}

func buildReviewResponse(review *models.Review) *dto.ReviewResponse {
	resp := &dto.ReviewResponse{
		ID:           review.ID,
		RestaurantID: review.RestaurantID,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
		Likes:        review.LikeCount,
		Dislikes:     review.DislikeCount,
	}
	if review.Author.ID != "" {
		resp.Author = &dto.UserResponse{
			ID:       review.Author.ID,
			Username: review.Author.Username,
		}
	}
	return resp
}
