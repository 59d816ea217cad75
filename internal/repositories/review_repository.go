package repositories

import (
	"errors"

	"resto_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrVoteNotFound   = errors.New("vote not found")
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	FindByRestaurant(db *gorm.DB, restaurantID string) ([]models.Review, error)
	UpdateFields(db *gorm.DB, id string, changes ReviewChanges) error
	Delete(db *gorm.DB, id string) error

	// Vote operations. A vote row is the membership record of the like or
	// dislike set; the composite primary key keeps the sets disjoint.
	FindVote(db *gorm.DB, reviewID, userID string) (*models.ReviewVote, error)
	CreateVote(db *gorm.DB, vote *models.ReviewVote) error
	UpdateVoteValue(db *gorm.DB, reviewID, userID string, value models.VoteValue) error
	DeleteVotesByReview(db *gorm.DB, reviewID string) error
	ApplyVoteCountDelta(db *gorm.DB, reviewID string, likes, dislikes int64) error
}

// ReviewChanges is the closed set of author-updatable fields.
type ReviewChanges struct {
	Comment *string
	Rating  *int
}

func (c ReviewChanges) fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if c.Comment != nil {
		fields["comment"] = *c.Comment
	}
	if c.Rating != nil {
		fields["rating"] = *c.Rating
	}
	return fields
}

func (c ReviewChanges) IsEmpty() bool {
	return c.Comment == nil && c.Rating == nil
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByRestaurant(db *gorm.DB, restaurantID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("Author").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) UpdateFields(db *gorm.DB, id string, changes ReviewChanges) error {
	fields := changes.fields()
	if len(fields) == 0 {
		return nil
	}

	result := db.Model(&models.Review{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// Vote operations

func (r *ReviewRepositoryImpl) FindVote(db *gorm.DB, reviewID, userID string) (*models.ReviewVote, error) {
	var vote models.ReviewVote
	err := db.Where("review_id = ? AND user_id = ?", reviewID, userID).First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoteNotFound
		}
		return nil, err
	}
	return &vote, nil
}

func (r *ReviewRepositoryImpl) CreateVote(db *gorm.DB, vote *models.ReviewVote) error {
	return db.Create(vote).Error
}

func (r *ReviewRepositoryImpl) UpdateVoteValue(db *gorm.DB, reviewID, userID string, value models.VoteValue) error {
	result := db.Model(&models.ReviewVote{}).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Update("value", value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVoteNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) DeleteVotesByReview(db *gorm.DB, reviewID string) error {
	return db.Where("review_id = ?", reviewID).Delete(&models.ReviewVote{}).Error
}

func (r *ReviewRepositoryImpl) ApplyVoteCountDelta(db *gorm.DB, reviewID string, likes, dislikes int64) error {
	if likes == 0 && dislikes == 0 {
		return nil
	}

	result := db.Model(&models.Review{}).Where("id = ?", reviewID).UpdateColumns(map[string]interface{}{
		"like_count":    gorm.Expr("like_count + ?", likes),
		"dislike_count": gorm.Expr("dislike_count + ?", dislikes),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
