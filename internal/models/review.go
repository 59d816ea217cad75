package models

import "time"

// Review is a user's opinion of a restaurant. LikeCount/DislikeCount mirror the
// vote rows and are adjusted in the same transaction as the vote itself.
type Review struct {
	BaseModel
	RestaurantID string `gorm:"type:uuid;not null;index"`
	AuthorID     string `gorm:"type:uuid;not null;index"`
	Rating       int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment      string `gorm:"not null"`

	LikeCount    int64 `gorm:"not null;default:0"`
	DislikeCount int64 `gorm:"not null;default:0"`

	// Relations
	Author User         `gorm:"foreignKey:AuthorID"`
	Votes  []ReviewVote `gorm:"foreignKey:ReviewID"`
}

// ReviewVote realizes the like/dislike sets: one row per (review, user), the
// composite key guarantees a user holds at most one vote per review.
type ReviewVote struct {
	ReviewID  string    `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:uuid;primaryKey"`
	Value     VoteValue `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time
}

// DishReview is the vote-less sibling of Review for menu items.
type DishReview struct {
	BaseModel
	DishID   string `gorm:"type:uuid;not null;index"`
	AuthorID string `gorm:"type:uuid;not null;index"`
	Rating   int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment  string `gorm:"not null"`

	// Relations
	Author User `gorm:"foreignKey:AuthorID"`
}
