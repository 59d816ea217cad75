package models

// Restaurant carries a denormalized rating summary. The summary fields are
// derived from the live review set and are mutated only by the review service,
// always inside the same transaction as the review write itself.
type Restaurant struct {
	BaseModel
	Name        string           `gorm:"uniqueIndex;not null"`
	Description string           `gorm:"not null"`
	ImageURL    string
	Address     string
	CategoryID  string           `gorm:"type:uuid;not null;index"`
	Status      RestaurantStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedByID string           `gorm:"type:uuid;not null"`

	// Rating summary, source of truth is the reviews table.
	TotalRatingSum int64 `gorm:"not null;default:0"`
	ReviewCount    int64 `gorm:"not null;default:0"`
	TotalLikes     int64 `gorm:"not null;default:0"`
	TotalDislikes  int64 `gorm:"not null;default:0"`

	// Relations
	Category Category `gorm:"foreignKey:CategoryID"`
	Dishes   []Dish   `gorm:"foreignKey:RestaurantID"`
	Reviews  []Review `gorm:"foreignKey:RestaurantID"`
}

// AverageRating is computed at read time, never stored.
func (r *Restaurant) AverageRating() float64 {
	if r.ReviewCount == 0 {
		return 0
	}
	return float64(r.TotalRatingSum) / float64(r.ReviewCount)
}
