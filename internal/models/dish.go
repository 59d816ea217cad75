package models

// Dish summary fields follow the same discipline as Restaurant, without the
// vote aggregates: dish reviews do not support likes/dislikes.
type Dish struct {
	BaseModel
	RestaurantID string  `gorm:"type:uuid;not null;index"`
	Name         string  `gorm:"not null"`
	Description  string
	Price        float64 `gorm:"not null"`
	ImageURL     string

	TotalRatingSum int64 `gorm:"not null;default:0"`
	ReviewCount    int64 `gorm:"not null;default:0"`

	// Relations
	Restaurant Restaurant   `gorm:"foreignKey:RestaurantID"`
	Reviews    []DishReview `gorm:"foreignKey:DishID"`
}

func (d *Dish) AverageRating() float64 {
	if d.ReviewCount == 0 {
		return 0
	}
	return float64(d.TotalRatingSum) / float64(d.ReviewCount)
}
