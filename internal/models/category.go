package models

type Category struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null"`
	Description string

	// Relations
	Restaurants []Restaurant `gorm:"foreignKey:CategoryID"`
}
