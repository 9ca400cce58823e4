package models

// Vehicle represents a vehicle in the garage inventory
type Vehicle struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Brand string `gorm:"not null" json:"brand"`
	Year  int    `gorm:"not null" json:"year"`
}
