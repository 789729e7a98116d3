package models

import "time"

// Service catalog entry. Code is the service_type identifier carried by
// appointments (e.g. "walk_30", "doggy_day_camp", "petsit_your_location").
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Code        string  `gorm:"size:100;uniqueIndex;not null" json:"code"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
