package models

import "time"

type Pet struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClientID uint `gorm:"index" json:"client_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Breed string `gorm:"size:100" json:"breed"`
	Notes string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
