package models

import "time"

// Appointment is the central scheduling record. Walks are single-date,
// single-time entries; day care and overnight stays span an inclusive
// date range and carry no time of day.
//
// Dates are stored as YYYY-MM-DD and times as 24h HH:MM so that the
// calendar engine can compare them lexicographically.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	WalkerID *uint `json:"walker_id"`
	Walker   *User `gorm:"foreignKey:WalkerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"walker,omitempty"`

	SitterID *uint `json:"sitter_id"`
	Sitter   *User `gorm:"foreignKey:SitterID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"sitter,omitempty"`

	Pets []Pet `gorm:"many2many:appointment_pets;" json:"pets"`

	ServiceType string `gorm:"size:100;not null" json:"service_type"`

	ScheduledDate string `gorm:"size:10;index;not null" json:"scheduled_date"`
	EndDate       string `gorm:"size:10;not null" json:"end_date"`
	ScheduledTime string `gorm:"size:5" json:"scheduled_time"`

	DurationValue int    `json:"duration_value"`
	DurationType  string `gorm:"size:10" json:"duration_type"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`
	Notes  string `gorm:"size:500" json:"notes"`

	// Completion report, written by the walk execution subsystem.
	ActualDurationMinutes int        `json:"actual_duration_minutes"`
	PeeCount              int        `json:"pee_count"`
	PoopCount             int        `json:"poop_count"`
	WaterGiven            bool       `json:"water_given"`
	WalkerNotes           string     `gorm:"size:500" json:"walker_notes"`
	GPSRoute              string     `gorm:"type:text" json:"gps_route"`
	DistanceMeters        float64    `json:"distance_meters"`
	StartTime             *time.Time `json:"start_time"`
	EndTime               *time.Time `json:"end_time"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
