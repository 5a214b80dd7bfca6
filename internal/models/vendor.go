package models

import "time"

type Vendor struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	Email       string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone       string `gorm:"size:20" json:"phone"`
	Location    string `gorm:"size:100" json:"location"`
	Description string `gorm:"size:255" json:"description"`

	SlotDurationMinutes int `gorm:"default:30" json:"slot_duration_minutes"`

	Services     []VendorService `json:"services"`
	WorkingHours []WorkingHours  `json:"working_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
