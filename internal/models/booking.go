package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VendorID uint   `gorm:"index" json:"vendor_id"`
	Vendor   Vendor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date string `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;not null" json:"time"`  // HH:MM, grid aligned

	Service  string `gorm:"size:100" json:"service"`
	Customer string `gorm:"size:100" json:"customer"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	// Payment fields are empty until the gateway confirms.
	PaymentStatus string  `gorm:"size:20" json:"payment_status"`
	PaymentID     string  `gorm:"size:40" json:"payment_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `gorm:"size:20" json:"payment_method"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
