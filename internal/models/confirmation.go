package models

import "time"

// Confirmation is the artifact handed to the payment flow after a booking
// is reserved. It tracks the payment lifecycle; the Booking row holds the
// slot for as long as the confirmation is pending.
type Confirmation struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	VendorID   uint   `gorm:"index" json:"vendor_id"`
	VendorName string `gorm:"size:100" json:"vendor_name"`
	BookingID  uint   `gorm:"index" json:"booking_id"`

	Service  string  `gorm:"size:100" json:"service"`
	Price    float64 `json:"price"`
	Date     string  `gorm:"size:10" json:"date"`
	Time     string  `gorm:"size:5" json:"time"`
	Customer string  `gorm:"size:100" json:"customer"`

	Status string `gorm:"size:20;default:'pending_payment'" json:"status"`

	PaymentID     string  `gorm:"size:40" json:"payment_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `gorm:"size:20" json:"payment_method"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
