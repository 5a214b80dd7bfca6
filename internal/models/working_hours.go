package models

import "time"

// One row per weekday (0 = Sunday .. 6 = Saturday). Closed days keep the
// row with Active=false so all seven weekdays are always present.
type WorkingHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	VendorID uint `gorm:"index:idx_vendor_weekday,unique" json:"vendor_id"`

	Weekday int `gorm:"index:idx_vendor_weekday,unique" json:"weekday"`

	OpenTime  string `gorm:"size:5" json:"open_time"`
	CloseTime string `gorm:"size:5" json:"close_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
