package models

import "time"

type VendorService struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	VendorID uint `gorm:"index:idx_vendor_service,unique" json:"vendor_id"`

	Name   string  `gorm:"size:100;not null;index:idx_vendor_service,unique" json:"name"`
	Price  float64 `json:"price"`
	Active bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
