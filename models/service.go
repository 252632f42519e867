package models

import "gorm.io/gorm"

// Service is a catalog entry owned by a provider. Checkouts carry a
// snapshot of the service at booking time so later catalog edits do not
// rewrite past bookings.
type Service struct {
	gorm.Model
	ProviderID      uint    `gorm:"index" json:"providerId"`
	Name            string  `gorm:"not null" json:"name"`
	Description     string  `gorm:"type:text" json:"description"`
	Price           float64 `gorm:"type:decimal(10,2)" json:"price"`
	DiscountedPrice float64 `gorm:"type:decimal(10,2)" json:"discountedPrice"`
	Active          bool    `gorm:"default:true" json:"active"`
}

type ServiceSnapshot struct {
	Name            string  `json:"name"`
	Price           float64 `gorm:"type:decimal(10,2)" json:"price"`
	DiscountedPrice float64 `gorm:"type:decimal(10,2)" json:"discountedPrice"`
}
