package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

type Coupon struct {
	gorm.Model
	ProviderID      uint       `gorm:"index" json:"providerId"`
	Code            string     `gorm:"uniqueIndex;not null" json:"code"`
	DiscountType    string     `gorm:"not null" json:"discountType"` // percentage or fixed
	DiscountValue   float64    `gorm:"type:decimal(10,2)" json:"discountValue"`
	MinOrderValue   float64    `gorm:"type:decimal(10,2)" json:"minOrderValue"`
	ValidFrom       *time.Time `json:"validFrom,omitempty"`
	ValidTo         *time.Time `json:"validTo,omitempty"`
	MaxUsagePerUser int        `json:"maxUsagePerUser"`
	Terms           string     `gorm:"type:text" json:"terms"`
	Active          bool       `gorm:"default:true" json:"active"`
}
