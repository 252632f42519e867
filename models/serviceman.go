package models

import "gorm.io/gorm"

// ServiceMan is a field worker managed by a provider and assignable to
// checkouts.
type ServiceMan struct {
	gorm.Model
	ProviderID  uint   `gorm:"index;not null" json:"providerId"`
	FullName    string `gorm:"not null" json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	IdentityDoc string `json:"identityDoc"`
	Active      bool   `gorm:"default:true" json:"active"`
}
