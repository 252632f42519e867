package models

import (
	"time"

	"gorm.io/gorm"
)

type Ad struct {
	gorm.Model
	ProviderID  uint       `gorm:"index" json:"providerId"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	ImageURL    string     `json:"imageUrl"`
	Placement   string     `json:"placement"` // e.g. "home_banner", "category_top"
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Active      bool       `gorm:"default:true" json:"active"`
}
