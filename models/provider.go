package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// KYC review states for a provider's onboarding documents.
const (
	KYCPending  = "pending"
	KYCApproved = "approved"
	KYCRejected = "rejected"
)

type Provider struct {
	gorm.Model
	FullName    string `gorm:"not null" json:"fullName"`
	Email       string `gorm:"unique;not null" json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `gorm:"not null" json:"-"`

	StoreName string `json:"storeName"`
	StoreOpen bool   `gorm:"default:true" json:"storeOpen"`
	AboutUs   string `gorm:"type:text" json:"aboutUs"`
	Address   string `json:"address"`
	City      string `json:"city"`

	Gallery datatypes.JSONSlice[string] `json:"gallery"`

	KYCStatus    string                      `gorm:"default:'pending'" json:"kycStatus"`
	KYCDocuments datatypes.JSONSlice[string] `json:"kycDocuments"`
	KYCRemark    string                      `json:"kycRemark"`

	Verified       bool       `gorm:"default:false" json:"verified"`
	OTP            string     `json:"-"`
	OTPGeneratedAt *time.Time `json:"-"`
	RefreshToken   string     `json:"-"`
}
