package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LeadEntry is one status update in a lead's history. StatusType is an
// open set of labels supplied by the panel ("Lead request", "Payment
// verified", "Lead completed", ...); no transition rules are enforced.
type LeadEntry struct {
	StatusType  string    `json:"statusType"`
	Description string    `json:"description,omitempty"`
	ZoomLink    string    `json:"zoomLink,omitempty"`
	PaymentLink string    `json:"paymentLink,omitempty"`
	PaymentType string    `json:"paymentType,omitempty"` // "partial" or "full"
	Document    string    `json:"document,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ExtraService is an add-on charge negotiated on a lead. It only counts
// toward totals once the lead is admin approved.
type ExtraService struct {
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}

// Lead is the status/negotiation history attached to one checkout.
// Entries are append-only and chronological. The override amounts, when
// set, replace the checkout's own figures in the financial summary.
type Lead struct {
	gorm.Model
	CheckoutID uint      `gorm:"index;not null" json:"checkout"`
	Checkout   *Checkout `gorm:"foreignKey:CheckoutID" json:"-"`
	ProviderID uint      `gorm:"index" json:"providerId"`

	Entries datatypes.JSONSlice[LeadEntry] `gorm:"column:entries" json:"leads"`

	NewAmount           *float64                          `gorm:"type:decimal(10,2)" json:"newAmount,omitempty"`
	NewDiscountAmount   *float64                          `gorm:"type:decimal(10,2)" json:"newDiscountAmount,omitempty"`
	AfterDiscountAmount *float64                          `gorm:"type:decimal(10,2)" json:"afterDicountAmount,omitempty"`
	ExtraServices       datatypes.JSONSlice[ExtraService] `gorm:"column:extra_services" json:"extraService"`
	IsAdminApproved     bool                              `gorm:"default:false" json:"isAdminApproved"`

	CommissionPaid bool `gorm:"default:false" json:"commissionPaid"`
}

// HasStatus reports whether any entry in the history carries the given
// status label.
func (l *Lead) HasStatus(statusType string) bool {
	for _, entry := range l.Entries {
		if entry.StatusType == statusType {
			return true
		}
	}
	return false
}
