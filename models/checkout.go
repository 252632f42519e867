package models

import (
	"time"

	"gorm.io/gorm"
)

// Order status values a checkout moves through.
const (
	OrderProcessing = "processing"
	OrderInProgress = "in_progress"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

// Payment status values.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

type Checkout struct {
	gorm.Model
	BookingID  string `gorm:"unique;not null" json:"bookingId"`
	ProviderID uint   `gorm:"index" json:"providerId"`

	ServiceID uint            `gorm:"index" json:"serviceId"`
	Service   ServiceSnapshot `gorm:"embedded;embeddedPrefix:service_" json:"service"`

	CustomerID uint      `gorm:"index" json:"customerId"`
	Customer   *Customer `gorm:"foreignKey:CustomerID" json:"serviceCustomer,omitempty"`

	ServiceManID *uint       `gorm:"index" json:"serviceManId,omitempty"`
	ServiceMan   *ServiceMan `gorm:"foreignKey:ServiceManID" json:"serviceMan,omitempty"`

	// Server-computed commercial figures, treated as opaque facts by the
	// panel. Absent values stay at zero.
	Subtotal             float64 `gorm:"type:decimal(10,2)" json:"subtotal"`
	ListingPrice         float64 `gorm:"type:decimal(10,2)" json:"listingPrice"`
	ServiceDiscount      float64 `gorm:"type:decimal(10,2)" json:"serviceDiscount"`
	ServiceDiscountPrice float64 `gorm:"type:decimal(10,2)" json:"serviceDiscountPrice"`
	PriceAfterDiscount   float64 `gorm:"type:decimal(10,2)" json:"priceAfterDiscount"`
	CouponDiscount       float64 `gorm:"type:decimal(10,2)" json:"couponDiscount"`
	CouponDiscountPrice  float64 `gorm:"type:decimal(10,2)" json:"couponDiscountPrice"`
	GST                  float64 `gorm:"type:decimal(10,2)" json:"gst"`
	ServiceGSTPrice      float64 `gorm:"type:decimal(10,2)" json:"serviceGSTPrice"`
	PlatformFeePrice     float64 `gorm:"type:decimal(10,2)" json:"platformFeePrice"`
	AssurityFee          float64 `gorm:"type:decimal(10,2)" json:"assurityfee"`
	AssurityChargesPrice float64 `gorm:"type:decimal(10,2)" json:"assurityChargesPrice"`
	TotalAmount          float64 `gorm:"type:decimal(10,2)" json:"totalAmount"`

	OrderStatus   string     `gorm:"type:varchar(20);default:'processing';index" json:"orderStatus"`
	PaymentStatus string     `gorm:"type:varchar(20);default:'pending'" json:"paymentStatus"`
	IsAccepted    bool       `gorm:"default:false" json:"isAccepted"`
	AcceptedDate  *time.Time `json:"acceptedDate,omitempty"`
	IsCompleted   bool       `gorm:"default:false" json:"isCompleted"`
	IsCanceled    bool       `gorm:"default:false" json:"isCanceled"`
}
