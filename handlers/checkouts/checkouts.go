package checkouts

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"provider-panel-server/finance"
	"provider-panel-server/handlers/auth"
	"provider-panel-server/models"
	"provider-panel-server/utils"
)

// CreateCheckout books a service for a customer. The customer reference
// may arrive as a bare id or an embedded object; both are resolved here.
func CreateCheckout(c *gin.Context) {
	var input struct {
		ProviderID      uint               `json:"providerId"`
		ServiceID       uint               `json:"serviceId"`
		ServiceCustomer models.CustomerRef `json:"serviceCustomer"`
		CouponCode      string             `json:"couponCode"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid checkout data")
		return
	}

	var service models.Service
	if err := utils.DB.First(&service, input.ServiceID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Service not found")
		return
	}

	customer, err := input.ServiceCustomer.Resolve(utils.DB)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Customer not found")
		return
	}

	subtotal := service.Price
	serviceDiscount := service.Price - service.DiscountedPrice
	if service.DiscountedPrice == 0 {
		serviceDiscount = 0
	}
	priceAfterDiscount := subtotal - serviceDiscount

	couponDiscount := 0.0
	if input.CouponCode != "" {
		var coupon models.Coupon
		err := utils.DB.Where("code = ? AND active = ?", input.CouponCode, true).First(&coupon).Error
		if err == nil && priceAfterDiscount >= coupon.MinOrderValue {
			switch coupon.DiscountType {
			case models.DiscountPercentage:
				couponDiscount = priceAfterDiscount * coupon.DiscountValue / 100
			case models.DiscountFixed:
				couponDiscount = coupon.DiscountValue
			}
		}
	}

	checkout := models.Checkout{
		BookingID:  fmt.Sprintf("BK-%s", uuid.NewString()[:8]),
		ProviderID: service.ProviderID,
		ServiceID:  service.ID,
		Service: models.ServiceSnapshot{
			Name:            service.Name,
			Price:           service.Price,
			DiscountedPrice: service.DiscountedPrice,
		},
		CustomerID:           customer.ID,
		Subtotal:             subtotal,
		ListingPrice:         service.Price,
		ServiceDiscount:      serviceDiscount,
		ServiceDiscountPrice: priceAfterDiscount,
		PriceAfterDiscount:   priceAfterDiscount,
		CouponDiscount:       couponDiscount,
		CouponDiscountPrice:  priceAfterDiscount - couponDiscount,
		TotalAmount:          priceAfterDiscount - couponDiscount,
		OrderStatus:          models.OrderProcessing,
		PaymentStatus:        models.PaymentPending,
	}

	if err := utils.DB.Create(&checkout).Error; err != nil {
		log.Printf("Failed to create checkout: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create the booking")
		return
	}

	checkout.Customer = customer
	utils.RespondOK(c, http.StatusCreated, checkout)
}

// ListCheckouts returns all bookings for a provider, newest first.
func ListCheckouts(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	providerID, err := strconv.ParseUint(c.Param("providerId"), 10, 64)
	if err != nil || uint(providerID) != provider.ID {
		utils.RespondError(c, http.StatusForbidden, "You are not allowed to access these bookings")
		return
	}

	var checkouts []models.Checkout
	if err := utils.DB.Preload("Customer").Preload("ServiceMan").
		Where("provider_id = ?", provider.ID).
		Order("created_at DESC").
		Find(&checkouts).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	utils.RespondOK(c, http.StatusOK, checkouts)
}

// GetCheckoutDetails returns a single booking together with its derived
// financial summary. The summary reconciles the checkout with its lead
// record; a booking without a lead simply gets the checkout's own figures.
func GetCheckoutDetails(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var checkout models.Checkout
	if err := utils.DB.Preload("Customer").Preload("ServiceMan").
		Where("id = ? AND provider_id = ?", c.Param("id"), provider.ID).
		First(&checkout).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Booking not found")
		return
	}

	var lead models.Lead
	leadPtr := &lead
	if err := utils.DB.Where("checkout_id = ?", checkout.ID).First(&lead).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch the booking history")
			return
		}
		leadPtr = nil
	}

	utils.RespondOK(c, http.StatusOK, gin.H{
		"checkout": checkout,
		"summary":  finance.ComputeSummary(checkout, leadPtr),
	})
}

// UpdateCheckout applies a partial update. Only the whitelisted status
// fields below can change; anything else in the payload is ignored.
func UpdateCheckout(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var checkout models.Checkout
	if err := utils.DB.Where("id = ? AND provider_id = ?", c.Param("id"), provider.ID).
		First(&checkout).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Booking not found")
		return
	}

	var input struct {
		IsAccepted    *bool   `json:"isAccepted"`
		OrderStatus   *string `json:"orderStatus"`
		PaymentStatus *string `json:"paymentStatus"`
		IsCompleted   *bool   `json:"isCompleted"`
		IsCanceled    *bool   `json:"isCanceled"`
		ServiceManID  *uint   `json:"serviceManId"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid input data")
		return
	}

	updates := map[string]interface{}{}

	if input.IsAccepted != nil {
		updates["is_accepted"] = *input.IsAccepted
		if *input.IsAccepted {
			updates["accepted_date"] = time.Now()
		}
	}
	if input.OrderStatus != nil {
		switch *input.OrderStatus {
		case models.OrderProcessing, models.OrderInProgress, models.OrderCompleted, models.OrderCancelled:
			updates["order_status"] = *input.OrderStatus
		default:
			utils.RespondError(c, http.StatusBadRequest, "Invalid order status")
			return
		}
	}
	if input.PaymentStatus != nil {
		switch *input.PaymentStatus {
		case models.PaymentPending, models.PaymentPaid, models.PaymentFailed:
			updates["payment_status"] = *input.PaymentStatus
		default:
			utils.RespondError(c, http.StatusBadRequest, "Invalid payment status")
			return
		}
	}
	if input.IsCompleted != nil {
		updates["is_completed"] = *input.IsCompleted
	}
	if input.IsCanceled != nil {
		updates["is_canceled"] = *input.IsCanceled
	}
	if input.ServiceManID != nil {
		var serviceMan models.ServiceMan
		if err := utils.DB.Where("id = ? AND provider_id = ?", *input.ServiceManID, provider.ID).
			First(&serviceMan).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Service man not found")
			return
		}
		updates["service_man_id"] = *input.ServiceManID
	}

	if len(updates) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "No updatable fields provided")
		return
	}

	if err := utils.DB.Model(&checkout).Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update the booking")
		return
	}

	utils.RespondOK(c, http.StatusOK, checkout)
}
