package payments

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"provider-panel-server/finance"
	"provider-panel-server/handlers/auth"
	"provider-panel-server/handlers/wallet"
	"provider-panel-server/models"
	"provider-panel-server/utils"
)

const defaultCommissionRate = 0.8

// commissionRate is the provider's share of the booking total.
func commissionRate() float64 {
	raw := os.Getenv("COMMISSION_RATE")
	if raw == "" {
		return defaultCommissionRate
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate <= 0 || rate > 1 {
		log.Printf("Ignoring invalid COMMISSION_RATE %q", raw)
		return defaultCommissionRate
	}
	return rate
}

// DistributeLeadCommission credits the provider wallet with their share
// of a completed lead's grand total. The payout reference is unique per
// lead, so calling this twice cannot double-pay.
func DistributeLeadCommission(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var req struct {
		LeadID uint `json:"leadId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	var lead models.Lead
	if err := utils.DB.Where("id = ? AND provider_id = ?", req.LeadID, provider.ID).
		First(&lead).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "No lead found")
		return
	}

	if !lead.HasStatus("Lead completed") {
		utils.RespondError(c, http.StatusBadRequest, "The lead is not completed yet")
		return
	}

	if lead.CommissionPaid {
		utils.RespondError(c, http.StatusConflict, "Commission has already been distributed for this lead")
		return
	}

	var checkout models.Checkout
	if err := utils.DB.First(&checkout, lead.CheckoutID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Booking not found")
		return
	}

	summary := finance.ComputeSummary(checkout, &lead)
	amount := summary.GrandTotal * commissionRate()
	reference := fmt.Sprintf("lead-commission-%d", lead.ID)

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		w, err := wallet.EnsureWallet(tx, provider.ID)
		if err != nil {
			return err
		}
		if err := wallet.Credit(tx, &w, amount, reference,
			fmt.Sprintf("Commission for booking %s", checkout.BookingID)); err != nil {
			return err
		}
		return tx.Model(&lead).Update("commission_paid", true).Error
	})
	if err != nil {
		// A duplicate reference means a concurrent payout already landed.
		log.Printf("Failed to distribute commission for lead %d: %v", lead.ID, err)
		utils.RespondError(c, http.StatusConflict, "Commission could not be distributed; it may already have been paid")
		return
	}

	utils.RespondOK(c, http.StatusOK, gin.H{
		"amount":    amount,
		"reference": reference,
	})
}
