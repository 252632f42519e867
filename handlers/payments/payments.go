package payments

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentlink"
	"github.com/stripe/stripe-go/v80/price"
	"github.com/stripe/stripe-go/v80/webhook"
	"gorm.io/gorm"

	"provider-panel-server/handlers/auth"
	"provider-panel-server/models"
	"provider-panel-server/utils"
)

type generatePaymentLinkRequest struct {
	CheckoutID  uint    `json:"checkoutId"`
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"paymentType"` // "partial" or "full"
}

// GeneratePaymentLink creates a Stripe Payment Link for an amount tied to
// a booking, records it on the booking's lead history, and pushes it to
// the customer over WhatsApp when a phone number is on file.
func GeneratePaymentLink(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var req generatePaymentLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	if req.Amount <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "A positive amount is required")
		return
	}

	var checkout models.Checkout
	if err := utils.DB.Preload("Customer").
		Where("id = ? AND provider_id = ?", req.CheckoutID, provider.ID).
		First(&checkout).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Booking not found")
		return
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	// Payment links hang off a price; create a one-off price for this
	// amount. Stripe amounts are in the smallest currency unit.
	priceParams := &stripe.PriceParams{
		Currency:   stripe.String(string(stripe.CurrencyINR)),
		UnitAmount: stripe.Int64(int64(req.Amount * 100)),
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String("Booking " + checkout.BookingID),
		},
	}
	p, err := price.New(priceParams)
	if err != nil {
		log.Printf("Failed to create Stripe price: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to generate the payment link")
		return
	}

	linkParams := &stripe.PaymentLinkParams{
		LineItems: []*stripe.PaymentLinkLineItemParams{
			{Price: stripe.String(p.ID), Quantity: stripe.Int64(1)},
		},
	}
	linkParams.AddMetadata("checkout_id", checkout.BookingID)
	link, err := paymentlink.New(linkParams)
	if err != nil {
		log.Printf("Failed to create Stripe payment link: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to generate the payment link")
		return
	}

	appendLeadEntry(checkout, models.LeadEntry{
		StatusType:  "Payment link shared",
		PaymentLink: link.URL,
		PaymentType: req.PaymentType,
		CreatedAt:   time.Now(),
	})

	if checkout.Customer != nil && checkout.Customer.PhoneNumber != "" {
		utils.SendPaymentLinkWhatsApp(checkout.Customer.PhoneNumber, link.URL, req.Amount)
	}

	utils.RespondOK(c, http.StatusOK, gin.H{"paymentLink": link.URL})
}

// appendLeadEntry records a status entry on the booking's lead, creating
// the lead when the booking has no history yet. Failures are logged only:
// the payment action itself already succeeded.
func appendLeadEntry(checkout models.Checkout, entry models.LeadEntry) {
	var lead models.Lead
	err := utils.DB.Where("checkout_id = ?", checkout.ID).First(&lead).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		lead = models.Lead{
			CheckoutID: checkout.ID,
			ProviderID: checkout.ProviderID,
			Entries:    []models.LeadEntry{entry},
		}
		if err := utils.DB.Create(&lead).Error; err != nil {
			log.Printf("Failed to create lead for checkout %d: %v", checkout.ID, err)
		}
		return
	}
	if err != nil {
		log.Printf("Failed to load lead for checkout %d: %v", checkout.ID, err)
		return
	}

	lead.Entries = append(lead.Entries, entry)
	if err := utils.DB.Save(&lead).Error; err != nil {
		log.Printf("Failed to append lead entry for checkout %d: %v", checkout.ID, err)
	}
}

// HandleStripeWebhook marks bookings paid when Stripe reports a completed
// payment and appends a "Payment verified" entry on the lead history.
func HandleStripeWebhook(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Writer.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	endpointSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	event, err := webhook.ConstructEvent(payload, c.Request.Header.Get("Stripe-Signature"), endpointSecret)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if event.Type == "checkout.session.completed" {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			log.Printf("Error parsing webhook JSON: %v", err)
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}

		handlePaymentSuccess(session)
	}

	utils.RespondMessage(c, http.StatusOK, "Webhook processed")
}

func handlePaymentSuccess(session stripe.CheckoutSession) {
	bookingID := session.Metadata["checkout_id"]
	if bookingID == "" {
		log.Printf("Checkout session does not have checkout_id in metadata")
		return
	}

	var checkout models.Checkout
	if err := utils.DB.Where("booking_id = ?", bookingID).First(&checkout).Error; err != nil {
		log.Printf("Failed to find checkout %s: %v", bookingID, err)
		return
	}

	if err := utils.DB.Model(&checkout).Update("payment_status", models.PaymentPaid).Error; err != nil {
		log.Printf("Failed to mark checkout %s paid: %v", bookingID, err)
		return
	}

	appendLeadEntry(checkout, models.LeadEntry{
		StatusType:  "Payment verified",
		Description: "Payment confirmed by the payment gateway.",
		CreatedAt:   time.Now(),
	})

	log.Printf("Successfully marked checkout %s as paid", bookingID)
}
