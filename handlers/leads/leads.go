package leads

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"provider-panel-server/handlers/auth"
	"provider-panel-server/models"
	"provider-panel-server/utils"
)

type entryInput struct {
	StatusType  string `json:"statusType"`
	Description string `json:"description"`
	ZoomLink    string `json:"zoomLink"`
	PaymentLink string `json:"paymentLink"`
	PaymentType string `json:"paymentType"`
	Document    string `json:"document"`
}

func (in entryInput) toEntry() models.LeadEntry {
	return models.LeadEntry{
		StatusType:  in.StatusType,
		Description: in.Description,
		ZoomLink:    in.ZoomLink,
		PaymentLink: in.PaymentLink,
		PaymentType: in.PaymentType,
		Document:    in.Document,
		CreatedAt:   time.Now(),
	}
}

// ListLeads returns all leads belonging to the provider's bookings.
func ListLeads(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var leads []models.Lead
	if err := utils.DB.Where("provider_id = ?", provider.ID).
		Order("created_at DESC").
		Find(&leads).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch leads")
		return
	}

	utils.RespondOK(c, http.StatusOK, leads)
}

func GetLead(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var lead models.Lead
	if err := utils.DB.Where("id = ? AND provider_id = ?", c.Param("id"), provider.ID).
		First(&lead).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "No lead found")
		return
	}

	utils.RespondOK(c, http.StatusOK, lead)
}

// GetLeadByCheckout finds the lead attached to one booking. A booking
// with no history yet answers 404 with "No lead found" — the panel treats
// that as the empty state, not an error.
func GetLeadByCheckout(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var lead models.Lead
	if err := utils.DB.Where("checkout_id = ? AND provider_id = ?", c.Param("checkoutId"), provider.ID).
		First(&lead).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "No lead found")
		return
	}

	utils.RespondOK(c, http.StatusOK, lead)
}

// CreateLead opens a lead on a checkout with its first status entry.
func CreateLead(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var input struct {
		CheckoutID uint       `json:"checkout"`
		Entry      entryInput `json:"entry"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid lead data")
		return
	}

	if input.Entry.StatusType == "" {
		utils.RespondError(c, http.StatusBadRequest, "A status type is required")
		return
	}

	var checkout models.Checkout
	if err := utils.DB.Where("id = ? AND provider_id = ?", input.CheckoutID, provider.ID).
		First(&checkout).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Booking not found")
		return
	}

	lead := models.Lead{
		CheckoutID: checkout.ID,
		ProviderID: provider.ID,
		Entries:    datatypes.NewJSONSlice([]models.LeadEntry{input.Entry.toEntry()}),
	}

	if err := utils.DB.Create(&lead).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create the lead")
		return
	}

	utils.RespondOK(c, http.StatusCreated, lead)
}

// UpdateLead appends a status entry and/or sets the override fields. The
// entry history is append-only: existing entries are never rewritten or
// reordered, and status labels are free text — no transition rules.
func UpdateLead(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var lead models.Lead
	if err := utils.DB.Where("id = ? AND provider_id = ?", c.Param("id"), provider.ID).
		First(&lead).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "No lead found")
		return
	}

	var input struct {
		Entry               *entryInput            `json:"entry"`
		NewAmount           *float64               `json:"newAmount"`
		NewDiscountAmount   *float64               `json:"newDiscountAmount"`
		AfterDiscountAmount *float64               `json:"afterDicountAmount"`
		ExtraServices       *[]models.ExtraService `json:"extraService"`
		IsAdminApproved     *bool                  `json:"isAdminApproved"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid input data")
		return
	}

	if input.Entry != nil {
		if input.Entry.StatusType == "" {
			utils.RespondError(c, http.StatusBadRequest, "A status type is required")
			return
		}
		lead.Entries = append(lead.Entries, input.Entry.toEntry())
	}
	if input.NewAmount != nil {
		lead.NewAmount = input.NewAmount
	}
	if input.NewDiscountAmount != nil {
		lead.NewDiscountAmount = input.NewDiscountAmount
	}
	if input.AfterDiscountAmount != nil {
		lead.AfterDiscountAmount = input.AfterDiscountAmount
	}
	if input.ExtraServices != nil {
		lead.ExtraServices = datatypes.NewJSONSlice(*input.ExtraServices)
	}
	if input.IsAdminApproved != nil {
		lead.IsAdminApproved = *input.IsAdminApproved
	}

	if err := utils.DB.Save(&lead).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update the lead")
		return
	}

	utils.RespondOK(c, http.StatusOK, lead)
}

func DeleteLead(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	result := utils.DB.Where("id = ? AND provider_id = ?", c.Param("id"), provider.ID).
		Delete(&models.Lead{})
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to delete the lead")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, "No lead found")
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Lead deleted successfully")
}
