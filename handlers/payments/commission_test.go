package payments_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"provider-panel-server/handlers/payments"
	"provider-panel-server/models"
	"provider-panel-server/utils"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func setupTest(t *testing.T) (*gin.Engine, models.Provider, models.Checkout) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Provider{}, &models.Customer{}, &models.Checkout{},
		&models.Lead{}, &models.Wallet{}, &models.WalletTransaction{},
	))
	utils.DB = db

	provider := models.Provider{FullName: "Test Provider", Email: "provider@example.com", Password: "x", Verified: true}
	require.NoError(t, db.Create(&provider).Error)

	checkout := models.Checkout{BookingID: "BK-commission-test", ProviderID: provider.ID, TotalAmount: 1000}
	require.NoError(t, db.Create(&checkout).Error)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("provider", provider)
		c.Next()
	})
	payments.RegisterPaymentRoutes(r.Group("/"))

	return r, provider, checkout
}

func distribute(t *testing.T, r *gin.Engine, leadID uint) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	raw, err := json.Marshal(gin.H{"leadId": leadID})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/distributeLeadCommission", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestDistributeLeadCommission(t *testing.T) {
	r, provider, checkout := setupTest(t)

	newAmount := 1400.0
	lead := models.Lead{
		CheckoutID: checkout.ID,
		ProviderID: provider.ID,
		NewAmount:  &newAmount,
		Entries: []models.LeadEntry{
			{StatusType: "Lead request"},
			{StatusType: "Lead completed"},
		},
		ExtraServices: []models.ExtraService{
			{ServiceName: "Extra", Price: 300, Total: 300},
		},
		IsAdminApproved: true,
	}
	require.NoError(t, utils.DB.Create(&lead).Error)

	w, env := distribute(t, r, lead.ID)
	require.Equal(t, http.StatusOK, w.Code)

	var payout struct {
		Amount    float64 `json:"amount"`
		Reference string  `json:"reference"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payout))
	// (1400 + 300) * 0.8
	assert.InDelta(t, 1360.0, payout.Amount, 0.001)
	assert.Equal(t, fmt.Sprintf("lead-commission-%d", lead.ID), payout.Reference)

	var wallet models.Wallet
	require.NoError(t, utils.DB.Where("provider_id = ?", provider.ID).First(&wallet).Error)
	assert.InDelta(t, 1360.0, wallet.Balance, 0.001)

	var tx models.WalletTransaction
	require.NoError(t, utils.DB.Where("reference = ?", payout.Reference).First(&tx).Error)
	assert.Equal(t, models.TransactionCredit, tx.Type)
}

func TestDistributeLeadCommission_RequiresCompletedLead(t *testing.T) {
	r, provider, checkout := setupTest(t)

	lead := models.Lead{
		CheckoutID: checkout.ID,
		ProviderID: provider.ID,
		Entries:    []models.LeadEntry{{StatusType: "Lead request"}},
	}
	require.NoError(t, utils.DB.Create(&lead).Error)

	w, env := distribute(t, r, lead.ID)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestDistributeLeadCommission_PaysOnlyOnce(t *testing.T) {
	r, provider, checkout := setupTest(t)

	lead := models.Lead{
		CheckoutID: checkout.ID,
		ProviderID: provider.ID,
		Entries:    []models.LeadEntry{{StatusType: "Lead completed"}},
	}
	require.NoError(t, utils.DB.Create(&lead).Error)

	w, _ := distribute(t, r, lead.ID)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := distribute(t, r, lead.ID)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, env.Success)

	var wallet models.Wallet
	require.NoError(t, utils.DB.Where("provider_id = ?", provider.ID).First(&wallet).Error)
	assert.InDelta(t, 800.0, wallet.Balance, 0.001)
}
