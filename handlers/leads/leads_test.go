package leads_test

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

	"provider-panel-server/handlers/leads"
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
		&models.Provider{}, &models.Customer{}, &models.Service{},
		&models.ServiceMan{}, &models.Checkout{}, &models.Lead{},
	))
	utils.DB = db

	provider := models.Provider{FullName: "Test Provider", Email: "provider@example.com", Password: "x", Verified: true}
	require.NoError(t, db.Create(&provider).Error)

	checkout := models.Checkout{BookingID: "BK-lead-test", ProviderID: provider.ID, TotalAmount: 1000}
	require.NoError(t, db.Create(&checkout).Error)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("provider", provider)
		c.Next()
	})
	leads.RegisterLeadRoutes(r.Group("/"))

	return r, provider, checkout
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	raw := []byte(nil)
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCreateLead_FirstEntry(t *testing.T) {
	r, _, checkout := setupTest(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/leads", gin.H{
		"checkout": checkout.ID,
		"entry":    gin.H{"statusType": "Lead request", "description": "Customer asked for a visit"},
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var lead models.Lead
	require.NoError(t, json.Unmarshal(env.Data, &lead))
	require.Len(t, lead.Entries, 1)
	assert.Equal(t, "Lead request", lead.Entries[0].StatusType)
	assert.False(t, lead.Entries[0].CreatedAt.IsZero())
}

func TestCreateLead_RequiresStatusType(t *testing.T) {
	r, _, checkout := setupTest(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/leads", gin.H{
		"checkout": checkout.ID,
		"entry":    gin.H{"description": "no status"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestUpdateLead_AppendsEntriesInOrder(t *testing.T) {
	r, provider, checkout := setupTest(t)

	lead := models.Lead{
		CheckoutID: checkout.ID,
		ProviderID: provider.ID,
		Entries:    []models.LeadEntry{{StatusType: "Lead request"}},
	}
	require.NoError(t, utils.DB.Create(&lead).Error)

	w, _ := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/leads/%d", lead.ID), gin.H{
		"entry": gin.H{"statusType": "Payment verified", "paymentType": "full"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, env := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/leads/%d", lead.ID), gin.H{
		"entry": gin.H{"statusType": "Lead completed"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Lead
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	require.Len(t, updated.Entries, 3)
	assert.Equal(t, "Lead request", updated.Entries[0].StatusType)
	assert.Equal(t, "Payment verified", updated.Entries[1].StatusType)
	assert.Equal(t, "Lead completed", updated.Entries[2].StatusType)
}

func TestUpdateLead_SetsOverrides(t *testing.T) {
	r, provider, checkout := setupTest(t)

	lead := models.Lead{CheckoutID: checkout.ID, ProviderID: provider.ID}
	require.NoError(t, utils.DB.Create(&lead).Error)

	w, env := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/leads/%d", lead.ID), gin.H{
		"newAmount":         800,
		"newDiscountAmount": 60,
		"isAdminApproved":   true,
		"extraService": []gin.H{
			{"serviceName": "Extra Cleaning", "price": 300, "discount": 0, "total": 300},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Lead
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	require.NotNil(t, updated.NewAmount)
	assert.Equal(t, 800.0, *updated.NewAmount)
	require.NotNil(t, updated.NewDiscountAmount)
	assert.Equal(t, 60.0, *updated.NewDiscountAmount)
	assert.True(t, updated.IsAdminApproved)
	require.Len(t, updated.ExtraServices, 1)
	assert.Equal(t, 300.0, updated.ExtraServices[0].Total)
}

func TestGetLeadByCheckout(t *testing.T) {
	r, provider, checkout := setupTest(t)

	lead := models.Lead{
		CheckoutID: checkout.ID,
		ProviderID: provider.ID,
		Entries:    []models.LeadEntry{{StatusType: "Lead request"}},
	}
	require.NoError(t, utils.DB.Create(&lead).Error)

	w, env := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/leads/checkout/%d", checkout.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var found models.Lead
	require.NoError(t, json.Unmarshal(env.Data, &found))
	assert.Equal(t, lead.ID, found.ID)
}

func TestGetLeadByCheckout_NoLeadFound(t *testing.T) {
	r, _, checkout := setupTest(t)

	w, env := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/leads/checkout/%d", checkout.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "No lead found", env.Message)
}
