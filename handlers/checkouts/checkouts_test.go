package checkouts_test

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

	"provider-panel-server/handlers/checkouts"
	"provider-panel-server/models"
	"provider-panel-server/utils"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func setupTest(t *testing.T) (*gin.Engine, models.Provider) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// A named in-memory database per test keeps the pool on one store
	// without leaking rows between tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Provider{}, &models.Customer{}, &models.Service{},
		&models.ServiceMan{}, &models.Checkout{}, &models.Lead{}, &models.Coupon{},
	))
	utils.DB = db

	provider := models.Provider{FullName: "Test Provider", Email: "provider@example.com", Password: "x", Verified: true}
	require.NoError(t, db.Create(&provider).Error)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("provider", provider)
		c.Next()
	})
	checkouts.RegisterCheckoutRoutes(r.Group("/"))

	return r, provider
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func createService(t *testing.T, providerID uint) models.Service {
	t.Helper()
	service := models.Service{
		ProviderID:      providerID,
		Name:            "Deep Cleaning",
		Price:           2000,
		DiscountedPrice: 1800,
		Active:          true,
	}
	require.NoError(t, utils.DB.Create(&service).Error)
	return service
}

func TestCreateCheckout_EmbeddedCustomer(t *testing.T) {
	r, provider := setupTest(t)
	service := createService(t, provider.ID)

	w, env := doJSON(t, r, http.MethodPost, "/api/checkout", gin.H{
		"serviceId": service.ID,
		"serviceCustomer": gin.H{
			"fullName":    "Asha Rao",
			"email":       "asha@example.com",
			"phoneNumber": "9800000001",
		},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var checkout models.Checkout
	require.NoError(t, json.Unmarshal(env.Data, &checkout))
	assert.NotEmpty(t, checkout.BookingID)
	assert.Equal(t, models.OrderProcessing, checkout.OrderStatus)
	assert.Equal(t, 1800.0, checkout.TotalAmount)

	// The embedded customer must now be a stored row.
	var customer models.Customer
	require.NoError(t, utils.DB.Where("email = ?", "asha@example.com").First(&customer).Error)
	assert.Equal(t, customer.ID, checkout.CustomerID)
}

func TestCreateCheckout_CustomerByID(t *testing.T) {
	r, provider := setupTest(t)
	service := createService(t, provider.ID)

	customer := models.Customer{FullName: "Ravi Kumar", Email: "ravi@example.com"}
	require.NoError(t, utils.DB.Create(&customer).Error)

	w, env := doJSON(t, r, http.MethodPost, "/api/checkout", gin.H{
		"serviceId":       service.ID,
		"serviceCustomer": customer.ID,
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var checkout models.Checkout
	require.NoError(t, json.Unmarshal(env.Data, &checkout))
	assert.Equal(t, customer.ID, checkout.CustomerID)
}

func TestUpdateCheckout_WhitelistedFieldsOnly(t *testing.T) {
	r, provider := setupTest(t)
	service := createService(t, provider.ID)

	checkout := models.Checkout{
		BookingID:   "BK-test1",
		ProviderID:  provider.ID,
		ServiceID:   service.ID,
		TotalAmount: 1800,
	}
	require.NoError(t, utils.DB.Create(&checkout).Error)

	w, _ := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/checkout/%d", checkout.ID), gin.H{
		"isAccepted":  true,
		"orderStatus": "in_progress",
		"totalAmount": 9999, // not updatable; must be ignored
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Checkout
	require.NoError(t, utils.DB.First(&updated, checkout.ID).Error)
	assert.True(t, updated.IsAccepted)
	assert.NotNil(t, updated.AcceptedDate)
	assert.Equal(t, models.OrderInProgress, updated.OrderStatus)
	assert.Equal(t, 1800.0, updated.TotalAmount)
}

func TestUpdateCheckout_RejectsUnknownStatus(t *testing.T) {
	r, provider := setupTest(t)
	service := createService(t, provider.ID)

	checkout := models.Checkout{BookingID: "BK-test2", ProviderID: provider.ID, ServiceID: service.ID}
	require.NoError(t, utils.DB.Create(&checkout).Error)

	w, env := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/checkout/%d", checkout.ID), gin.H{"orderStatus": "teleported"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestGetCheckoutDetails_SummaryUsesLeadOverrides(t *testing.T) {
	r, provider := setupTest(t)
	service := createService(t, provider.ID)

	checkout := models.Checkout{
		BookingID:       "BK-test3",
		ProviderID:      provider.ID,
		ServiceID:       service.ID,
		TotalAmount:     1500,
		ServiceDiscount: 150,
	}
	require.NoError(t, utils.DB.Create(&checkout).Error)

	newAmount := 1400.0
	newDiscount := 100.0
	lead := models.Lead{
		CheckoutID:        checkout.ID,
		ProviderID:        provider.ID,
		NewAmount:         &newAmount,
		NewDiscountAmount: &newDiscount,
		IsAdminApproved:   true,
		ExtraServices: []models.ExtraService{
			{ServiceName: "Extra Cleaning", Price: 300, Total: 300},
		},
	}
	require.NoError(t, utils.DB.Create(&lead).Error)

	w, env := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/checkout/details/%d", checkout.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Summary struct {
			BaseAmount        float64 `json:"baseAmount"`
			DiscountAmount    float64 `json:"discountAmount"`
			ExtraServiceTotal float64 `json:"extraServiceTotal"`
			GrandTotal        float64 `json:"grandTotal"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, 1400.0, payload.Summary.BaseAmount)
	assert.Equal(t, 100.0, payload.Summary.DiscountAmount)
	assert.Equal(t, 300.0, payload.Summary.ExtraServiceTotal)
	assert.Equal(t, 1700.0, payload.Summary.GrandTotal)
}

func TestGetCheckoutDetails_NoLead(t *testing.T) {
	r, provider := setupTest(t)
	service := createService(t, provider.ID)

	checkout := models.Checkout{
		BookingID:   "BK-test4",
		ProviderID:  provider.ID,
		ServiceID:   service.ID,
		TotalAmount: 1000,
	}
	require.NoError(t, utils.DB.Create(&checkout).Error)

	w, env := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/checkout/details/%d", checkout.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Summary struct {
			BaseAmount float64 `json:"baseAmount"`
			GrandTotal float64 `json:"grandTotal"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, 1000.0, payload.Summary.BaseAmount)
	assert.Equal(t, 1000.0, payload.Summary.GrandTotal)
}
