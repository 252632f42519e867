package coupons_test

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

	"provider-panel-server/handlers/coupons"
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

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Provider{}, &models.Coupon{}))
	utils.DB = db

	provider := models.Provider{FullName: "Test Provider", Email: "provider@example.com", Password: "x", Verified: true}
	require.NoError(t, db.Create(&provider).Error)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("provider", provider)
		c.Next()
	})
	coupons.RegisterCouponRoutes(r.Group("/"))

	return r, provider
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

func TestCreateCoupon(t *testing.T) {
	r, provider := setupTest(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/coupon", gin.H{
		"code":          "SUMMER20",
		"discountType":  models.DiscountPercentage,
		"discountValue": 20,
		"minOrderValue": 500,
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var coupon models.Coupon
	require.NoError(t, json.Unmarshal(env.Data, &coupon))
	assert.Equal(t, "SUMMER20", coupon.Code)
	assert.Equal(t, provider.ID, coupon.ProviderID)
	assert.True(t, coupon.Active)
}

func TestCreateCoupon_RejectsUnknownDiscountType(t *testing.T) {
	r, _ := setupTest(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/coupon", gin.H{
		"code":         "BROKEN",
		"discountType": "bogus",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestListCoupons_Search(t *testing.T) {
	r, provider := setupTest(t)

	for _, code := range []string{"WELCOME10", "WELCOME20", "FESTIVE50"} {
		require.NoError(t, utils.DB.Create(&models.Coupon{
			ProviderID:   provider.ID,
			Code:         code,
			DiscountType: models.DiscountFixed,
		}).Error)
	}

	w, env := doJSON(t, r, http.MethodGet, "/api/coupon?search=WELCOME", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var found []models.Coupon
	require.NoError(t, json.Unmarshal(env.Data, &found))
	assert.Len(t, found, 2)
}

func TestListCoupons_ScopedToProvider(t *testing.T) {
	r, provider := setupTest(t)

	other := models.Provider{FullName: "Other", Email: "other@example.com", Password: "x"}
	require.NoError(t, utils.DB.Create(&other).Error)
	require.NoError(t, utils.DB.Create(&models.Coupon{
		ProviderID: other.ID, Code: "THEIRS", DiscountType: models.DiscountFixed,
	}).Error)
	require.NoError(t, utils.DB.Create(&models.Coupon{
		ProviderID: provider.ID, Code: "MINE", DiscountType: models.DiscountFixed,
	}).Error)

	_, env := doJSON(t, r, http.MethodGet, "/api/coupon", nil)

	var found []models.Coupon
	require.NoError(t, json.Unmarshal(env.Data, &found))
	require.Len(t, found, 1)
	assert.Equal(t, "MINE", found[0].Code)
}

func TestUpdateCoupon(t *testing.T) {
	r, provider := setupTest(t)

	coupon := models.Coupon{ProviderID: provider.ID, Code: "OLD", DiscountType: models.DiscountFixed, DiscountValue: 50}
	require.NoError(t, utils.DB.Create(&coupon).Error)

	w, env := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/coupon/%d", coupon.ID), gin.H{
		"code":          "RENAMED",
		"discountType":  models.DiscountPercentage,
		"discountValue": 15,
		"active":        false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Coupon
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "RENAMED", updated.Code)
	assert.Equal(t, models.DiscountPercentage, updated.DiscountType)
	assert.False(t, updated.Active)
}

func TestDeleteCoupon_NotFound(t *testing.T) {
	r, _ := setupTest(t)

	w, env := doJSON(t, r, http.MethodDelete, "/api/coupon/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}
