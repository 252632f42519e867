package coupons

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"provider-panel-server/handlers/auth"
	"provider-panel-server/models"
	"provider-panel-server/utils"
)

// ListCoupons returns the provider's coupons, optionally filtered by a
// substring match on the code (?search=).
func ListCoupons(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	query := utils.DB.Where("provider_id = ?", provider.ID)
	if search := c.Query("search"); search != "" {
		query = query.Where("code LIKE ?", "%"+search+"%")
	}

	var coupons []models.Coupon
	if err := query.Order("created_at DESC").Find(&coupons).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch coupons")
		return
	}

	utils.RespondOK(c, http.StatusOK, coupons)
}

func GetCoupon(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var coupon models.Coupon
	if err := utils.DB.Where("id = ? AND provider_id = ?", c.Param("id"), provider.ID).
		First(&coupon).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Coupon not found")
		return
	}

	utils.RespondOK(c, http.StatusOK, coupon)
}

func CreateCoupon(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var coupon models.Coupon
	if err := c.ShouldBindJSON(&coupon); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid coupon data")
		return
	}

	if coupon.Code == "" {
		utils.RespondError(c, http.StatusBadRequest, "A coupon code is required")
		return
	}
	if coupon.DiscountType != models.DiscountPercentage && coupon.DiscountType != models.DiscountFixed {
		utils.RespondError(c, http.StatusBadRequest, "Discount type must be percentage or fixed")
		return
	}

	coupon.ID = 0
	coupon.ProviderID = provider.ID

	if err := utils.DB.Create(&coupon).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create the coupon")
		return
	}

	utils.RespondOK(c, http.StatusCreated, coupon)
}

func UpdateCoupon(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var coupon models.Coupon
	if err := utils.DB.Where("id = ? AND provider_id = ?", c.Param("id"), provider.ID).
		First(&coupon).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Coupon not found")
		return
	}

	var input models.Coupon
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid coupon data")
		return
	}

	coupon.Code = input.Code
	coupon.DiscountType = input.DiscountType
	coupon.DiscountValue = input.DiscountValue
	coupon.MinOrderValue = input.MinOrderValue
	coupon.ValidFrom = input.ValidFrom
	coupon.ValidTo = input.ValidTo
	coupon.MaxUsagePerUser = input.MaxUsagePerUser
	coupon.Terms = input.Terms
	coupon.Active = input.Active

	if err := utils.DB.Save(&coupon).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update the coupon")
		return
	}

	utils.RespondOK(c, http.StatusOK, coupon)
}

func DeleteCoupon(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	result := utils.DB.Where("id = ? AND provider_id = ?", c.Param("id"), provider.ID).
		Delete(&models.Coupon{})
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to delete the coupon")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, "Coupon not found")
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Coupon deleted successfully")
}
