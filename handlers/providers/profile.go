package providers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"provider-panel-server/handlers/auth"
	"provider-panel-server/models"
	"provider-panel-server/utils"
)

// requestedProvider loads the provider addressed by the :id parameter,
// refusing access when it is not the authenticated account. Every profile
// route goes through this check.
func requestedProvider(c *gin.Context) (models.Provider, bool) {
	current, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return models.Provider{}, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid provider id")
		return models.Provider{}, false
	}

	if uint(id) != current.ID {
		utils.RespondError(c, http.StatusForbidden, "You are not allowed to access this provider")
		return models.Provider{}, false
	}

	return current, true
}

func GetProvider(c *gin.Context) {
	provider, ok := requestedProvider(c)
	if !ok {
		return
	}

	utils.RespondOK(c, http.StatusOK, provider)
}

func UpdateProvider(c *gin.Context) {
	provider, ok := requestedProvider(c)
	if !ok {
		return
	}

	var input struct {
		FullName    *string `json:"fullName"`
		PhoneNumber *string `json:"phoneNumber"`
		StoreName   *string `json:"storeName"`
		Address     *string `json:"address"`
		City        *string `json:"city"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid input data")
		return
	}

	if input.FullName != nil {
		provider.FullName = *input.FullName
	}
	if input.PhoneNumber != nil {
		provider.PhoneNumber = *input.PhoneNumber
	}
	if input.StoreName != nil {
		provider.StoreName = *input.StoreName
	}
	if input.Address != nil {
		provider.Address = *input.Address
	}
	if input.City != nil {
		provider.City = *input.City
	}

	if err := utils.DB.Save(&provider).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update provider profile")
		return
	}

	utils.RespondOK(c, http.StatusOK, provider)
}

func UpdateStoreStatus(c *gin.Context) {
	provider, ok := requestedProvider(c)
	if !ok {
		return
	}

	var input struct {
		StoreOpen bool `json:"storeOpen"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid input data")
		return
	}

	if err := utils.DB.Model(&provider).Update("store_open", input.StoreOpen).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update store status")
		return
	}

	utils.RespondOK(c, http.StatusOK, gin.H{"storeOpen": input.StoreOpen})
}

func UpdateAboutUs(c *gin.Context) {
	provider, ok := requestedProvider(c)
	if !ok {
		return
	}

	var input struct {
		AboutUs string `json:"aboutUs"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid input data")
		return
	}

	if err := utils.DB.Model(&provider).Update("about_us", input.AboutUs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update about us")
		return
	}

	utils.RespondOK(c, http.StatusOK, gin.H{"aboutUs": input.AboutUs})
}
