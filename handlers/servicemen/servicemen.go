package servicemen

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"provider-panel-server/handlers/auth"
	"provider-panel-server/models"
	"provider-panel-server/utils"
)

func ListServiceMen(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	query := utils.DB.Where("provider_id = ?", provider.ID)
	if search := c.Query("search"); search != "" {
		query = query.Where("full_name LIKE ? OR phone_number LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var serviceMen []models.ServiceMan
	if err := query.Order("created_at DESC").Find(&serviceMen).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch service men")
		return
	}

	utils.RespondOK(c, http.StatusOK, serviceMen)
}

func GetServiceMan(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var serviceMan models.ServiceMan
	if err := utils.DB.Where("id = ? AND provider_id = ?", c.Param("id"), provider.ID).
		First(&serviceMan).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Service man not found")
		return
	}

	utils.RespondOK(c, http.StatusOK, serviceMan)
}

func CreateServiceMan(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var serviceMan models.ServiceMan
	if err := c.ShouldBindJSON(&serviceMan); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid service man data")
		return
	}

	if serviceMan.FullName == "" {
		utils.RespondError(c, http.StatusBadRequest, "A full name is required")
		return
	}

	serviceMan.ID = 0
	serviceMan.ProviderID = provider.ID

	if err := utils.DB.Create(&serviceMan).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create the service man")
		return
	}

	utils.RespondOK(c, http.StatusCreated, serviceMan)
}

func UpdateServiceMan(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var serviceMan models.ServiceMan
	if err := utils.DB.Where("id = ? AND provider_id = ?", c.Param("id"), provider.ID).
		First(&serviceMan).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Service man not found")
		return
	}

	var input models.ServiceMan
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid service man data")
		return
	}

	serviceMan.FullName = input.FullName
	serviceMan.PhoneNumber = input.PhoneNumber
	serviceMan.Email = input.Email
	serviceMan.IdentityDoc = input.IdentityDoc
	serviceMan.Active = input.Active

	if err := utils.DB.Save(&serviceMan).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update the service man")
		return
	}

	utils.RespondOK(c, http.StatusOK, serviceMan)
}

func DeleteServiceMan(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	result := utils.DB.Where("id = ? AND provider_id = ?", c.Param("id"), provider.ID).
		Delete(&models.ServiceMan{})
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to delete the service man")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, "Service man not found")
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Service man deleted successfully")
}
