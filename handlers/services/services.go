package services

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"provider-panel-server/handlers/auth"
	"provider-panel-server/models"
	"provider-panel-server/utils"
)

func ListServices(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	query := utils.DB.Where("provider_id = ?", provider.ID)
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var serviceList []models.Service
	if err := query.Order("created_at DESC").Find(&serviceList).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch services")
		return
	}

	utils.RespondOK(c, http.StatusOK, serviceList)
}

func CreateService(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid service data")
		return
	}

	if service.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, "A service name is required")
		return
	}

	service.ID = 0
	service.ProviderID = provider.ID

	if err := utils.DB.Create(&service).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create the service")
		return
	}

	utils.RespondOK(c, http.StatusCreated, service)
}

func UpdateService(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var service models.Service
	if err := utils.DB.Where("id = ? AND provider_id = ?", c.Param("id"), provider.ID).
		First(&service).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Service not found")
		return
	}

	var input models.Service
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid service data")
		return
	}

	service.Name = input.Name
	service.Description = input.Description
	service.Price = input.Price
	service.DiscountedPrice = input.DiscountedPrice
	service.Active = input.Active

	if err := utils.DB.Save(&service).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update the service")
		return
	}

	utils.RespondOK(c, http.StatusOK, service)
}

func DeleteService(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	result := utils.DB.Where("id = ? AND provider_id = ?", c.Param("id"), provider.ID).
		Delete(&models.Service{})
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to delete the service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, "Service not found")
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Service deleted successfully")
}
