package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"provider-panel-server/models"
	"provider-panel-server/utils"
)

func RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid input data. Please provide a refresh token.")
		return
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization header is missing")
		return
	}

	providerID, err := utils.ExtractProviderIDFromToken(authHeader)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid access token")
		return
	}

	var provider models.Provider
	if err := utils.DB.First(&provider, providerID).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found")
		return
	}

	if utils.HashToken(input.RefreshToken) != provider.RefreshToken {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	newAccessToken, err := utils.GenerateAccessToken(provider.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not generate access token")
		return
	}

	newRefreshToken, err := utils.GenerateRefreshToken(provider.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not generate refresh token")
		return
	}

	provider.RefreshToken = utils.HashToken(newRefreshToken)
	if err := utils.DB.Save(&provider).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not rotate refresh token")
		return
	}

	utils.RespondOK(c, http.StatusOK, gin.H{
		"token":        newAccessToken,
		"refreshToken": newRefreshToken,
	})
}
