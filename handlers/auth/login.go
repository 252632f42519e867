package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"provider-panel-server/models"
	"provider-panel-server/utils"
)

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid input data. Please provide a valid email and password.")
		return
	}

	var provider models.Provider
	if err := utils.DB.Where("email = ?", input.Email).First(&provider).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(provider.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	if !provider.Verified {
		utils.RespondError(c, http.StatusUnauthorized, "Account not verified. Please complete OTP verification first.")
		return
	}

	accessToken, err := utils.GenerateAccessToken(provider.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not generate token.")
		return
	}

	refreshToken, err := utils.GenerateRefreshToken(provider.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not generate refresh token.")
		return
	}

	provider.RefreshToken = utils.HashToken(refreshToken)
	if err := utils.DB.Save(&provider).Error; err != nil {
		log.Printf("Failed to store refresh token for provider %d: %v", provider.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Login failed. Please try again later.")
		return
	}

	utils.RespondOK(c, http.StatusOK, gin.H{
		"token":        accessToken,
		"refreshToken": refreshToken,
		"provider": gin.H{
			"id":        provider.ID,
			"email":     provider.Email,
			"fullName":  provider.FullName,
			"storeName": provider.StoreName,
			"storeOpen": provider.StoreOpen,
			"kycStatus": provider.KYCStatus,
		},
	})
}
