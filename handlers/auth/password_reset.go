package auth

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"provider-panel-server/models"
	"provider-panel-server/utils"
)

// RequestOTP handles password reset requests by generating and sending a
// new OTP via email.
func RequestOTP(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" {
		utils.RespondError(c, http.StatusBadRequest, "Email address is required.")
		return
	}

	var provider models.Provider
	if err := utils.DB.Where("email = ?", input.Email).First(&provider).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found. Please check your email address.")
		return
	}

	otp := generateOTP()
	provider.OTP = otp
	now := time.Now()
	provider.OTPGeneratedAt = &now

	if err := utils.DB.Save(&provider).Error; err != nil {
		log.Printf("Failed to update provider with new OTP: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "We encountered an issue saving the OTP. Please try again later.")
		return
	}

	sendOTP(provider.Email, otp)

	utils.RespondMessage(c, http.StatusOK, "OTP sent to your registered email address.")
}

// ResetPassword sets a new password after the OTP has been validated.
func ResetPassword(c *gin.Context) {
	var input struct {
		Email       string `json:"email"`
		OTP         string `json:"otp"`
		NewPassword string `json:"newPassword"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid input data. Please ensure all required fields are filled correctly.")
		return
	}

	if input.Email == "" || input.OTP == "" || input.NewPassword == "" {
		utils.RespondError(c, http.StatusBadRequest, "Email, OTP, and new password are required.")
		return
	}

	var provider models.Provider
	if err := utils.DB.Where("email = ?", input.Email).First(&provider).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found. Please check your email address.")
		return
	}

	if provider.OTP == "" || provider.OTPGeneratedAt == nil {
		utils.RespondError(c, http.StatusUnauthorized, "The OTP is missing or not properly set. Please request a new OTP.")
		return
	}

	if input.OTP != provider.OTP {
		utils.RespondError(c, http.StatusUnauthorized, "The OTP is incorrect. Please try again or request a new one.")
		return
	}

	if time.Now().After(provider.OTPGeneratedAt.Add(otpValidityDuration)) {
		utils.RespondError(c, http.StatusUnauthorized, "The OTP has expired. Please request a new OTP.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not process the new password.")
		return
	}

	provider.Password = string(hashed)
	provider.OTP = ""
	provider.OTPGeneratedAt = nil
	provider.RefreshToken = ""

	if err := utils.DB.Save(&provider).Error; err != nil {
		log.Printf("Failed to reset password for provider %d: %v", provider.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, "We encountered an issue resetting the password. Please try again later.")
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Password reset successful. Please log in with your new password.")
}
