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

// Register creates a provider account and sends an OTP for verification.
// The account stays unverified (and cannot log in) until the OTP step.
func Register(c *gin.Context) {
	var input struct {
		FullName    string `json:"fullName"`
		Email       string `json:"email"`
		PhoneNumber string `json:"phoneNumber"`
		Password    string `json:"password"`
		StoreName   string `json:"storeName"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid input data. Please fill all required fields.")
		return
	}

	if input.FullName == "" || input.Email == "" || input.Password == "" {
		utils.RespondError(c, http.StatusBadRequest, "Full name, email, and password are required.")
		return
	}

	var existing models.Provider
	if err := utils.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, "An account with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not process the password.")
		return
	}

	otp := generateOTP()
	now := time.Now()

	provider := models.Provider{
		FullName:       input.FullName,
		Email:          input.Email,
		PhoneNumber:    input.PhoneNumber,
		Password:       string(hashed),
		StoreName:      input.StoreName,
		KYCStatus:      models.KYCPending,
		OTP:            otp,
		OTPGeneratedAt: &now,
	}

	if err := utils.DB.Create(&provider).Error; err != nil {
		log.Printf("Failed to create provider: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Registration failed. Please try again later.")
		return
	}

	sendOTP(provider.Email, otp)

	utils.RespondOK(c, http.StatusCreated, gin.H{
		"id":      provider.ID,
		"message": "OTP sent to your registered email address.",
	})
}

// VerifyOTP validates the OTP during registration and marks the provider
// verified.
func VerifyOTP(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid input data. Please ensure all required fields are filled correctly.")
		return
	}

	if input.Email == "" || input.OTP == "" {
		utils.RespondError(c, http.StatusBadRequest, "Email and OTP are required.")
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

	provider.Verified = true
	provider.OTP = ""
	provider.OTPGeneratedAt = nil
	if err := utils.DB.Save(&provider).Error; err != nil {
		log.Printf("Failed to mark provider %d verified: %v", provider.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, "We encountered an issue processing your request. Please try again later.")
		return
	}

	utils.RespondMessage(c, http.StatusOK, "OTP verified successfully.")
}
