package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"provider-panel-server/utils"
)

func Logout(c *gin.Context) {
	provider, ok := CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	// Access tokens stay valid until expiry; revoking the refresh token is
	// what ends the session.
	provider.RefreshToken = ""
	if err := utils.DB.Save(&provider).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to log out")
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Logout successful.")
}
