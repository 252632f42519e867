package wallet

import "github.com/gin-gonic/gin"

func RegisterWalletRoutes(r *gin.RouterGroup) {
	r.GET("/api/provider/wallet/:providerId", GetWallet)
}
