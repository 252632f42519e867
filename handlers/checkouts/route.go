package checkouts

import "github.com/gin-gonic/gin"

func RegisterCheckoutRoutes(r *gin.RouterGroup) {
	r.POST("/api/checkout", CreateCheckout)
	r.GET("/api/checkout/:providerId", ListCheckouts)
	r.GET("/api/checkout/details/:id", GetCheckoutDetails)
	r.PUT("/api/checkout/:id", UpdateCheckout)
}
