package payments

import "github.com/gin-gonic/gin"

// RegisterPaymentRoutes wires the authenticated payment operations. The
// Stripe webhook is registered separately in main because the gateway
// calls it unauthenticated.
func RegisterPaymentRoutes(r *gin.RouterGroup) {
	r.POST("/api/payment/generate-payment-link", GeneratePaymentLink)
	r.POST("/api/distributeLeadCommission", DistributeLeadCommission)
}
