package leads

import "github.com/gin-gonic/gin"

func RegisterLeadRoutes(r *gin.RouterGroup) {
	r.GET("/api/leads", ListLeads)
	r.GET("/api/leads/:id", GetLead)
	r.GET("/api/leads/checkout/:checkoutId", GetLeadByCheckout)
	r.POST("/api/leads", CreateLead)
	r.PUT("/api/leads/:id", UpdateLead)
	r.DELETE("/api/leads/:id", DeleteLead)
}
