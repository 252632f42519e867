package servicemen

import "github.com/gin-gonic/gin"

func RegisterServiceManRoutes(r *gin.RouterGroup) {
	r.GET("/api/serviceman", ListServiceMen)
	r.GET("/api/serviceman/:id", GetServiceMan)
	r.POST("/api/serviceman", CreateServiceMan)
	r.PUT("/api/serviceman/:id", UpdateServiceMan)
	r.DELETE("/api/serviceman/:id", DeleteServiceMan)
}
