package services

import "github.com/gin-gonic/gin"

func RegisterServiceRoutes(r *gin.RouterGroup) {
	r.GET("/api/service", ListServices)
	r.POST("/api/service", CreateService)
	r.PUT("/api/service/:id", UpdateService)
	r.DELETE("/api/service/:id", DeleteService)
}
