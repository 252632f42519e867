package ads

import "github.com/gin-gonic/gin"

func RegisterAdRoutes(r *gin.RouterGroup) {
	r.GET("/api/ads", ListAds)
	r.GET("/api/ads/:id", GetAd)
	r.POST("/api/ads", CreateAd)
	r.PUT("/api/ads/:id", UpdateAd)
	r.DELETE("/api/ads/:id", DeleteAd)
}
