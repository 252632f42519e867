package providers

import "github.com/gin-gonic/gin"

func RegisterProviderRoutes(r *gin.RouterGroup) {
	r.GET("/api/provider/:id", GetProvider)
	r.PUT("/api/provider/:id", UpdateProvider)
	r.PATCH("/api/provider/store-status/:id", UpdateStoreStatus)
	r.PATCH("/api/provider/about-us/:id", UpdateAboutUs)

	r.GET("/api/provider/:id/gallery", GetGallery)
	r.PATCH("/api/provider/:id/gallery", AddGalleryImage)
	r.DELETE("/api/provider/:id/gallery/:index", RemoveGalleryImage)

	r.POST("/api/provider/:id/kyc", UploadKYCDocuments)
	r.PATCH("/api/provider/:id/kyc", ReviewKYC)
}
