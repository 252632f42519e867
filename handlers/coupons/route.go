package coupons

import "github.com/gin-gonic/gin"

func RegisterCouponRoutes(r *gin.RouterGroup) {
	r.GET("/api/coupon", ListCoupons)
	r.GET("/api/coupon/:id", GetCoupon)
	r.POST("/api/coupon", CreateCoupon)
	r.PUT("/api/coupon/:id", UpdateCoupon)
	r.DELETE("/api/coupon/:id", DeleteCoupon)
}
