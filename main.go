package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"provider-panel-server/handlers/ads"
	"provider-panel-server/handlers/auth"
	"provider-panel-server/handlers/checkouts"
	"provider-panel-server/handlers/coupons"
	"provider-panel-server/handlers/leads"
	"provider-panel-server/handlers/payments"
	"provider-panel-server/handlers/providers"
	"provider-panel-server/handlers/servicemen"
	"provider-panel-server/handlers/services"
	"provider-panel-server/handlers/wallet"
	"provider-panel-server/migrations"
	"provider-panel-server/models"
	"provider-panel-server/seed"
	"provider-panel-server/storage"
	"provider-panel-server/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if origins := os.Getenv("PANEL_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	utils.ConnectDatabase()

	migrations.MigrateLeads()
	migrations.MigrateWallets()

	// Uploads backend shared by gallery, KYC, and ad creatives
	store, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("Failed to configure storage: %v", err)
	}
	log.Printf("Using %s storage", store.Driver)
	providers.Store = store.Storage
	ads.Store = store.Storage

	// Seed Initial Data
	if err := seed.SeedWelcomeCoupon(); err != nil {
		log.Fatalf("Failed to seed welcome coupon: %v", err)
	}

	// Public routes
	r.POST("/api/provider/login", auth.Login)
	r.POST("/api/provider/register", auth.Register)
	r.POST("/api/provider/verify-otp", auth.VerifyOTP)
	r.POST("/api/provider/request-otp", auth.RequestOTP)
	r.POST("/api/provider/reset-password", auth.ResetPassword)
	r.POST("/api/provider/refresh-token", auth.RefreshToken)
	r.POST("/api/payment/webhook", payments.HandleStripeWebhook)

	protected := r.Group("/")
	protected.Use(auth.AuthMiddleware())
	{
		protected.POST("/api/provider/logout", auth.Logout)
		providers.RegisterProviderRoutes(protected)
		checkouts.RegisterCheckoutRoutes(protected)
		leads.RegisterLeadRoutes(protected)
		coupons.RegisterCouponRoutes(protected)
		ads.RegisterAdRoutes(protected)
		servicemen.RegisterServiceManRoutes(protected)
		services.RegisterServiceRoutes(protected)
		wallet.RegisterWalletRoutes(protected)
		payments.RegisterPaymentRoutes(protected)
	}

	// Migrate models
	utils.DB.AutoMigrate(&models.Provider{})
	utils.DB.AutoMigrate(&models.Customer{})
	utils.DB.AutoMigrate(&models.Service{})
	utils.DB.AutoMigrate(&models.Checkout{})
	utils.DB.AutoMigrate(&models.Coupon{})
	utils.DB.AutoMigrate(&models.Ad{})
	utils.DB.AutoMigrate(&models.ServiceMan{})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
