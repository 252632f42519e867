package seed

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"provider-panel-server/models"
	"provider-panel-server/utils"
)

// SeedWelcomeCoupon makes sure the platform-wide welcome coupon exists.
func SeedWelcomeCoupon() error {
	var existing models.Coupon
	err := utils.DB.Where("code = ?", "WELCOME10").First(&existing).Error
	if err == nil {
		log.Println("Welcome coupon already exists. Skipping seeding.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	validTo := time.Now().AddDate(1, 0, 0)
	coupon := models.Coupon{
		Code:            "WELCOME10",
		DiscountType:    models.DiscountPercentage,
		DiscountValue:   10,
		MinOrderValue:   500,
		ValidTo:         &validTo,
		MaxUsagePerUser: 1,
		Terms:           "10% off your first booking above ₹500.",
		Active:          true,
	}

	if err := utils.DB.Create(&coupon).Error; err != nil {
		return err
	}

	log.Println("Welcome coupon seeded successfully.")
	return nil
}
