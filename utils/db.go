package utils

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"provider-panel-server/models"
)

var DB *gorm.DB

// ConnectDatabase opens the portal database. Connection settings come from
// the environment so every module talks to the same host — base
// configuration lives in exactly one place.
func ConnectDatabase() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Base tables first; entity migrations in the migrations package
	// depend on these existing.
	DB.AutoMigrate(&models.Provider{}, &models.Customer{}, &models.Service{}, &models.ServiceMan{}, &models.Checkout{})
}
