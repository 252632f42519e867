package migrations

import (
	"provider-panel-server/models"
	"provider-panel-server/utils"
)

func MigrateLeads() {
	utils.DB.AutoMigrate(&models.Lead{})
}
