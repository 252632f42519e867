package migrations

import (
	"provider-panel-server/models"
	"provider-panel-server/utils"
)

func MigrateWallets() {
	utils.DB.AutoMigrate(&models.Wallet{}, &models.WalletTransaction{})
}
