// Package wallet exposes a provider's wallet balance and transaction
// history, and owns the credit/debit bookkeeping used by commission
// payouts.
package wallet

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"provider-panel-server/handlers/auth"
	"provider-panel-server/models"
	"provider-panel-server/utils"
)

// GetWallet returns the wallet and its transaction history, newest first.
// A provider that never earned anything gets a zero-balance wallet.
func GetWallet(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	providerID, err := strconv.ParseUint(c.Param("providerId"), 10, 64)
	if err != nil || uint(providerID) != provider.ID {
		utils.RespondError(c, http.StatusForbidden, "You are not allowed to access this wallet")
		return
	}

	wallet, err := EnsureWallet(utils.DB, provider.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch the wallet")
		return
	}

	var transactions []models.WalletTransaction
	if err := utils.DB.Where("wallet_id = ?", wallet.ID).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch wallet transactions")
		return
	}

	utils.RespondOK(c, http.StatusOK, gin.H{
		"wallet":       wallet,
		"transactions": transactions,
	})
}

// EnsureWallet loads the provider's wallet, creating an empty one on
// first touch.
func EnsureWallet(db *gorm.DB, providerID uint) (models.Wallet, error) {
	var wallet models.Wallet
	err := db.Where("provider_id = ?", providerID).First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wallet = models.Wallet{ProviderID: providerID}
		err = db.Create(&wallet).Error
	}
	return wallet, err
}

// Credit applies a credit inside the given transaction. The unique
// reference makes the operation idempotent: crediting the same reference
// twice fails on the index and the caller can treat it as already done.
func Credit(tx *gorm.DB, wallet *models.Wallet, amount float64, reference, description string) error {
	wallet.Balance += amount

	entry := models.WalletTransaction{
		WalletID:     wallet.ID,
		Type:         models.TransactionCredit,
		Amount:       amount,
		Reference:    reference,
		Description:  description,
		BalanceAfter: wallet.Balance,
	}

	if err := tx.Create(&entry).Error; err != nil {
		return err
	}
	return tx.Model(&models.Wallet{}).Where("id = ?", wallet.ID).
		Update("balance", wallet.Balance).Error
}
