package models

import "gorm.io/gorm"

const (
	TransactionCredit = "credit"
	TransactionDebit  = "debit"
)

type Wallet struct {
	gorm.Model
	ProviderID uint    `gorm:"uniqueIndex;not null" json:"providerId"`
	Balance    float64 `gorm:"type:decimal(12,2);default:0" json:"balance"`
}

// WalletTransaction records one movement on a provider wallet. Reference
// is unique so the same payout can never be applied twice.
type WalletTransaction struct {
	gorm.Model
	WalletID     uint    `gorm:"index;not null" json:"walletId"`
	Type         string  `gorm:"not null" json:"type"` // credit or debit
	Amount       float64 `gorm:"type:decimal(12,2)" json:"amount"`
	Reference    string  `gorm:"uniqueIndex;not null" json:"reference"`
	Description  string  `json:"description"`
	BalanceAfter float64 `gorm:"type:decimal(12,2)" json:"balanceAfter"`
}
