package domain

import "github.com/shopspring/decimal"

// Wallet is the minimal view of a wallet needed to scope history reads.
type Wallet struct {
	WalletID string `json:"walletID"`
	UserID   string `json:"userID"` // owner
	AuditFields
}

// WalletSnapshot holds records and owned addresses read under one
// transaction, so an address created between two reads cannot skew the view.
type WalletSnapshot struct {
	WalletID  string
	Records   []LedgerRecord
	Addresses []string
	NextToken *string
}

// UsdPerSat is the spot price used to value provisional entries.
type UsdPerSat = decimal.Decimal
