package models

// Wallet represents a row of the wallets table.
type Wallet struct {
	WalletID string `db:"wallet_id"`
	UserID   string `db:"user_id"`
	AuditFields
}

// WalletAddress is an on-chain receive address owned by a wallet.
type WalletAddress struct {
	WalletID string `db:"wallet_id"`
	Address  string `db:"address"`
}
