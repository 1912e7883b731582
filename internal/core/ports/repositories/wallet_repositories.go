package repositories

import (
	"context"

	"github.com/SscSPs/wallet_history_app/internal/core/domain"
)

// WalletReader defines read operations for wallets and their receive addresses.
type WalletReader interface {
	// FindWalletByID retrieves a wallet. Returns apperrors.ErrNotFound when missing.
	FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)
}

// WalletRepositoryFacade combines all wallet-related repository interfaces.
type WalletRepositoryFacade interface {
	WalletReader
}
