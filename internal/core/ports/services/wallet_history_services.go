package services

import (
	"context"

	"github.com/SscSPs/wallet_history_app/internal/core/domain"
	"github.com/SscSPs/wallet_history_app/internal/dto"
)

// WalletHistoryReaderSvc defines read operations over a wallet's transaction history.
type WalletHistoryReaderSvc interface {
	// ListWalletTransactions returns a page of the wallet's history. Provisional
	// entries for unconfirmed incoming broadcasts are layered on the first page.
	ListWalletTransactions(ctx context.Context, walletID string, userID string, params dto.ListWalletTransactionsParams) (*dto.WalletHistoryPage, error)

	// ListPendingTransactions returns unconfirmed ledger records plus provisional entries.
	ListPendingTransactions(ctx context.Context, walletID string, userID string) ([]domain.WalletTransaction, error)

	// GetTransactionsByHash returns the wallet's entries for one on-chain transaction hash.
	GetTransactionsByHash(ctx context.Context, walletID string, userID string, txHash string) ([]domain.WalletTransaction, error)
}

// WalletHistorySvcFacade combines all wallet history service interfaces.
type WalletHistorySvcFacade interface {
	WalletHistoryReaderSvc
}

// BroadcastWatcher exposes transactions seen in the mempool but not yet confirmed.
type BroadcastWatcher interface {
	// PendingTransactions returns the current unconfirmed set in a stable order.
	PendingTransactions(ctx context.Context) ([]domain.SubmittedTransaction, error)
}

// MempoolSvcFacade feeds and reads the unconfirmed transaction set.
type MempoolSvcFacade interface {
	BroadcastWatcher

	// TrackRawTransaction decodes a hex serialized transaction and adds it to the set.
	TrackRawTransaction(ctx context.Context, rawTxHex string) (*domain.SubmittedTransaction, error)

	// ForgetTransaction removes a transaction, typically once it has confirmed.
	ForgetTransaction(ctx context.Context, txHash string) error
}
