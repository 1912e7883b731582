package repositories

import (
	"context"

	"github.com/SscSPs/wallet_history_app/internal/core/domain"
)

// LedgerRecordReader defines read operations over the ledger store. Records
// come back newest first.
type LedgerRecordReader interface {
	// ReadWalletSnapshot reads a page of records together with the wallet's
	// owned addresses inside one read-only transaction.
	ReadWalletSnapshot(ctx context.Context, walletID string, filter domain.LedgerRecordFilter, limit int, nextToken *string) (*domain.WalletSnapshot, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerRecordReader
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
