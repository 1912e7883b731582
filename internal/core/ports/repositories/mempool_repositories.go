package repositories

import (
	"context"

	"github.com/SscSPs/wallet_history_app/internal/core/domain"
)

// MempoolReader reads the set of transactions broadcast but not yet confirmed.
type MempoolReader interface {
	// PendingTransactions returns the current unconfirmed set in a stable order.
	PendingTransactions(ctx context.Context) ([]domain.SubmittedTransaction, error)

	// Len reports how many transactions are tracked.
	Len() int
}

// MempoolWriter mutates the unconfirmed set.
type MempoolWriter interface {
	// Track decodes a serialized transaction and adds it. Already tracked
	// transactions are returned unchanged.
	Track(ctx context.Context, rawTx []byte) (*domain.SubmittedTransaction, error)

	// Forget removes a transaction. Returns apperrors.ErrNotFound when not tracked.
	Forget(ctx context.Context, txHash string) error
}

// MempoolStoreFacade combines all mempool store interfaces.
type MempoolStoreFacade interface {
	MempoolReader
	MempoolWriter
}
