package pgsql

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/wallet_history_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx repository against one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool, queryTimeout time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo: newPgxLedgerRecordRepository(dbPool, queryTimeout),
		WalletRepo: newPgxWalletRepository(dbPool, queryTimeout),
		PriceRepo:  newPgxPriceRepository(dbPool, queryTimeout),
	}
}
