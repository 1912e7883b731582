package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/wallet_history_app/internal/apperrors"
	"github.com/SscSPs/wallet_history_app/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_history_app/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_history_app/internal/models"
	"github.com/SscSPs/wallet_history_app/internal/utils/mapping"
)

type PgxWalletRepository struct {
	BaseRepository
}

// newPgxWalletRepository creates a new repository for wallet data.
func newPgxWalletRepository(pool *pgxpool.Pool, queryTimeout time.Duration) *PgxWalletRepository {
	return &PgxWalletRepository{BaseRepository: newBaseRepository(pool, queryTimeout)}
}

// Ensure PgxWalletRepository implements portsrepo.WalletRepositoryFacade
var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

// FindWalletByID retrieves a wallet by its ID.
func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		SELECT wallet_id, user_id, created_at, created_by, last_updated_at, last_updated_by
		FROM wallets
		WHERE wallet_id = $1;
	`
	var m models.Wallet
	err := r.Pool.QueryRow(ctx, query, walletID).Scan(
		&m.WalletID,
		&m.UserID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: wallet %s", apperrors.ErrNotFound, walletID)
		}
		return nil, fmt.Errorf("failed to find wallet by ID %s: %w", walletID, err)
	}

	wallet := mapping.ToDomainWallet(m)
	return &wallet, nil
}

// listAddresses reads every on-chain receive address owned by the wallet. The
// ledger snapshot calls it inside its read transaction.
func listAddresses(ctx context.Context, q querier, walletID string) ([]string, error) {
	query := `
		SELECT address
		FROM wallet_addresses
		WHERE wallet_id = $1
		ORDER BY created_at, address;
	`
	rows, err := q.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to query addresses for wallet %s: %w", walletID, err)
	}
	addresses, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan addresses for wallet %s: %w", walletID, err)
	}
	return addresses, nil
}
