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
)

type PgxPriceRepository struct {
	BaseRepository
}

// newPgxPriceRepository creates a new repository for spot prices.
func newPgxPriceRepository(pool *pgxpool.Pool, queryTimeout time.Duration) *PgxPriceRepository {
	return &PgxPriceRepository{BaseRepository: newBaseRepository(pool, queryTimeout)}
}

var _ portsrepo.PriceRepositoryFacade = (*PgxPriceRepository)(nil)

// LatestUsdPerSat returns the most recent USD price of one satoshi.
func (r *PgxPriceRepository) LatestUsdPerSat(ctx context.Context) (domain.UsdPerSat, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		SELECT tick_id, usd_per_sat, observed_at
		FROM price_ticks
		ORDER BY observed_at DESC
		LIMIT 1;
	`
	var tick models.PriceTick
	err := r.Pool.QueryRow(ctx, query).Scan(&tick.TickID, &tick.UsdPerSat, &tick.ObservedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UsdPerSat{}, fmt.Errorf("%w: no price tick recorded", apperrors.ErrNotFound)
		}
		return domain.UsdPerSat{}, fmt.Errorf("failed to read latest price: %w", err)
	}
	return tick.UsdPerSat, nil
}
