package repositories

import (
	"context"

	"github.com/SscSPs/wallet_history_app/internal/core/domain"
)

// PriceReader reads spot prices published by the price oracle.
type PriceReader interface {
	// LatestUsdPerSat returns the most recent USD price of one satoshi.
	LatestUsdPerSat(ctx context.Context) (domain.UsdPerSat, error)
}

// PriceRepositoryFacade combines all price-related repository interfaces.
type PriceRepositoryFacade interface {
	PriceReader
}
