package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceTick is one BTC/USD observation written by the price oracle.
type PriceTick struct {
	TickID     string          `db:"tick_id"`
	UsdPerSat  decimal.Decimal `db:"usd_per_sat"`
	ObservedAt time.Time       `db:"observed_at"`
}
