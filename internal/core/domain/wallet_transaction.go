package domain

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/shopspring/decimal"
)

// TxStatus is the user-visible state of a wallet transaction.
type TxStatus string

const (
	TxStatusPending TxStatus = "PENDING"
	TxStatusSuccess TxStatus = "SUCCESS"
)

// DeprecatedProjection carries the pre-rail fields still read by older clients.
type DeprecatedProjection struct {
	Description string
	Usd         decimal.Decimal
	FeeUsd      decimal.Decimal
	Type        LedgerTransactionType
}

// WalletTransaction is one entry of a wallet's history. ID is the ledger
// record id, or the broadcast tx hash for provisional entries.
type WalletTransaction struct {
	ID                  string
	WalletID            string
	InitiationVia       InitiationVia
	SettlementVia       SettlementVia
	SettlementAmount    btcutil.Amount  // negative when funds leave the wallet
	SettlementFee       btcutil.Amount  // never negative
	SettlementUsdPerSat decimal.Decimal // never negative
	Status              TxStatus
	Memo                fn.Option[string]
	CreatedAt           time.Time
	Deprecated          DeprecatedProjection
}

// OnChainTxHash returns the on-chain transaction hash the entry settled
// through, if any.
func (t WalletTransaction) OnChainTxHash() fn.Option[string] {
	if s, ok := t.SettlementVia.(OnChainSettlement); ok && s.TransactionHash != "" {
		return fn.Some(s.TransactionHash)
	}
	return fn.None[string]()
}
