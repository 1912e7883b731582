package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRecord represents one row of the ledger_records table.
// Amounts are stored as BIGINT satoshis.
type LedgerRecord struct {
	RecordID string `db:"record_id"`
	WalletID string `db:"wallet_id"`
	TxType   string `db:"tx_type"`

	Credit int64           `db:"credit"`
	Debit  int64           `db:"debit"`
	Fee    int64           `db:"fee"`
	Usd    decimal.Decimal `db:"usd"`
	FeeUsd decimal.Decimal `db:"fee_usd"`

	Username             sql.NullString `db:"username"`
	CounterPartyWalletID sql.NullString `db:"counter_party_wallet_id"`
	Address              sql.NullString `db:"address"`
	TxHash               sql.NullString `db:"tx_hash"`
	PaymentHash          sql.NullString `db:"payment_hash"`
	Pubkey               sql.NullString `db:"pubkey"`
	PaymentRequest       sql.NullString `db:"payment_request"`
	PaymentSecret        sql.NullString `db:"payment_secret"`

	PendingConfirmation bool           `db:"pending_confirmation"`
	MemoFromPayer       sql.NullString `db:"memo_from_payer"`
	LnMemo              sql.NullString `db:"ln_memo"`
	Timestamp           time.Time      `db:"timestamp"`
}
