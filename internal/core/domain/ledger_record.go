package domain

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

// LedgerTransactionType is the type tag the ledger store writes on every posting.
type LedgerTransactionType string

const (
	IntraLedger        LedgerTransactionType = "on_us"
	LnIntraLedger      LedgerTransactionType = "ln_on_us"
	OnchainIntraLedger LedgerTransactionType = "onchain_on_us"
	OnchainPayment     LedgerTransactionType = "onchain_payment"
	OnchainReceipt     LedgerTransactionType = "onchain_receipt"
	Payment            LedgerTransactionType = "payment"
	Invoice            LedgerTransactionType = "invoice"
)

// LedgerRecord is one double-entry posting already attributed to a wallet.
// Records are owned by the ledger store and are never mutated here.
type LedgerRecord struct {
	ID       string                `json:"id"`
	WalletID string                `json:"walletID"`
	Type     LedgerTransactionType `json:"type"`

	Credit btcutil.Amount  `json:"credit"`
	Debit  btcutil.Amount  `json:"debit"`
	Fee    btcutil.Amount  `json:"fee"`
	Usd    decimal.Decimal `json:"usd"`
	FeeUsd decimal.Decimal `json:"feeUsd"`

	// Optional counterparty and rail identifiers. Empty when absent.
	Username             string `json:"username"`
	CounterPartyWalletID string `json:"counterPartyWalletID"`
	Address              string `json:"address"`
	TxHash               string `json:"txHash"`
	PaymentHash          string `json:"paymentHash"`
	Pubkey               string `json:"pubkey"`
	PaymentRequest       string `json:"paymentRequest"`
	PaymentSecret        string `json:"paymentSecret"`

	PendingConfirmation bool      `json:"pendingConfirmation"`
	MemoFromPayer       string    `json:"memoFromPayer"`
	LnMemo              string    `json:"lnMemo"`
	Timestamp           time.Time `json:"timestamp"`
}

// SettlementAmount is the signed amount from the wallet's point of view.
func (r LedgerRecord) SettlementAmount() btcutil.Amount {
	return r.Credit - r.Debit
}

// LedgerRecordFilter narrows a wallet-scoped ledger query.
type LedgerRecordFilter struct {
	PendingOnly bool
	TxHash      string
}
