package mapping

import (
	"github.com/btcsuite/btcd/btcutil"

	"github.com/SscSPs/wallet_history_app/internal/core/domain"
	"github.com/SscSPs/wallet_history_app/internal/models"
)

// ToDomainLedgerRecord converts a model LedgerRecord to a domain LedgerRecord
func ToDomainLedgerRecord(m models.LedgerRecord) domain.LedgerRecord {
	return domain.LedgerRecord{
		ID:                   m.RecordID,
		WalletID:             m.WalletID,
		Type:                 domain.LedgerTransactionType(m.TxType),
		Credit:               btcutil.Amount(m.Credit),
		Debit:                btcutil.Amount(m.Debit),
		Fee:                  btcutil.Amount(m.Fee),
		Usd:                  m.Usd,
		FeeUsd:               m.FeeUsd,
		Username:             FromNullString(m.Username),
		CounterPartyWalletID: FromNullString(m.CounterPartyWalletID),
		Address:              FromNullString(m.Address),
		TxHash:               FromNullString(m.TxHash),
		PaymentHash:          FromNullString(m.PaymentHash),
		Pubkey:               FromNullString(m.Pubkey),
		PaymentRequest:       FromNullString(m.PaymentRequest),
		PaymentSecret:        FromNullString(m.PaymentSecret),
		PendingConfirmation:  m.PendingConfirmation,
		MemoFromPayer:        FromNullString(m.MemoFromPayer),
		LnMemo:               FromNullString(m.LnMemo),
		Timestamp:            m.Timestamp,
	}
}

// ToDomainLedgerRecordSlice converts a slice of model LedgerRecords to a slice of domain LedgerRecords
func ToDomainLedgerRecordSlice(ms []models.LedgerRecord) []domain.LedgerRecord {
	ds := make([]domain.LedgerRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerRecord(m)
	}
	return ds
}
