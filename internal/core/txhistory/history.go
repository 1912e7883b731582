package txhistory

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/wallet_history_app/internal/core/domain"
)

// ConfirmedHistory is the classified view of a wallet's ledger records.
// It is immutable once built.
type ConfirmedHistory struct {
	transactions []domain.WalletTransaction
}

// HistoryWithPending is a confirmed history with provisional entries on top.
type HistoryWithPending struct {
	Transactions []domain.WalletTransaction
}

// FromLedger classifies every record, keeping the order the ledger returned
// them in (newest first). Any record that cannot be classified fails the whole
// batch.
func FromLedger(records []domain.LedgerRecord, memoSharingThreshold btcutil.Amount) (*ConfirmedHistory, error) {
	transactions := make([]domain.WalletTransaction, 0, len(records))
	for _, r := range records {
		tx, err := fromRecord(r, memoSharingThreshold)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return &ConfirmedHistory{transactions: transactions}, nil
}

// Transactions returns a copy of the confirmed entries.
func (h *ConfirmedHistory) Transactions() []domain.WalletTransaction {
	out := make([]domain.WalletTransaction, len(h.transactions))
	copy(out, h.transactions)
	return out
}

// Len is the number of confirmed entries.
func (h *ConfirmedHistory) Len() int {
	return len(h.transactions)
}

// AddPendingIncoming prepends provisional entries for outputs paying into the
// wallet. Entries are not checked against confirmed records, so a transaction
// that confirmed after the broadcast set was read shows up twice.
func (h *ConfirmedHistory) AddPendingIncoming(
	walletID string,
	outputs []domain.BroadcastOutput,
	addresses []string,
	usdPerSat decimal.Decimal,
) HistoryWithPending {

	pending := FilterPendingIncoming(walletID, outputs, addresses, usdPerSat)
	return h.prepend(pending)
}

// AddPendingIncomingDistinct behaves like AddPendingIncoming but drops
// provisional entries whose tx hash already settled a confirmed entry.
func (h *ConfirmedHistory) AddPendingIncomingDistinct(
	walletID string,
	outputs []domain.BroadcastOutput,
	addresses []string,
	usdPerSat decimal.Decimal,
) HistoryWithPending {

	settled := fn.NewSet[string]()
	for _, tx := range h.transactions {
		tx.OnChainTxHash().WhenSome(func(hash string) {
			settled.Add(hash)
		})
	}

	unseen := fn.Filter(outputs, func(o domain.BroadcastOutput) bool {
		return !settled.Contains(o.TxHash)
	})

	pending := FilterPendingIncoming(walletID, unseen, addresses, usdPerSat)
	return h.prepend(pending)
}

func (h *ConfirmedHistory) prepend(pending []domain.WalletTransaction) HistoryWithPending {
	combined := make([]domain.WalletTransaction, 0, len(pending)+len(h.transactions))
	combined = append(combined, pending...)
	combined = append(combined, h.transactions...)
	return HistoryWithPending{Transactions: combined}
}

func fromRecord(r domain.LedgerRecord, threshold btcutil.Amount) (domain.WalletTransaction, error) {
	initiation, settlement, err := Classify(r)
	if err != nil {
		return domain.WalletTransaction{}, err
	}

	settlementAmount := r.SettlementAmount()
	in := memoInputFrom(r)

	status := domain.TxStatusSuccess
	if r.PendingConfirmation {
		status = domain.TxStatusPending
	}

	return domain.WalletTransaction{
		ID:                  r.ID,
		WalletID:            r.WalletID,
		InitiationVia:       initiation,
		SettlementVia:       settlement,
		SettlementAmount:    settlementAmount,
		SettlementFee:       r.Fee,
		SettlementUsdPerSat: UsdPerSat(r.Usd, settlementAmount),
		Status:              status,
		Memo:                ResolveMemo(in, threshold),
		CreatedAt:           r.Timestamp,
		Deprecated: domain.DeprecatedProjection{
			Description: ResolveDescription(in, threshold),
			Usd:         r.Usd,
			FeeUsd:      r.FeeUsd,
			Type:        r.Type,
		},
	}, nil
}

// UsdPerSat is |usd / sats|, or zero when sats is zero.
func UsdPerSat(usd decimal.Decimal, sats btcutil.Amount) decimal.Decimal {
	if sats == 0 {
		return decimal.Zero
	}
	return usd.Div(decimal.NewFromInt(int64(sats))).Abs()
}
