package txhistory

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/wallet_history_app/internal/core/domain"
)

// PendingDescription is the legacy description of a provisional entry.
const PendingDescription = "pending"

// FilterPendingIncoming returns one provisional entry per broadcast output
// paying into one of the wallet's addresses, in input order. Outputs without
// an address, or paying someone else, are skipped.
func FilterPendingIncoming(
	walletID string,
	outputs []domain.BroadcastOutput,
	addresses []string,
	usdPerSat decimal.Decimal,
) []domain.WalletTransaction {

	owned := fn.NewSet(addresses...)

	isOwned := func(o domain.BroadcastOutput) bool {
		return o.Address != "" && owned.Contains(o.Address)
	}

	toPending := func(o domain.BroadcastOutput) domain.WalletTransaction {
		return pendingIncoming(walletID, o, usdPerSat)
	}

	return fn.Map(fn.Filter(outputs, isOwned), toPending)
}

func pendingIncoming(walletID string, o domain.BroadcastOutput, usdPerSat decimal.Decimal) domain.WalletTransaction {
	return domain.WalletTransaction{
		ID:                  o.TxHash,
		WalletID:            walletID,
		InitiationVia:       domain.OnChainInitiation{Address: o.Address},
		SettlementVia:       domain.OnChainSettlement{TransactionHash: o.TxHash},
		SettlementAmount:    o.Sats,
		SettlementFee:       btcutil.Amount(0),
		SettlementUsdPerSat: usdPerSat,
		Status:              domain.TxStatusPending,
		Memo:                fn.None[string](),
		CreatedAt:           o.CreatedAt,
		Deprecated: domain.DeprecatedProjection{
			Description: PendingDescription,
			Usd:         usdPerSat.Mul(decimal.NewFromInt(int64(o.Sats))),
			FeeUsd:      decimal.Zero,
			Type:        domain.OnchainReceipt,
		},
	}
}
