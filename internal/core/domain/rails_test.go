package domain_test

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/wallet_history_app/internal/core/domain"
)

func TestNewLightningInitiation(t *testing.T) {
	legacy := domain.NewLightningInitiation("lnbc1", "", "02ab")
	assert.Equal(t, domain.InitiationLightning, legacy.Method())
	assert.True(t, legacy.PaymentHash.IsNone())

	got := domain.NewLightningInitiation("lnbc1", "hash", "02ab")
	assert.Equal(t, "hash", got.PaymentHash.UnwrapOr(""))
	assert.Equal(t, "02ab", got.Pubkey)
}

func TestWalletTransaction_OnChainTxHash(t *testing.T) {
	tests := []struct {
		name       string
		settlement domain.SettlementVia
		want       string
	}{
		{"onchain", domain.OnChainSettlement{TransactionHash: "abc"}, "abc"},
		{"onchain without hash", domain.OnChainSettlement{}, ""},
		{"intra ledger", domain.IntraLedgerSettlement{}, ""},
		{"lightning", domain.LightningSettlement{PaymentSecret: "s"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := domain.WalletTransaction{SettlementVia: tt.settlement}
			assert.Equal(t, tt.want, tx.OnChainTxHash().UnwrapOr(""))
		})
	}
}

func TestLedgerRecord_SettlementAmount(t *testing.T) {
	assert.Equal(t, btcutil.Amount(-10040), domain.LedgerRecord{Debit: 10040}.SettlementAmount())
	assert.Equal(t, btcutil.Amount(900), domain.LedgerRecord{Credit: 1000, Debit: 100}.SettlementAmount())
}

func TestFlattenOutputs(t *testing.T) {
	seen := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	txs := []domain.SubmittedTransaction{
		{TxHash: "t1", CreatedAt: seen, Outs: []domain.TxOut{{Sats: 1, Address: "a"}, {Sats: 2, Address: ""}}},
		{TxHash: "t2", CreatedAt: seen, Outs: []domain.TxOut{{Sats: 3, Address: "b"}}},
	}

	outs := domain.FlattenOutputs(txs)

	require.Len(t, outs, 3)
	assert.Equal(t, domain.BroadcastOutput{Sats: 1, Address: "a", TxHash: "t1", CreatedAt: seen}, outs[0])
	assert.Equal(t, "", outs[1].Address)
	assert.Equal(t, "t2", outs[2].TxHash)
}

func TestOptionalString(t *testing.T) {
	assert.True(t, domain.OptionalString("").IsNone())
	assert.Equal(t, "x", domain.OptionalString("x").UnwrapOr(""))
}
