package txhistory_test

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/wallet_history_app/internal/core/domain"
	"github.com/SscSPs/wallet_history_app/internal/core/txhistory"
)

func TestShouldDisplayMemo(t *testing.T) {
	const threshold btcutil.Amount = 1000

	assert.True(t, txhistory.ShouldDisplayMemo(0, threshold), "outgoing")
	assert.False(t, txhistory.ShouldDisplayMemo(1, threshold))
	assert.False(t, txhistory.ShouldDisplayMemo(999, threshold))
	assert.True(t, txhistory.ShouldDisplayMemo(1000, threshold), "at threshold")
	assert.True(t, txhistory.ShouldDisplayMemo(50000, threshold))
}

func TestResolveMemoAndDescription(t *testing.T) {
	const threshold btcutil.Amount = 1000

	tests := []struct {
		name            string
		in              txhistory.MemoInput
		wantMemo        *string
		wantDescription string
	}{
		{
			name:            "outgoing payer memo is always visible",
			in:              txhistory.MemoInput{MemoFromPayer: "coffee", Credit: 0, Type: domain.Payment},
			wantMemo:        strPtr("coffee"),
			wantDescription: "coffee",
		},
		{
			name:            "inbound memo below threshold is withheld",
			in:              txhistory.MemoInput{MemoFromPayer: "coffee", Credit: 500, Type: domain.IntraLedger},
			wantMemo:        nil,
			wantDescription: "on_us",
		},
		{
			name:            "inbound memo at threshold is shown",
			in:              txhistory.MemoInput{MemoFromPayer: "rent", Credit: 1000, Type: domain.IntraLedger},
			wantMemo:        strPtr("rent"),
			wantDescription: "rent",
		},
		{
			name:            "lightning memo used when payer memo absent",
			in:              txhistory.MemoInput{LnMemo: "invoice memo", Credit: 5000, Type: domain.Invoice},
			wantMemo:        strPtr("invoice memo"),
			wantDescription: "invoice memo",
		},
		{
			name:            "payer memo wins over lightning memo",
			in:              txhistory.MemoInput{MemoFromPayer: "payer", LnMemo: "ln", Credit: 0, Type: domain.Payment},
			wantMemo:        strPtr("payer"),
			wantDescription: "payer",
		},
		{
			name:            "incoming from username",
			in:              txhistory.MemoInput{Username: "alice", Credit: 200, Type: domain.IntraLedger},
			wantMemo:        nil,
			wantDescription: "from alice",
		},
		{
			name:            "outgoing to username",
			in:              txhistory.MemoInput{Username: "bob", Credit: 0, Type: domain.IntraLedger},
			wantMemo:        nil,
			wantDescription: "to bob",
		},
		{
			name:            "hidden memo falls back to username",
			in:              txhistory.MemoInput{MemoFromPayer: "spam", Username: "carol", Credit: 10, Type: domain.IntraLedger},
			wantMemo:        nil,
			wantDescription: "from carol",
		},
		{
			name:            "raw type as last resort",
			in:              txhistory.MemoInput{Credit: 10040, Type: domain.OnchainReceipt},
			wantMemo:        nil,
			wantDescription: "onchain_receipt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memo := txhistory.ResolveMemo(tt.in, threshold)
			if tt.wantMemo == nil {
				assert.True(t, memo.IsNone())
			} else {
				assert.Equal(t, *tt.wantMemo, memo.UnwrapOr(""))
			}
			assert.Equal(t, tt.wantDescription, txhistory.ResolveDescription(tt.in, threshold))
		})
	}
}

func TestResolveMemo_ThresholdIsAParameter(t *testing.T) {
	in := txhistory.MemoInput{MemoFromPayer: "hello", Credit: 500}

	assert.True(t, txhistory.ResolveMemo(in, 1000).IsNone())
	assert.Equal(t, "hello", txhistory.ResolveMemo(in, 100).UnwrapOr(""))
}

func strPtr(s string) *string {
	return &s
}
