package txhistory

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/SscSPs/wallet_history_app/internal/core/domain"
)

// DefaultMemoSharingThreshold is used when deployments do not configure one.
const DefaultMemoSharingThreshold btcutil.Amount = 1000

// MemoInput holds the record fields the description and memo depend on.
type MemoInput struct {
	MemoFromPayer string
	LnMemo        string
	Username      string
	Type          domain.LedgerTransactionType
	Credit        btcutil.Amount
}

func memoInputFrom(r domain.LedgerRecord) MemoInput {
	return MemoInput{
		MemoFromPayer: r.MemoFromPayer,
		LnMemo:        r.LnMemo,
		Username:      r.Username,
		Type:          r.Type,
		Credit:        r.Credit,
	}
}

// ShouldDisplayMemo reports whether a memo may be shown to the wallet owner.
// Outgoing memos were written by the owner. Small inbound payments do not get
// to put text in front of the recipient.
func ShouldDisplayMemo(credit, threshold btcutil.Amount) bool {
	return credit == 0 || credit >= threshold
}

// ResolveMemo returns the privacy-filtered memo.
func ResolveMemo(in MemoInput, threshold btcutil.Amount) fn.Option[string] {
	if !ShouldDisplayMemo(in.Credit, threshold) {
		return fn.None[string]()
	}
	if in.MemoFromPayer != "" {
		return fn.Some(in.MemoFromPayer)
	}
	return domain.OptionalString(in.LnMemo)
}

// ResolveDescription returns the human readable description. It falls back to
// a directional phrase naming the counterparty, and finally to the raw type.
func ResolveDescription(in MemoInput, threshold btcutil.Amount) string {
	memo := ResolveMemo(in, threshold)
	if memo.IsSome() {
		return memo.UnwrapOr("")
	}

	if in.Username != "" {
		if in.Credit > 0 {
			return "from " + in.Username
		}
		return "to " + in.Username
	}

	return string(in.Type)
}
