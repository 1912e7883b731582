package domain

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

// TxOut is a decoded output of a broadcast transaction. Address is empty when
// the output script does not resolve to a single standard address.
type TxOut struct {
	Sats    btcutil.Amount
	Address string
}

// SubmittedTransaction is a transaction seen in the mempool but not yet
// confirmed.
type SubmittedTransaction struct {
	TxHash    string
	CreatedAt time.Time
	Outs      []TxOut
}

// BroadcastOutput is one output of an unconfirmed transaction.
type BroadcastOutput struct {
	Sats      btcutil.Amount
	Address   string
	TxHash    string
	CreatedAt time.Time
}

// Outputs flattens the transaction into its broadcast outputs, in output order.
func (t SubmittedTransaction) Outputs() []BroadcastOutput {
	outs := make([]BroadcastOutput, 0, len(t.Outs))
	for _, o := range t.Outs {
		outs = append(outs, BroadcastOutput{
			Sats:      o.Sats,
			Address:   o.Address,
			TxHash:    t.TxHash,
			CreatedAt: t.CreatedAt,
		})
	}
	return outs
}

// FlattenOutputs flattens a set of submitted transactions, keeping order.
func FlattenOutputs(txs []SubmittedTransaction) []BroadcastOutput {
	var outs []BroadcastOutput
	for _, tx := range txs {
		outs = append(outs, tx.Outputs()...)
	}
	return outs
}
