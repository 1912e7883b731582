package dto

import (
	"time"

	"github.com/SscSPs/wallet_history_app/internal/core/domain"
)

// TrackTransactionRequest carries a hex serialized unconfirmed transaction.
type TrackTransactionRequest struct {
	RawTx string `json:"rawTx" binding:"required,hexadecimal"`
}

// TxOutResponse is one decoded output.
type TxOutResponse struct {
	Sats    int64  `json:"sats"`
	Address string `json:"address,omitempty"`
}

// SubmittedTransactionResponse describes a tracked unconfirmed transaction.
type SubmittedTransactionResponse struct {
	TxHash    string          `json:"txHash"`
	CreatedAt time.Time       `json:"createdAt"`
	Outs      []TxOutResponse `json:"outs"`
}

// ToSubmittedTransactionResponse converts a domain.SubmittedTransaction.
func ToSubmittedTransactionResponse(tx *domain.SubmittedTransaction) SubmittedTransactionResponse {
	outs := make([]TxOutResponse, len(tx.Outs))
	for i, o := range tx.Outs {
		outs[i] = TxOutResponse{Sats: int64(o.Sats), Address: o.Address}
	}
	return SubmittedTransactionResponse{
		TxHash:    tx.TxHash,
		CreatedAt: tx.CreatedAt,
		Outs:      outs,
	}
}
