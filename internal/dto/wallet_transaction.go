package dto

import (
	"time"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/wallet_history_app/internal/core/domain"
)

// ListWalletTransactionsParams defines query parameters for listing a wallet's history.
type ListWalletTransactionsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// WalletHistoryPage is one page of history as returned by the service.
type WalletHistoryPage struct {
	Transactions []domain.WalletTransaction
	NextToken    *string
}

// InitiationViaResponse is the JSON form of domain.InitiationVia.
type InitiationViaResponse struct {
	Type                 domain.PaymentInitiationMethod `json:"type"`
	CounterPartyWalletID string                         `json:"counterPartyWalletID,omitempty"`
	CounterPartyUsername *string                        `json:"counterPartyUsername,omitempty"`
	Address              string                         `json:"address,omitempty"`
	PaymentRequest       string                         `json:"paymentRequest,omitempty"`
	PaymentHash          *string                        `json:"paymentHash,omitempty"`
	Pubkey               string                         `json:"pubkey,omitempty"`
}

// SettlementViaResponse is the JSON form of domain.SettlementVia.
type SettlementViaResponse struct {
	Type                 domain.SettlementMethod `json:"type"`
	CounterPartyWalletID string                  `json:"counterPartyWalletID,omitempty"`
	CounterPartyUsername *string                 `json:"counterPartyUsername,omitempty"`
	TransactionHash      string                  `json:"transactionHash,omitempty"`
	PaymentSecret        string                  `json:"paymentSecret,omitempty"`
}

// DeprecatedResponse carries the legacy fields for clients not on the rail model yet.
type DeprecatedResponse struct {
	Description string                       `json:"description"`
	Usd         decimal.Decimal              `json:"usd"`
	FeeUsd      decimal.Decimal              `json:"feeUsd"`
	Type        domain.LedgerTransactionType `json:"type"`
}

// WalletTransactionResponse defines the data returned for one history entry.
type WalletTransactionResponse struct {
	ID                  string                `json:"id"`
	WalletID            string                `json:"walletID"`
	InitiationVia       InitiationViaResponse `json:"initiationVia"`
	SettlementVia       SettlementViaResponse `json:"settlementVia"`
	SettlementAmount    int64                 `json:"settlementAmount"` // sats, negative when outgoing
	SettlementFee       int64                 `json:"settlementFee"`
	SettlementUsdPerSat decimal.Decimal       `json:"settlementUsdPerSat"`
	Status              domain.TxStatus       `json:"status"`
	Memo                *string               `json:"memo"`
	CreatedAt           time.Time             `json:"createdAt"`
	Deprecated          DeprecatedResponse    `json:"deprecated"`
}

// ListWalletTransactionsResponse wraps a page of history.
type ListWalletTransactionsResponse struct {
	Transactions []WalletTransactionResponse `json:"transactions"`
	NextToken    *string                     `json:"nextToken,omitempty"`
}

func optionToPtr(o fn.Option[string]) *string {
	return fn.MapOptionZ(o, func(s string) *string { return &s })
}

// ToInitiationViaResponse converts the initiation rail union.
func ToInitiationViaResponse(via domain.InitiationVia) InitiationViaResponse {
	switch v := via.(type) {
	case domain.IntraLedgerInitiation:
		return InitiationViaResponse{
			Type:                 v.Method(),
			CounterPartyWalletID: v.CounterPartyWalletID,
			CounterPartyUsername: optionToPtr(v.CounterPartyUsername),
		}
	case domain.OnChainInitiation:
		return InitiationViaResponse{Type: v.Method(), Address: v.Address}
	case domain.LightningInitiation:
		return InitiationViaResponse{
			Type:           v.Method(),
			PaymentRequest: v.PaymentRequest,
			PaymentHash:    optionToPtr(v.PaymentHash),
			Pubkey:         v.Pubkey,
		}
	default:
		return InitiationViaResponse{}
	}
}

// ToSettlementViaResponse converts the settlement rail union.
func ToSettlementViaResponse(via domain.SettlementVia) SettlementViaResponse {
	switch v := via.(type) {
	case domain.IntraLedgerSettlement:
		return SettlementViaResponse{
			Type:                 v.Method(),
			CounterPartyWalletID: v.CounterPartyWalletID,
			CounterPartyUsername: optionToPtr(v.CounterPartyUsername),
		}
	case domain.OnChainSettlement:
		return SettlementViaResponse{Type: v.Method(), TransactionHash: v.TransactionHash}
	case domain.LightningSettlement:
		return SettlementViaResponse{Type: v.Method(), PaymentSecret: v.PaymentSecret}
	default:
		return SettlementViaResponse{}
	}
}

// ToWalletTransactionResponse converts a domain.WalletTransaction to its response DTO.
func ToWalletTransactionResponse(tx *domain.WalletTransaction) WalletTransactionResponse {
	return WalletTransactionResponse{
		ID:                  tx.ID,
		WalletID:            tx.WalletID,
		InitiationVia:       ToInitiationViaResponse(tx.InitiationVia),
		SettlementVia:       ToSettlementViaResponse(tx.SettlementVia),
		SettlementAmount:    int64(tx.SettlementAmount),
		SettlementFee:       int64(tx.SettlementFee),
		SettlementUsdPerSat: tx.SettlementUsdPerSat,
		Status:              tx.Status,
		Memo:                optionToPtr(tx.Memo),
		CreatedAt:           tx.CreatedAt,
		Deprecated: DeprecatedResponse{
			Description: tx.Deprecated.Description,
			Usd:         tx.Deprecated.Usd,
			FeeUsd:      tx.Deprecated.FeeUsd,
			Type:        tx.Deprecated.Type,
		},
	}
}

// ToWalletTransactionResponses converts a slice of domain.WalletTransaction.
func ToWalletTransactionResponses(txs []domain.WalletTransaction) []WalletTransactionResponse {
	res := make([]WalletTransactionResponse, len(txs))
	for i := range txs {
		res[i] = ToWalletTransactionResponse(&txs[i])
	}
	return res
}
