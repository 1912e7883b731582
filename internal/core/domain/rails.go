package domain

import (
	"github.com/lightningnetwork/lnd/fn/v2"
)

// PaymentInitiationMethod names how the payer originated a payment.
type PaymentInitiationMethod string

const (
	InitiationIntraLedger PaymentInitiationMethod = "IntraLedger"
	InitiationOnChain     PaymentInitiationMethod = "OnChain"
	InitiationLightning   PaymentInitiationMethod = "Lightning"
)

// SettlementMethod names how value moved at the ledger level.
type SettlementMethod string

const (
	SettlementIntraLedger SettlementMethod = "IntraLedger"
	SettlementOnChain     SettlementMethod = "OnChain"
	SettlementLightning   SettlementMethod = "Lightning"
)

// InitiationVia is a closed union. The unexported marker keeps other
// packages from adding variants, so switches over it stay exhaustive.
type InitiationVia interface {
	Method() PaymentInitiationMethod
	initiationVia()
}

// SettlementVia is a closed union, see InitiationVia.
type SettlementVia interface {
	Method() SettlementMethod
	settlementVia()
}

type IntraLedgerInitiation struct {
	CounterPartyWalletID string
	CounterPartyUsername fn.Option[string]
}

func (IntraLedgerInitiation) Method() PaymentInitiationMethod { return InitiationIntraLedger }
func (IntraLedgerInitiation) initiationVia()                  {}

type OnChainInitiation struct {
	Address string
}

func (OnChainInitiation) Method() PaymentInitiationMethod { return InitiationOnChain }
func (OnChainInitiation) initiationVia()                  {}

type LightningInitiation struct {
	PaymentRequest string
	PaymentHash    fn.Option[string]
	Pubkey         string
}

func (LightningInitiation) Method() PaymentInitiationMethod { return InitiationLightning }
func (LightningInitiation) initiationVia()                  {}

// NewLightningInitiation builds a Lightning initiation descriptor. Older
// ledger rows may lack the payment hash; it is then None.
func NewLightningInitiation(paymentRequest, paymentHash, pubkey string) LightningInitiation {
	return LightningInitiation{
		PaymentRequest: paymentRequest,
		PaymentHash:    OptionalString(paymentHash),
		Pubkey:         pubkey,
	}
}

type IntraLedgerSettlement struct {
	CounterPartyWalletID string
	CounterPartyUsername fn.Option[string]
}

func (IntraLedgerSettlement) Method() SettlementMethod { return SettlementIntraLedger }
func (IntraLedgerSettlement) settlementVia()           {}

type OnChainSettlement struct {
	TransactionHash string
}

func (OnChainSettlement) Method() SettlementMethod { return SettlementOnChain }
func (OnChainSettlement) settlementVia()           {}

type LightningSettlement struct {
	PaymentSecret string
}

func (LightningSettlement) Method() SettlementMethod { return SettlementLightning }
func (LightningSettlement) settlementVia()           {}

// OptionalString maps an empty string to None.
func OptionalString(s string) fn.Option[string] {
	if s == "" {
		return fn.None[string]()
	}
	return fn.Some(s)
}
