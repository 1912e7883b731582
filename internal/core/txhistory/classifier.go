// Package txhistory builds a wallet's transaction history from ledger records
// and unconfirmed broadcasts. Everything here is a pure transform over its
// inputs: no I/O, no shared state.
package txhistory

import (
	"fmt"

	"github.com/SscSPs/wallet_history_app/internal/apperrors"
	"github.com/SscSPs/wallet_history_app/internal/core/domain"
)

// ClassificationError reports a ledger record that could not be mapped to a
// rail pair.
type ClassificationError struct {
	RecordID string
	Type     domain.LedgerTransactionType
	Err      error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classify ledger record %s (type %q): %v", e.RecordID, e.Type, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

func (e *ClassificationError) Is(target error) bool {
	return target == apperrors.ErrClassification
}

// effectiveType applies the reclassification rule: an intra-ledger record
// that carries a Lightning payment hash was paid through an invoice.
func effectiveType(r domain.LedgerRecord) domain.LedgerTransactionType {
	if r.Type == domain.IntraLedger && r.PaymentHash != "" {
		return domain.LnIntraLedger
	}
	return r.Type
}

// Classify maps a ledger record to its initiation and settlement rails.
func Classify(r domain.LedgerRecord) (domain.InitiationVia, domain.SettlementVia, error) {
	txType := effectiveType(r)

	intraLedger := func() domain.IntraLedgerSettlement {
		return domain.IntraLedgerSettlement{
			CounterPartyWalletID: r.CounterPartyWalletID,
			CounterPartyUsername: domain.OptionalString(r.Username),
		}
	}

	switch txType {
	case domain.IntraLedger:
		return domain.IntraLedgerInitiation{
			CounterPartyWalletID: r.CounterPartyWalletID,
			CounterPartyUsername: domain.OptionalString(r.Username),
		}, intraLedger(), nil

	case domain.OnchainIntraLedger:
		return domain.OnChainInitiation{Address: r.Address}, intraLedger(), nil

	case domain.OnchainPayment, domain.OnchainReceipt:
		return domain.OnChainInitiation{Address: r.Address},
			domain.OnChainSettlement{TransactionHash: r.TxHash}, nil

	case domain.LnIntraLedger:
		return domain.NewLightningInitiation(r.PaymentRequest, r.PaymentHash, r.Pubkey), intraLedger(), nil

	case domain.Payment, domain.Invoice:
		return domain.NewLightningInitiation(r.PaymentRequest, r.PaymentHash, r.Pubkey),
			domain.LightningSettlement{PaymentSecret: r.PaymentSecret}, nil

	default:
		return nil, nil, &ClassificationError{
			RecordID: r.ID,
			Type:     r.Type,
			Err:      fmt.Errorf("%w: unknown type tag", apperrors.ErrClassification),
		}
	}
}
