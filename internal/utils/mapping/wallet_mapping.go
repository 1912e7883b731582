package mapping

import (
	"github.com/SscSPs/wallet_history_app/internal/core/domain"
	"github.com/SscSPs/wallet_history_app/internal/models"
)

// ToDomainWallet converts a model Wallet to a domain Wallet
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:    m.WalletID,
		UserID:      m.UserID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

