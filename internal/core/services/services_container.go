package services

import (
	portsrepo "github.com/SscSPs/wallet_history_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_history_app/internal/core/ports/services"
	"github.com/SscSPs/wallet_history_app/internal/platform/config"
	"github.com/SscSPs/wallet_history_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The mempool service is the broadcast watcher the history service reads from
	container.Mempool = NewMempoolService(repos.MempoolRepo, m)

	container.WalletHistory = NewWalletHistoryService(
		repos.LedgerRepo,
		repos.WalletRepo,
		repos.PriceRepo,
		container.Mempool,
		WithMemoSharingThreshold(cfg.MemoSharingThreshold),
		WithPendingDedup(cfg.DedupPendingByTxHash),
		WithDefaultPageSize(cfg.HistoryPageSize),
		WithHistoryMetrics(m),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.WalletHistorySvcFacade = (*walletHistoryService)(nil)
	_ portssvc.MempoolSvcFacade       = (*mempoolService)(nil)
)
