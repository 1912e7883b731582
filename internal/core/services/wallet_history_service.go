package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/wallet_history_app/internal/apperrors"
	"github.com/SscSPs/wallet_history_app/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_history_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_history_app/internal/core/ports/services"
	"github.com/SscSPs/wallet_history_app/internal/core/txhistory"
	"github.com/SscSPs/wallet_history_app/internal/dto"
	"github.com/SscSPs/wallet_history_app/internal/platform/metrics"
)

const (
	defaultHistoryPageSize = 50
	// maxFilteredRecords caps the pending and by-hash lookups, which are not paginated.
	maxFilteredRecords = 200
)

// WalletHistoryOption is a functional option for configuring the wallet history service
type WalletHistoryOption func(*walletHistoryService)

// WithMemoSharingThreshold sets the minimum credit for which a payer's memo is shown.
func WithMemoSharingThreshold(threshold btcutil.Amount) WalletHistoryOption {
	return func(s *walletHistoryService) {
		s.memoSharingThreshold = threshold
	}
}

// WithPendingDedup drops provisional entries whose transaction already confirmed.
func WithPendingDedup(enabled bool) WalletHistoryOption {
	return func(s *walletHistoryService) {
		s.dedupPending = enabled
	}
}

// WithDefaultPageSize sets the page size used when the caller gives none.
func WithDefaultPageSize(size int) WalletHistoryOption {
	return func(s *walletHistoryService) {
		if size > 0 {
			s.defaultPageSize = size
		}
	}
}

// WithHistoryMetrics records build outcomes on m.
func WithHistoryMetrics(m *metrics.Metrics) WalletHistoryOption {
	return func(s *walletHistoryService) {
		s.metrics = m
	}
}

type walletHistoryService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRecordReader
	priceRepo  portsrepo.PriceReader
	watcher    portssvc.BroadcastWatcher
	metrics    *metrics.Metrics

	memoSharingThreshold btcutil.Amount
	dedupPending         bool
	defaultPageSize      int
}

// NewWalletHistoryService creates a wallet history service.
func NewWalletHistoryService(
	ledgerRepo portsrepo.LedgerRecordReader,
	walletRepo portsrepo.WalletReader,
	priceRepo portsrepo.PriceReader,
	watcher portssvc.BroadcastWatcher,
	options ...WalletHistoryOption,
) portssvc.WalletHistorySvcFacade {
	s := &walletHistoryService{
		BaseService:          BaseService{WalletReader: walletRepo},
		ledgerRepo:           ledgerRepo,
		priceRepo:            priceRepo,
		watcher:              watcher,
		memoSharingThreshold: txhistory.DefaultMemoSharingThreshold,
		defaultPageSize:      defaultHistoryPageSize,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// ListWalletTransactions returns a page of the wallet's history. Provisional
// entries are only layered on the first page so they are not repeated.
func (s *walletHistoryService) ListWalletTransactions(ctx context.Context, walletID string, userID string, params dto.ListWalletTransactionsParams) (*dto.WalletHistoryPage, error) {
	if err := s.AuthorizeWalletOwner(ctx, userID, walletID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = s.defaultPageSize
	}

	snapshot, err := s.ledgerRepo.ReadWalletSnapshot(ctx, walletID, domain.LedgerRecordFilter{}, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to read wallet snapshot", slog.String("wallet_id", walletID))
		return nil, fmt.Errorf("failed to read history for wallet %s: %w", walletID, err)
	}

	history, err := s.build(ctx, walletID, snapshot.Records)
	if err != nil {
		return nil, err
	}

	firstPage := params.NextToken == nil || *params.NextToken == ""
	transactions := history.Transactions()
	if firstPage {
		transactions, err = s.layerPending(ctx, walletID, history, snapshot.Addresses, fn.None[string]())
		if err != nil {
			return nil, err
		}
	}

	s.LogDebug(ctx, "Wallet history built",
		slog.String("wallet_id", walletID),
		slog.Int("confirmed", history.Len()),
		slog.Int("total", len(transactions)))

	return &dto.WalletHistoryPage{
		Transactions: transactions,
		NextToken:    snapshot.NextToken,
	}, nil
}

// ListPendingTransactions returns unconfirmed ledger records plus provisional entries.
func (s *walletHistoryService) ListPendingTransactions(ctx context.Context, walletID string, userID string) ([]domain.WalletTransaction, error) {
	if err := s.AuthorizeWalletOwner(ctx, userID, walletID); err != nil {
		return nil, err
	}

	filter := domain.LedgerRecordFilter{PendingOnly: true}
	snapshot, err := s.ledgerRepo.ReadWalletSnapshot(ctx, walletID, filter, maxFilteredRecords, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to read pending records", slog.String("wallet_id", walletID))
		return nil, fmt.Errorf("failed to read pending records for wallet %s: %w", walletID, err)
	}

	history, err := s.build(ctx, walletID, snapshot.Records)
	if err != nil {
		return nil, err
	}
	return s.layerPending(ctx, walletID, history, snapshot.Addresses, fn.None[string]())
}

// GetTransactionsByHash returns the wallet's entries for one on-chain transaction.
func (s *walletHistoryService) GetTransactionsByHash(ctx context.Context, walletID string, userID string, txHash string) ([]domain.WalletTransaction, error) {
	if _, err := chainhash.NewHashFromStr(txHash); err != nil {
		return nil, fmt.Errorf("%w: invalid transaction hash: %w", apperrors.ErrValidation, err)
	}
	if err := s.AuthorizeWalletOwner(ctx, userID, walletID); err != nil {
		return nil, err
	}

	filter := domain.LedgerRecordFilter{TxHash: txHash}
	snapshot, err := s.ledgerRepo.ReadWalletSnapshot(ctx, walletID, filter, maxFilteredRecords, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to read records by hash", slog.String("wallet_id", walletID), slog.String("tx_hash", txHash))
		return nil, fmt.Errorf("failed to read records for hash %s: %w", txHash, err)
	}

	history, err := s.build(ctx, walletID, snapshot.Records)
	if err != nil {
		return nil, err
	}
	return s.layerPending(ctx, walletID, history, snapshot.Addresses, fn.Some(txHash))
}

// build runs the assembler and records its outcome.
func (s *walletHistoryService) build(ctx context.Context, walletID string, records []domain.LedgerRecord) (*txhistory.ConfirmedHistory, error) {
	history, err := txhistory.FromLedger(records, s.memoSharingThreshold)
	if err == nil {
		s.observeBuild(metrics.OutcomeSuccess)
		return history, nil
	}

	var classErr *txhistory.ClassificationError
	if errors.As(err, &classErr) {
		s.observeBuild(metrics.OutcomeClassificationError)
		if s.metrics != nil {
			s.metrics.ClassificationErrors.WithLabelValues(string(classErr.Type)).Inc()
		}
		s.LogError(ctx, err, "Ledger record could not be classified",
			slog.String("wallet_id", walletID),
			slog.String("record_id", classErr.RecordID),
			slog.String("type", string(classErr.Type)))
		return nil, err
	}

	s.observeBuild(metrics.OutcomeError)
	s.LogError(ctx, err, "Failed to build wallet history", slog.String("wallet_id", walletID))
	return nil, fmt.Errorf("failed to build history for wallet %s: %w", walletID, err)
}

// layerPending prepends provisional entries for unconfirmed outputs paying
// into addresses. When onlyHash is set, other transactions are ignored.
func (s *walletHistoryService) layerPending(
	ctx context.Context,
	walletID string,
	history *txhistory.ConfirmedHistory,
	addresses []string,
	onlyHash fn.Option[string],
) ([]domain.WalletTransaction, error) {

	if s.watcher == nil || len(addresses) == 0 {
		return history.Transactions(), nil
	}

	broadcasts, err := s.watcher.PendingTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read unconfirmed transactions", slog.String("wallet_id", walletID))
		return nil, fmt.Errorf("failed to read unconfirmed transactions: %w", err)
	}

	outputs := domain.FlattenOutputs(broadcasts)
	onlyHash.WhenSome(func(hash string) {
		outputs = fn.Filter(outputs, func(o domain.BroadcastOutput) bool {
			return o.TxHash == hash
		})
	})
	if len(outputs) == 0 {
		return history.Transactions(), nil
	}

	usdPerSat, err := s.currentPrice(ctx)
	if err != nil {
		return nil, err
	}

	var withPending txhistory.HistoryWithPending
	if s.dedupPending {
		withPending = history.AddPendingIncomingDistinct(walletID, outputs, addresses, usdPerSat)
	} else {
		withPending = history.AddPendingIncoming(walletID, outputs, addresses, usdPerSat)
	}

	if added := len(withPending.Transactions) - history.Len(); added > 0 && s.metrics != nil {
		s.metrics.PendingEntries.Add(float64(added))
	}
	return withPending.Transactions, nil
}

// currentPrice reads the spot price. A missing price values provisional
// entries at zero rather than hiding them.
func (s *walletHistoryService) currentPrice(ctx context.Context) (decimal.Decimal, error) {
	if s.priceRepo == nil {
		return decimal.Zero, nil
	}
	price, err := s.priceRepo.LatestUsdPerSat(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.GetLogger(ctx).Warn("No spot price available, valuing pending entries at zero")
			return decimal.Zero, nil
		}
		s.LogError(ctx, err, "Failed to read spot price")
		return decimal.Zero, fmt.Errorf("failed to read spot price: %w", err)
	}
	return price, nil
}

func (s *walletHistoryService) observeBuild(outcome string) {
	if s.metrics != nil {
		s.metrics.HistoryBuilds.WithLabelValues(outcome).Inc()
	}
}
