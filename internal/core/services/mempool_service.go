package services

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/wallet_history_app/internal/apperrors"
	"github.com/SscSPs/wallet_history_app/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_history_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_history_app/internal/core/ports/services"
	"github.com/SscSPs/wallet_history_app/internal/platform/metrics"
)

type mempoolService struct {
	BaseService
	store   portsrepo.MempoolStoreFacade
	metrics *metrics.Metrics
}

// NewMempoolService creates a service feeding and reading the unconfirmed set.
// m may be nil.
func NewMempoolService(store portsrepo.MempoolStoreFacade, m *metrics.Metrics) portssvc.MempoolSvcFacade {
	return &mempoolService{store: store, metrics: m}
}

// TrackRawTransaction decodes a hex serialized transaction and adds it to the set.
func (s *mempoolService) TrackRawTransaction(ctx context.Context, rawTxHex string) (*domain.SubmittedTransaction, error) {
	raw, err := hex.DecodeString(rawTxHex)
	if err != nil {
		return nil, fmt.Errorf("%w: rawTx is not valid hex: %w", apperrors.ErrValidation, err)
	}

	tx, err := s.store.Track(ctx, raw)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to track transaction")
		}
		return nil, err
	}
	s.updateGauge()

	s.LogInfo(ctx, "Tracking unconfirmed transaction",
		slog.String("tx_hash", tx.TxHash),
		slog.Int("outputs", len(tx.Outs)))
	return tx, nil
}

// ForgetTransaction removes a transaction, typically once it has confirmed.
func (s *mempoolService) ForgetTransaction(ctx context.Context, txHash string) error {
	if err := s.store.Forget(ctx, txHash); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to forget transaction", slog.String("tx_hash", txHash))
		}
		return err
	}
	s.updateGauge()

	s.LogInfo(ctx, "Stopped tracking transaction", slog.String("tx_hash", txHash))
	return nil
}

// PendingTransactions returns the current unconfirmed set.
func (s *mempoolService) PendingTransactions(ctx context.Context) ([]domain.SubmittedTransaction, error) {
	return s.store.PendingTransactions(ctx)
}

func (s *mempoolService) updateGauge() {
	if s.metrics != nil {
		s.metrics.MempoolTracked.Set(float64(s.store.Len()))
	}
}
