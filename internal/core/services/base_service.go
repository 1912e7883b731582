package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/wallet_history_app/internal/apperrors"
	portsrepo "github.com/SscSPs/wallet_history_app/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_history_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	WalletReader portsrepo.WalletReader
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeWalletOwner checks that userID owns walletID.
// Returns apperrors.ErrNotFound if the wallet doesn't exist.
// Returns apperrors.ErrForbidden if the wallet belongs to someone else.
func (s *BaseService) AuthorizeWalletOwner(ctx context.Context, userID, walletID string) error {
	if s.WalletReader == nil {
		return fmt.Errorf("%w: wallet authorizer not configured", apperrors.ErrInternal)
	}

	wallet, err := s.WalletReader.FindWalletByID(ctx, walletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.GetLogger(ctx).Warn("Authorization failed: wallet not found", slog.String("user_id", userID), slog.String("wallet_id", walletID))
			return err
		}
		s.LogError(ctx, err, "Failed to load wallet for authorization", slog.String("wallet_id", walletID))
		return fmt.Errorf("failed to check authorization: %w", err)
	}

	if wallet.UserID != userID {
		s.GetLogger(ctx).Warn("Authorization failed: wallet owned by another user", slog.String("user_id", userID), slog.String("wallet_id", walletID))
		return fmt.Errorf("%w: wallet %s", apperrors.ErrForbidden, walletID)
	}
	return nil
}
