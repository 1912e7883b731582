package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/wallet_history_app/internal/apperrors"
	"github.com/SscSPs/wallet_history_app/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_history_app/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_history_app/internal/models"
	"github.com/SscSPs/wallet_history_app/internal/utils/mapping"
	"github.com/SscSPs/wallet_history_app/internal/utils/pagination"
)

const defaultLedgerPageSize = 50

const ledgerRecordColumns = `record_id, wallet_id, tx_type, credit, debit, fee, usd, fee_usd,
	username, counter_party_wallet_id, address, tx_hash, payment_hash, pubkey,
	payment_request, payment_secret, pending_confirmation, memo_from_payer, ln_memo, "timestamp"`

type PgxLedgerRecordRepository struct {
	BaseRepository
}

// newPgxLedgerRecordRepository creates a new repository for ledger records.
func newPgxLedgerRecordRepository(pool *pgxpool.Pool, queryTimeout time.Duration) *PgxLedgerRecordRepository {
	return &PgxLedgerRecordRepository{BaseRepository: newBaseRepository(pool, queryTimeout)}
}

// Ensure PgxLedgerRecordRepository implements portsrepo.LedgerRepositoryWithTx
var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRecordRepository)(nil)

// ReadWalletSnapshot reads a page of records and the wallet's owned addresses
// inside one read-only REPEATABLE READ transaction.
func (r *PgxLedgerRecordRepository) ReadWalletSnapshot(ctx context.Context, walletID string, filter domain.LedgerRecordFilter, limit int, nextToken *string) (*domain.WalletSnapshot, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.BeginReadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	records, next, err := listLedgerRecords(ctx, tx, walletID, filter, limit, nextToken)
	if err != nil {
		return nil, err
	}
	addresses, err := listAddresses(ctx, tx, walletID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &domain.WalletSnapshot{
		WalletID:  walletID,
		Records:   records,
		Addresses: addresses,
		NextToken: next,
	}, nil
}

func listLedgerRecords(ctx context.Context, q querier, walletID string, filter domain.LedgerRecordFilter, limit int, nextToken *string) ([]domain.LedgerRecord, *string, error) {
	// Default limit handling
	if limit <= 0 {
		limit = defaultLedgerPageSize
	}
	// Fetch one extra row to know whether another page exists
	fetchLimit := limit + 1

	var sb strings.Builder
	sb.WriteString("SELECT " + ledgerRecordColumns + " FROM ledger_records WHERE wallet_id = $1")
	args := []any{walletID}

	if filter.PendingOnly {
		sb.WriteString(" AND pending_confirmation = TRUE")
	}
	if filter.TxHash != "" {
		args = append(args, filter.TxHash)
		sb.WriteString(" AND tx_hash = $" + strconv.Itoa(len(args)))
	}
	if nextToken != nil && *nextToken != "" {
		lastTimestamp, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %w", apperrors.ErrValidation, decodeErr))
		}
		args = append(args, lastTimestamp, lastID)
		sb.WriteString(fmt.Sprintf(` AND ("timestamp", record_id) < ($%d, $%d)`, len(args)-1, len(args)))
	}
	args = append(args, fetchLimit)
	sb.WriteString(` ORDER BY "timestamp" DESC, record_id DESC LIMIT $` + strconv.Itoa(len(args)) + ";")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query ledger records for wallet %s: %w", walletID, err)
	}
	modelRecords, err := pgx.CollectRows(rows, scanLedgerRecord)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan ledger records for wallet %s: %w", walletID, err)
	}

	var nextTokenVal *string
	if len(modelRecords) > limit {
		last := modelRecords[limit-1] // The actual last item of the current page
		token := pagination.EncodeToken(last.Timestamp, last.RecordID)
		nextTokenVal = &token
		modelRecords = modelRecords[:limit]
	}

	return mapping.ToDomainLedgerRecordSlice(modelRecords), nextTokenVal, nil
}

func scanLedgerRecord(row pgx.CollectableRow) (models.LedgerRecord, error) {
	var m models.LedgerRecord
	err := row.Scan(
		&m.RecordID,
		&m.WalletID,
		&m.TxType,
		&m.Credit,
		&m.Debit,
		&m.Fee,
		&m.Usd,
		&m.FeeUsd,
		&m.Username,
		&m.CounterPartyWalletID,
		&m.Address,
		&m.TxHash,
		&m.PaymentHash,
		&m.Pubkey,
		&m.PaymentRequest,
		&m.PaymentSecret,
		&m.PendingConfirmation,
		&m.MemoFromPayer,
		&m.LnMemo,
		&m.Timestamp,
	)
	return m, err
}
