// Package chainwatch tracks transactions broadcast to the network that have
// not confirmed yet.
package chainwatch

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/SscSPs/wallet_history_app/internal/apperrors"
	"github.com/SscSPs/wallet_history_app/internal/core/domain"
)

// DefaultMaxTracked bounds the unconfirmed set when no limit is configured.
const DefaultMaxTracked = 10000

// MempoolTracker holds the current unconfirmed set in memory.
type MempoolTracker struct {
	params     *chaincfg.Params
	now        func() time.Time
	maxTracked int

	mu  sync.RWMutex
	txs map[chainhash.Hash]domain.SubmittedTransaction
}

// Option configures a MempoolTracker.
type Option func(*MempoolTracker)

// WithClock overrides the clock used to stamp newly tracked transactions.
func WithClock(now func() time.Time) Option {
	return func(t *MempoolTracker) {
		t.now = now
	}
}

// WithMaxTracked caps how many transactions may be tracked at once. Values
// below 1 keep the default.
func WithMaxTracked(n int) Option {
	return func(t *MempoolTracker) {
		if n > 0 {
			t.maxTracked = n
		}
	}
}

// NewMempoolTracker creates a tracker decoding output scripts for params.
func NewMempoolTracker(params *chaincfg.Params, opts ...Option) *MempoolTracker {
	t := &MempoolTracker{
		params:     params,
		now:        time.Now,
		maxTracked: DefaultMaxTracked,
		txs:        make(map[chainhash.Hash]domain.SubmittedTransaction),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Track decodes a serialized transaction and adds it to the set. Tracking a
// transaction already present returns the stored entry unchanged. A new
// transaction is rejected with apperrors.ErrCapacityExceeded once the set is full.
func (t *MempoolTracker) Track(_ context.Context, rawTx []byte) (*domain.SubmittedTransaction, error) {
	var msgTx wire.MsgTx
	if err := msgTx.Deserialize(bytes.NewReader(rawTx)); err != nil {
		return nil, fmt.Errorf("%w: cannot decode transaction: %w", apperrors.ErrValidation, err)
	}
	hash := msgTx.TxHash()

	t.mu.Lock()
	defer t.mu.Unlock()

	if existing, ok := t.txs[hash]; ok {
		return &existing, nil
	}
	if len(t.txs) >= t.maxTracked {
		return nil, fmt.Errorf("%w: already tracking %d transactions", apperrors.ErrCapacityExceeded, len(t.txs))
	}

	submitted := domain.SubmittedTransaction{
		TxHash:    hash.String(),
		CreatedAt: t.now().UTC(),
		Outs:      make([]domain.TxOut, 0, len(msgTx.TxOut)),
	}
	for _, out := range msgTx.TxOut {
		submitted.Outs = append(submitted.Outs, domain.TxOut{
			Sats:    btcutil.Amount(out.Value),
			Address: t.outputAddress(out.PkScript),
		})
	}
	t.txs[hash] = submitted

	return &submitted, nil
}

// outputAddress returns the single standard address paid by pkScript, or ""
// for bare multisig, OP_RETURN and non-standard scripts.
func (t *MempoolTracker) outputAddress(pkScript []byte) string {
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, t.params)
	if err != nil || len(addrs) != 1 {
		return ""
	}
	return addrs[0].EncodeAddress()
}

// Forget drops a transaction from the set. It returns apperrors.ErrNotFound
// when the hash is not tracked.
func (t *MempoolTracker) Forget(_ context.Context, txHash string) error {
	hash, err := chainhash.NewHashFromStr(txHash)
	if err != nil {
		return fmt.Errorf("%w: invalid transaction hash: %w", apperrors.ErrValidation, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.txs[*hash]; !ok {
		return fmt.Errorf("%w: transaction %s is not tracked", apperrors.ErrNotFound, txHash)
	}
	delete(t.txs, *hash)
	return nil
}

// PendingTransactions returns a copy of the set, newest first. Ties on
// CreatedAt are broken by TxHash.
func (t *MempoolTracker) PendingTransactions(_ context.Context) ([]domain.SubmittedTransaction, error) {
	t.mu.RLock()
	out := make([]domain.SubmittedTransaction, 0, len(t.txs))
	for _, tx := range t.txs {
		out = append(out, tx)
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].TxHash < out[j].TxHash
	})
	return out, nil
}

// Len reports how many transactions are tracked.
func (t *MempoolTracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.txs)
}
