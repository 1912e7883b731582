package config

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, btcutil.Amount(1000), cfg.MemoSharingThreshold)
	assert.False(t, cfg.DedupPendingByTxHash)
	assert.Equal(t, 50, cfg.HistoryPageSize)
	assert.Equal(t, "mainnet", cfg.BitcoinNetwork)
	assert.Equal(t, 10000, cfg.MempoolMaxTracked)
	assert.Empty(t, cfg.JWTIssuer, "issuer is only checked when configured")
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.DBQueryTimeout)
}

func TestFromViper_Overrides(t *testing.T) {
	testCases := []struct {
		name  string
		set   map[string]any
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "mempool cap",
			set:  map[string]any{"MEMPOOL_MAX_TRACKED": 250},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 250, cfg.MempoolMaxTracked)
			},
		},
		{
			name: "non-positive mempool cap falls back",
			set:  map[string]any{"MEMPOOL_MAX_TRACKED": -1},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 10000, cfg.MempoolMaxTracked)
			},
		},
		{
			name: "threshold and dedup",
			set:  map[string]any{"MEMO_SHARING_SATS_THRESHOLD": 5000, "DEDUP_PENDING_BY_TX_HASH": true},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, btcutil.Amount(5000), cfg.MemoSharingThreshold)
				assert.True(t, cfg.DedupPendingByTxHash)
			},
		},
		{
			name: "negative threshold falls back",
			set:  map[string]any{"MEMO_SHARING_SATS_THRESHOLD": -1},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, btcutil.Amount(1000), cfg.MemoSharingThreshold)
			},
		},
		{
			name: "page size out of range falls back",
			set:  map[string]any{"HISTORY_PAGE_SIZE": 1000},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 50, cfg.HistoryPageSize)
			},
		},
		{
			name: "bad timeout falls back",
			set:  map[string]any{"DB_QUERY_TIMEOUT": "soon"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 5*time.Second, cfg.DBQueryTimeout)
			},
		},
		{
			name: "origin list is trimmed",
			set:  map[string]any{"CORS_ALLOWED_ORIGINS": " https://a.example , ,https://b.example"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := viper.New()
			setDefaults(v)
			for k, val := range tc.set {
				v.Set(k, val)
			}
			tc.check(t, fromViper(v))
		})
	}
}
