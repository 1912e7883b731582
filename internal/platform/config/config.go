package config

import (
	"log"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string
	JWTIssuer     string

	// History
	MemoSharingThreshold btcutil.Amount
	DedupPendingByTxHash bool
	HistoryPageSize      int

	// Chain
	BitcoinNetwork    string
	MempoolMaxTracked int

	// HTTP
	RateLimit          string
	CORSAllowedOrigins []string
	DBQueryTimeout     time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("MEMO_SHARING_SATS_THRESHOLD", 1000)
	v.SetDefault("DEDUP_PENDING_BY_TX_HASH", false)
	v.SetDefault("HISTORY_PAGE_SIZE", 50)
	v.SetDefault("BITCOIN_NETWORK", "mainnet")
	v.SetDefault("MEMPOOL_MAX_TRACKED", 10000)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("DB_QUERY_TIMEOUT", "5s")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = v.GetString("JWT_ISSUER")

	threshold := v.GetInt64("MEMO_SHARING_SATS_THRESHOLD")
	if threshold < 0 {
		log.Printf("Warning: Invalid value for MEMO_SHARING_SATS_THRESHOLD (%d). Defaulting to 1000.\n", threshold)
		threshold = 1000
	}
	cfg.MemoSharingThreshold = btcutil.Amount(threshold)
	cfg.DedupPendingByTxHash = v.GetBool("DEDUP_PENDING_BY_TX_HASH")

	cfg.HistoryPageSize = v.GetInt("HISTORY_PAGE_SIZE")
	if cfg.HistoryPageSize <= 0 || cfg.HistoryPageSize > 200 {
		log.Printf("Warning: Invalid value for HISTORY_PAGE_SIZE (%d). Defaulting to 50.\n", cfg.HistoryPageSize)
		cfg.HistoryPageSize = 50
	}

	cfg.BitcoinNetwork = v.GetString("BITCOIN_NETWORK")
	cfg.MempoolMaxTracked = v.GetInt("MEMPOOL_MAX_TRACKED")
	if cfg.MempoolMaxTracked <= 0 {
		log.Printf("Warning: Invalid value for MEMPOOL_MAX_TRACKED (%d). Defaulting to 10000.\n", cfg.MempoolMaxTracked)
		cfg.MempoolMaxTracked = 10000
	}
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	timeoutStr := v.GetString("DB_QUERY_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 5 * time.Second
		log.Printf("Warning: Invalid value for DB_QUERY_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.DBQueryTimeout = timeout

	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
