package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// generateWorkerID creates a unique worker ID using hostname and PID.
func generateWorkerID() string {
	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "quality"
	}
	return fmt.Sprintf("%s-%d", hostname, os.Getpid())
}

type Config struct {
	Environment string
	LogLevel    string
	LogPretty   bool

	// Pattern store backend: file | redis | mongo | postgres
	PatternStoreBackend string
	PatternStorePath    string // file backend
	PatternTTL          time.Duration

	// Connections
	RedisURL    string
	MongoDBURL  string
	MongoDBName string
	DatabaseURL string

	// Delivery intelligence (SQLite)
	DeliveryIntelPath string

	// Verification
	DomainCacheTTL   time.Duration
	EmailCacheTTL    time.Duration
	VerifyWorkers    int
	VerifyRatePerSec float64
	VerifyBurst      int

	// DNS
	DNSTimeout    time.Duration
	DNSRatePerSec float64

	// Sanitization policy
	PreferUSPhones         bool
	DeprioritizeRoleEmails bool
	GuessLimit             int

	// Worker / stream intake
	WorkerID          string
	ConsumerBatchSize int
	ConsumerBlockMS   int
}

func Load() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogPretty:   getEnvBool("LOG_PRETTY", false),

		PatternStoreBackend: getEnv("PATTERN_STORE", "file"),
		PatternStorePath:    getEnv("PATTERN_STORE_PATH", "data/domain_patterns.json"),
		PatternTTL:          time.Duration(getEnvInt("PATTERN_TTL_DAYS", 30)) * 24 * time.Hour,

		RedisURL:    getEnv("REDIS_URL", ""),
		MongoDBURL:  getEnv("MONGODB_URL", ""),
		MongoDBName: getEnv("MONGODB_DATABASE", "leadquality"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		DeliveryIntelPath: getEnv("DELIVERY_INTEL_PATH", "data/delivery_intel.db"),

		DomainCacheTTL:   time.Duration(getEnvInt("DOMAIN_CACHE_TTL_HOURS", 168)) * time.Hour,
		EmailCacheTTL:    time.Duration(getEnvInt("EMAIL_CACHE_TTL_HOURS", 24)) * time.Hour,
		VerifyWorkers:    getEnvInt("VERIFY_WORKERS", 8),
		VerifyRatePerSec: getEnvFloat("VERIFY_RATE_PER_SEC", 10),
		VerifyBurst:      getEnvInt("VERIFY_BURST", 20),

		DNSTimeout:    time.Duration(getEnvInt("DNS_TIMEOUT_SEC", 5)) * time.Second,
		DNSRatePerSec: getEnvFloat("DNS_RATE_PER_SEC", 20),

		PreferUSPhones:         getEnvBool("PREFER_US_PHONES", true),
		DeprioritizeRoleEmails: getEnvBool("DEPRIORITIZE_ROLE_EMAILS", true),
		GuessLimit:             getEnvInt("GUESS_LIMIT", 3),

		WorkerID:          getEnv("WORKER_ID", generateWorkerID()),
		ConsumerBatchSize: getEnvInt("CONSUMER_BATCH_SIZE", 50),
		ConsumerBlockMS:   getEnvInt("CONSUMER_BLOCK_MS", 5000),
	}

	switch cfg.PatternStoreBackend {
	case "file", "redis", "mongo", "postgres":
	default:
		return nil, fmt.Errorf("unknown PATTERN_STORE backend %q", cfg.PatternStoreBackend)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
