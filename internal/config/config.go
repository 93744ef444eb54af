package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	Environment string `validate:"required"`
	ServiceName string
	Version     string
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string

	// Relational store for buyers and item templates
	DBDriver          string `validate:"oneof=postgres sqlite"`
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	SQLitePath        string

	// Price list blob store
	PriceListStore   string `validate:"oneof=sql redis dynamodb file"`
	RedisAddr        string
	RedisPassword    string
	RedisDB          int `validate:"min=0"`
	DynamoDBTable    string
	DynamoDBEndpoint string
	AWSRegion        string
	PriceListDir     string

	JWTSecret      string `validate:"required,min=16"`
	TrustedProxies []string

	CatalogPath      string `validate:"required"`
	CatalogCacheSize int    `validate:"min=1"`
	CatalogCacheTTL  time.Duration

	EntriesPerPage int    `validate:"min=1,max=100"`
	MaxPages       int    `validate:"min=1,max=100"`
	SortQuality    string `validate:"oneof=asc desc"`

	IronPerCopper   int `validate:"min=2"`
	CopperPerSilver int `validate:"min=2"`
	SilverPerGold   int `validate:"min=2"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),

		DBDriver:          getEnv("DB_DRIVER", DriverPostgres),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "buyermerchant"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		SQLitePath:        getEnv("SQLITE_PATH", DefaultSQLitePath),

		PriceListStore:   getEnv("PRICELIST_STORE", StoreSQL),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvAsInt("REDIS_DB", 0),
		DynamoDBTable:    getEnv("DYNAMODB_TABLE", ""),
		DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		AWSRegion:        getEnv("AWS_REGION", DefaultAWSRegion),
		PriceListDir:     getEnv("PRICELIST_DIR", DefaultPriceListDir),

		JWTSecret:      getEnv("JWT_SECRET", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		CatalogPath:      getEnv("CATALOG_PATH", ConfigPathCatalog),
		CatalogCacheSize: getEnvAsInt("CATALOG_CACHE_SIZE", DefaultCatalogCacheSize),
		CatalogCacheTTL:  getEnvAsDuration("CATALOG_CACHE_TTL", DefaultCatalogCacheTTL),

		EntriesPerPage: getEnvAsInt("ENTRIES_PER_PAGE", DefaultEntriesPerPage),
		MaxPages:       getEnvAsInt("MAX_PAGES", DefaultMaxPages),
		SortQuality:    getEnv("SORT_QUALITY", DefaultSortQuality),

		IronPerCopper:   getEnvAsInt("COINS_IRON_PER_COPPER", DefaultCoinRatio),
		CopperPerSilver: getEnvAsInt("COINS_COPPER_PER_SILVER", DefaultCoinRatio),
		SilverPerGold:   getEnvAsInt("COINS_SILVER_PER_GOLD", DefaultCoinRatio),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set for security")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the integer value of key, or defaultValue when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma separated variable, dropping blank items
func getEnvAsList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// getEnvAsDuration returns the duration value of key, or defaultValue when unset or malformed
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
