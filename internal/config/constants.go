package config

import "time"

const (
	// Configuration file paths
	ConfigPathCatalog = "configs/items.json"
)

// Relational drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Price list stores
const (
	StoreSQL      = "sql"
	StoreRedis    = "redis"
	StoreDynamoDB = "dynamodb"
	StoreFile     = "file"
)

// Defaults
const (
	DefaultPort              = "8080"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "buyer-merchant"
	DefaultVersion           = "dev"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultSQLitePath        = "data/buyermerchant.db"
	DefaultAWSRegion         = "us-east-1"
	DefaultPriceListDir      = "data/pricelists"
	DefaultCatalogCacheSize  = 1024
	DefaultCatalogCacheTTL   = 10 * time.Minute
	DefaultEntriesPerPage    = 10
	DefaultMaxPages          = 5
	DefaultSortQuality       = "desc"
	DefaultCoinRatio         = 100
)
