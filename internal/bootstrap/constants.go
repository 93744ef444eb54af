package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting buyer merchant service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Store Setup
// =============================================================================

const (
	// StoreConnectTimeout bounds each store's initial connection and migration
	StoreConnectTimeout = 30 * time.Second

	// Readiness check names
	ReadinessDatabase   = "database"
	ReadinessPriceLists = "price_lists"
)

const (
	LogMsgStoresReady         = "Stores ready"
	LogMsgMigrationsApplied   = "Database migrations applied"
	ErrMsgUnknownDriver       = "unknown database driver %q"
	ErrMsgUnknownListStore    = "unknown price list store %q"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrate       = "failed to migrate database"
	ErrMsgFailedConnectRedis  = "failed to connect to redis"
	ErrMsgFailedConnectDynamo = "failed to create dynamodb client"
	ErrMsgFailedOpenFileStore = "failed to open price list directory"
	ErrMsgDynamoTableRequired = "DYNAMODB_TABLE must be set for the dynamodb price list store"
	ErrMsgRedisAddrRequired   = "REDIS_ADDR must be set for the redis price list store"
)

// =============================================================================
// Catalog Sync Messages
// =============================================================================

const (
	LogMsgSyncingCatalog  = "Syncing item catalog from JSON config..."
	LogMsgCatalogSynced   = "Item catalog synced successfully"
	ErrMsgFailedLoadItems = "failed to load items config"
	ErrMsgFailedSyncItems = "failed to sync items to database"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingStores        = "Closing stores..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
