package catalog

import "time"

// CacheSchemaVersion is bumped when the cached template shape changes so old entries are discarded
const CacheSchemaVersion = "1.0"

// Cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 10 * time.Minute
)

// UnknownMaterialFmt names materials missing from the table
const UnknownMaterialFmt = "material #%d"

// Error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read catalog file: %w"
	ErrMsgParseConfigFailed    = "failed to parse catalog file: %w"
	ErrMsgNoItemsDefined       = "no items defined"
	ErrMsgDuplicateTemplateFmt = "duplicate template id %d"
	ErrMsgDuplicateMaterialFmt = "duplicate material id %d"
	ErrMsgInvalidTemplateFmt   = "template at index %d: %v"
	ErrMsgSyncFailed           = "failed to sync templates: %w"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Item catalog loaded"
	LogMsgCatalogSynced = "Item catalog synced to database"
	LogMsgCacheMiss     = "Template cache miss"
)
