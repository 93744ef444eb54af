package postgres

// Error messages
const (
	ErrMsgCreateBuyer     = "failed to create buyer: %w"
	ErrMsgGetBuyer        = "failed to get buyer %s: %w"
	ErrMsgAdjustBalance   = "failed to adjust balance for %s: %w"
	ErrMsgDeleteBuyer     = "failed to delete buyer %s: %w"
	ErrMsgGetTemplate     = "failed to get template %d: %w"
	ErrMsgListTemplates   = "failed to list templates: %w"
	ErrMsgUpsertTemplates = "failed to upsert templates: %w"
	ErrMsgBeginTx         = "failed to begin transaction: %w"
	ErrMsgCommitTx        = "failed to commit transaction: %w"
	ErrMsgSavePriceList   = "failed to save price list for %s: %w"
	ErrMsgLoadPriceList   = "failed to load price list for %s: %w"
	ErrMsgDeletePriceList = "failed to delete price list for %s: %w"
)

// Log messages
const (
	LogMsgRollbackFailed = "Failed to rollback transaction"
	LogMsgTemplatesSaved = "Item templates upserted"
)
