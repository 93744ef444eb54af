package pricelist

// Default sizing
const (
	DefaultEntriesPerPage = 10
	DefaultMaxPages       = 5
)

// Encoding versions
const (
	// EncodingVersionV1 predates minimum purchase quantities.
	EncodingVersionV1 = 1
	// EncodingVersionCurrent is written by Encode.
	EncodingVersionCurrent = 2
)

// Error messages
const (
	ErrMsgEncodeFailed      = "failed to encode price list: %w"
	ErrMsgDecodeFailed      = "failed to decode price list: %w"
	ErrMsgSaveFailed        = "failed to save price list for %s: %w"
	ErrMsgLoadFailed        = "failed to load price list for %s: %w"
	ErrMsgUnsupportedVerFmt = "%w: %d"
)

// Log messages
const (
	LogMsgEntryDropped    = "Dropping invalid price list entry"
	LogMsgEntryRelocated  = "Relocating price list entry outside current capacity"
	LogMsgPageAdded       = "Price list page added"
	LogMsgPriceListSaved  = "Price list saved"
	LogMsgPriceListSorted = "Price list sorted"
)
