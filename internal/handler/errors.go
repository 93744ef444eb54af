package handler

// Generic HTTP error messages for client responses.
// These never carry internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgUnauthenticated       = "Authentication required"
	ErrMsgRenderFailed          = "Failed to render page"
)

// Success messages for API responses
const (
	MsgBuyerDismissed = "Buyer dismissed"
	MsgCoinsGiven     = "Coins given"
)

// Log messages
const (
	LogMsgDecodeFailedFmt   = "Failed to decode %s request"
	LogMsgDecodedFmt        = "%s request decoded"
	LogMsgServiceFailedFmt  = "%s failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgTemplateFailed    = "Failed to execute template"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgBuyerCreated      = "Buyer created"
	LogMsgBuyerDismissed    = "Buyer dismissed"
	LogMsgPriceListApplied  = "Price list form applied"
	LogMsgItemConfirmed     = "Add item confirmed"
	LogMsgPurchaseCompleted = "Purchase completed"
)

// Operation names used in logs
const (
	OpCreateBuyer  = "Create buyer"
	OpExamine      = "Examine buyer"
	OpDismissBuyer = "Dismiss buyer"
	OpGiveCoins    = "Give coins"
	OpRender       = "Render price list"
	OpApply        = "Apply price list"
	OpChooseItem   = "Choose item"
	OpConfirmItem  = "Confirm item"
	OpPriceFor     = "Price offer"
	OpQuote        = "Quote offer"
	OpPurchase     = "Purchase"
)

// Request parameter names
const (
	ParamAgentID = "agentID"
	ParamPage    = "page"
	ParamQuery   = "q"
	ParamFormat  = "format"
	FormatHTML   = "html"
)

// Content types
const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
	MediaTypeHTML   = "text/html"
)
