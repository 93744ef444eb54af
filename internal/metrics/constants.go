package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Price list metric names
const (
	MetricNamePriceListRenders        = "price_list_renders_total"
	MetricNamePriceListApplies        = "price_list_applies_total"
	MetricNameFieldValidationFailures = "price_list_field_validation_failures_total"
	MetricNamePriceListSaveDuration   = "price_list_save_duration_seconds"
	MetricNameEntriesAdded            = "price_list_entries_added_total"
)

// Trade metric names
const (
	MetricNameTradeLookups  = "trade_price_lookups_total"
	MetricNameCoinsSpent    = "buyer_coins_spent_total"
	MetricNameCoinsReceived = "buyer_coins_received_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being processed"
)

// Price list metric help text
const (
	HelpTextPriceListRenders        = "Total number of price list forms rendered"
	HelpTextPriceListApplies        = "Total number of price list form submissions by outcome"
	HelpTextFieldValidationFailures = "Total number of rejected price list field values by field"
	HelpTextPriceListSaveDuration   = "Time spent persisting a price list in seconds"
	HelpTextEntriesAdded            = "Total number of add-item attempts by outcome"
)

// Trade metric help text
const (
	HelpTextTradeLookups  = "Total number of trade-time price lookups by outcome"
	HelpTextCoinsSpent    = "Total iron coins spent by buyers on purchases"
	HelpTextCoinsReceived = "Total iron coins given to buyers"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelField   = "field"
)

// Label values
const (
	OutcomeSuccess  = "success"
	OutcomePartial  = "partial"
	OutcomeFailed   = "failed"
	OutcomeSorted   = "sorted"
	OutcomeFull     = "full"
	OutcomeNoMatch  = "no_match"
	OutcomeMatched  = "matched"
	OutcomeRejected = "rejected"
)

// HTTPLatencyBuckets are histogram buckets in seconds
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
