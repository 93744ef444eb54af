package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Price list metrics
var (
	PriceListRenders = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePriceListRenders,
			Help: HelpTextPriceListRenders,
		},
	)

	PriceListApplies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePriceListApplies,
			Help: HelpTextPriceListApplies,
		},
		[]string{LabelOutcome},
	)

	FieldValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFieldValidationFailures,
			Help: HelpTextFieldValidationFailures,
		},
		[]string{LabelField},
	)

	PriceListSaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePriceListSaveDuration,
			Help:    HelpTextPriceListSaveDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)

	EntriesAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEntriesAdded,
			Help: HelpTextEntriesAdded,
		},
		[]string{LabelOutcome},
	)
)

// Trade metrics
var (
	TradeLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTradeLookups,
			Help: HelpTextTradeLookups,
		},
		[]string{LabelOutcome},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)

	CoinsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsReceived,
			Help: HelpTextCoinsReceived,
		},
	)
)
