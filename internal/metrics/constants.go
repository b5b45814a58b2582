package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameItemsBought        = "items_bought_total"
	MetricNameItemsSold          = "items_sold_total"
	MetricNameCoinsSpent         = "coins_spent_total"
	MetricNameCoinsEarned        = "coins_earned_total"
	MetricNameCoinsTransferred   = "coins_transferred_total"
	MetricNameTransfersCompleted = "transfers_completed_total"
	MetricNameCommitConflicts    = "commit_conflicts_total"
)

// Metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextItemsBought        = "Total number of items bought"
	HelpTextItemsSold          = "Total number of items resold"
	HelpTextCoinsSpent         = "Total coins spent on purchases"
	HelpTextCoinsEarned        = "Total coins refunded by resales"
	HelpTextCoinsTransferred   = "Total coins moved between accounts"
	HelpTextTransfersCompleted = "Total number of completed transfers"
	HelpTextCommitConflicts    = "Total number of atomic commits that lost a concurrent race"
)

// Label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCategory = "category"
)

// HTTPLatencyBuckets are the histogram buckets for request latency, in seconds.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
