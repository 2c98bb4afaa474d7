package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	PostOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "post_operations_total",
			Help:      "Total number of post operations processed",
		},
		[]string{"operation", "success"},
	)

	CategoryOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_operations_total",
			Help:      "Total number of category operations processed",
		},
		[]string{"operation", "success"},
	)

	TagOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tag_operations_total",
			Help:      "Total number of tag operations processed",
		},
		[]string{"operation", "success"},
	)
)

// IncrementPostOperation 记录文章操作结果
func IncrementPostOperation(operation string, success bool) {
	PostOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

// IncrementCategoryOperation 记录分类操作结果
func IncrementCategoryOperation(operation string, success bool) {
	CategoryOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

// IncrementTagOperation 记录标签操作结果
func IncrementTagOperation(operation string, success bool) {
	TagOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}
