// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_submissions_completed_total",
			Help: "Total number of form submissions persisted",
		},
		[]string{"form"},
	)

	SubmissionsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_submissions_failed_total",
			Help: "Total number of form submissions that failed",
		},
		[]string{"form", "error_code"},
	)

	SubmissionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "portal_submission_duration_seconds",
			Help: "Duration of submission processing in seconds",
		},
		[]string{"form"},
	)

	NotificationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_notifications_failed_total",
			Help: "Total number of best-effort notification sends that failed",
		},
		[]string{"channel"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "portal_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"route", "method"},
	)
)
