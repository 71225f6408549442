package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_review_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movie_review_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ReviewsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movie_review_reviews_added_total",
			Help: "Total number of reviews persisted",
		},
	)

	AggregateRecomputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movie_review_aggregate_recompute_duration_seconds",
			Help:    "Time spent recomputing a movie's average rating",
			Buckets: prometheus.DefBuckets,
		},
	)

	MovieLockWait = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movie_review_movie_lock_wait_seconds",
			Help:    "Time spent waiting for the per-movie review lock",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"locker"},
	)

	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_review_auth_attempts_total",
			Help: "Signup and login attempts by outcome",
		},
		[]string{"operation", "outcome"},
	)
)
