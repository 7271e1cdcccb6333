package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	matchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_requests_total",
			Help: "Total number of matching requests",
		},
		[]string{"endpoint"},
	)

	profilesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_profiles_created_total",
			Help: "Total number of roommate profiles created",
		},
	)

	compatibilityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_compatibility_scores",
			Help:    "Distribution of pairwise compatibility scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	apartmentMatchScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_apartment_scores",
			Help:    "Distribution of apartment match scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)
)
