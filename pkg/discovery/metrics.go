package discovery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noComputations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_discovery_computations_total",
		Help: "The total number of filter, sort and paginate computations",
	})
	computeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_discovery_compute_seconds",
		Help:    "Time spent computing one result",
		Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
	})
	noCancelledRecomputes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_discovery_recomputes_cancelled_total",
		Help: "Debounced recomputes replaced by a newer facet change before they fired",
	})
	noTreeBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_discovery_tree_lookups_total",
		Help: "Category tree lookups by outcome",
	}, []string{"outcome"})
	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_discovery_sessions_active",
		Help: "Sessions created and not yet closed",
	})
)
