// Package metrics exposes Prometheus instrumentation for the generator and
// MCTS driver (SPEC_FULL.md §0 ambient stack).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GeneratorIterations counts completed generator iterations.
	GeneratorIterations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sandwich_generator_iterations_total",
		Help: "The total number of generator iterations completed",
	})

	// RecipesDiscoveredTotal counts newly discovered (deduplicated)
	// terminal recipes.
	RecipesDiscoveredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sandwich_recipes_discovered_total",
		Help: "The total number of distinct terminal recipes discovered",
	})

	// DuplicateSuppressedTotal counts actions pruned because they would
	// reproduce an already-observed recipe key.
	DuplicateSuppressedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sandwich_duplicate_suppressed_total",
		Help: "The total number of actions pruned by duplicate suppression",
	})

	// SearchWalltime is a histogram of wall-clock time spent per
	// driver.Search call.
	SearchWalltime = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sandwich_search_walltime_seconds",
		Help:    "Wall-clock time spent per MCTS search call",
		Buckets: prometheus.DefBuckets,
	})

	// RolloutDepth is a histogram of how many actions a single rollout
	// played before reaching a terminal state.
	RolloutDepth = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sandwich_rollout_depth",
		Help:    "Number of actions played during a single rollout",
		Buckets: prometheus.LinearBuckets(1, 1, 15),
	})
)
