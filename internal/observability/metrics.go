// # internal/observability/metrics.go
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "depscan_scan_seconds",
		Help:    "Time spent on one full discovery-and-analysis pass.",
		Buckets: prometheus.DefBuckets,
	})

	GraphNodes = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "depscan_graph_nodes",
		Help: "Number of nodes in the dependency graph by file kind.",
	}, []string{"kind"})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "depscan_graph_edges_total",
		Help: "Total number of edges in the dependency graph.",
	})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "depscan_watcher_events_total",
		Help: "Total number of file system change batches received by the watcher.",
	})

	RescansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "depscan_rescans_total",
		Help: "Total number of re-analysis passes triggered in watch mode.",
	})

	RescansThrottledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "depscan_rescans_throttled_total",
		Help: "Total number of change batches dropped by the rescan rate limit.",
	})
)
