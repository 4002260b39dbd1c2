package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ocreader",
		Name:      "sync_runs_total",
		Help:      "Synchronization runs by result.",
	}, []string{"result"})

	syncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ocreader",
		Name:      "sync_duration_seconds",
		Help:      "Duration of synchronization runs.",
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
	})

	syncItemsReceived = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ocreader",
		Name:      "sync_items_received_total",
		Help:      "Items downloaded from the server.",
	})

	syncChangesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ocreader",
		Name:      "sync_changes_sent_total",
		Help:      "Local flag changes uploaded to the server by kind.",
	}, []string{"kind"})
)
