// Package metrics exposes the sync bridge's health as Prometheus series.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	MirrorPushed       prometheus.Counter
	MirrorPushFailed   prometheus.Counter
	FeedEventsApplied  prometheus.Counter
	FeedEventsSkipped  prometheus.Counter
	DirtyRetries       prometheus.Counter
	CloudSynced        prometheus.Gauge
	OrdersPlaced       prometheus.Counter
	NotificationsFanned prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	pushed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pureflow_mirror_pushed_total",
		Help: "Documents successfully pushed to the cloud mirror.",
	})
	pushFailed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pureflow_mirror_push_failed_total",
		Help: "Mirror pushes that failed and flagged the document dirty.",
	})
	applied := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pureflow_feed_events_applied_total",
		Help: "Change feed events folded into the local store.",
	})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pureflow_feed_events_skipped_total",
		Help: "Change feed events dropped as undecodable or out of scope.",
	})
	retries := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pureflow_dirty_retries_total",
		Help: "Dirty documents re-pushed during the startup sweep.",
	})
	synced := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pureflow_cloud_synced",
		Help: "1 when the last cloud interaction succeeded, 0 when offline.",
	})
	placed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pureflow_orders_placed_total",
		Help: "Orders placed on this device.",
	})
	fanned := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pureflow_notifications_fanned_total",
		Help: "Notifications fanned out to the in-app feed.",
	})

	r.MustRegister(pushed, pushFailed, applied, skipped, retries, synced, placed, fanned)

	return &Registry{
		reg:                r,
		MirrorPushed:       pushed,
		MirrorPushFailed:   pushFailed,
		FeedEventsApplied:  applied,
		FeedEventsSkipped:  skipped,
		DirtyRetries:       retries,
		CloudSynced:        synced,
		OrdersPlaced:       placed,
		NotificationsFanned: fanned,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
