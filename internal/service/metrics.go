package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "webapps",
		Subsystem: "orders",
		Name:      "placed_total",
		Help:      "Total number of placed orders.",
	})

	ordersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "webapps",
		Subsystem: "orders",
		Name:      "cancelled_total",
		Help:      "Total number of cancelled orders.",
	})

	shippingUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "webapps",
		Subsystem: "orders",
		Name:      "shipping_updates_total",
		Help:      "Total number of shipping method or address changes.",
	})

	ordersShipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "webapps",
		Subsystem: "orders",
		Name:      "shipped_total",
		Help:      "Total number of orders moved from Placed to Shipped by the sweep.",
	})

	postCacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "webapps",
		Subsystem: "blog",
		Name:      "post_cache_requests_total",
		Help:      "Post lookups by cache result.",
	}, []string{"result"})
)
