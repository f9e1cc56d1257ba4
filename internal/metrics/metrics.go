package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Application counters, exposed on /metrics.
var (
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bhojansetu_orders_placed_total",
		Help: "Orders successfully placed.",
	})

	OrdersRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bhojansetu_orders_rejected_total",
		Help: "Order placements rejected, by reason.",
	}, []string{"reason"})

	ChangeEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bhojansetu_changefeed_events_published_total",
		Help: "Change-feed events published, by table.",
	}, []string{"table"})

	ImageUploads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bhojansetu_product_image_uploads_total",
		Help: "Product images stored in the bucket.",
	})
)

// Rejection reasons for OrdersRejected.
const (
	ReasonInsufficientStock = "insufficient_stock"
	ReasonNotFound          = "not_found"
	ReasonUnavailable       = "unavailable"
)
