package embedserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics are registered per component so two servers in one process never
// collide on collector names.
type metrics struct {
	registry *prometheus.Registry

	rendersTotal  *prometheus.CounterVec
	bookingsTotal *prometheus.CounterVec
	checkoutTotal *prometheus.CounterVec
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &metrics{
		registry: registry,
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookform",
			Name:      "renders_total",
			Help:      "Compiled form documents served, by outcome.",
		}, []string{"status"}),
		bookingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookform",
			Name:      "bookings_total",
			Help:      "Booking submissions received, by outcome.",
		}, []string{"status"}),
		checkoutTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookform",
			Name:      "checkouts_total",
			Help:      "Checkout initiations, by payment method and outcome.",
		}, []string{"method", "status"}),
	}
}
