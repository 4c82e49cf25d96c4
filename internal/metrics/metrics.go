package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Storefront groups the collectors of one storefront process. A nil
// *Storefront is valid and records nothing.
type Storefront struct {
	Requests         *prometheus.CounterVec
	LatencyMS        *prometheus.HistogramVec
	CatalogFetches   *prometheus.CounterVec
	CatalogFetchMS   prometheus.Histogram
	CartItemsSkipped prometheus.Counter
}

func New(reg prometheus.Registerer, service string) *Storefront {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	fetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "catalog_fetches_total",
		Help:      "Catalog fetches by outcome.",
	}, []string{"outcome"})
	fetchMS := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "catalog_fetch_duration_ms",
		Help:      "Catalog fetch latency in milliseconds.",
		Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "cart_items_skipped_total",
		Help:      "Cart items dropped from rendering for a missing price or quantity.",
	})

	reg.MustRegister(requests, latency, fetches, fetchMS, skipped)
	return &Storefront{
		Requests:         requests,
		LatencyMS:        latency,
		CatalogFetches:   fetches,
		CatalogFetchMS:   fetchMS,
		CartItemsSkipped: skipped,
	}
}

func (m *Storefront) ObserveRequest(handler string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(handler, strconv.Itoa(status)).Inc()
	m.LatencyMS.WithLabelValues(handler).Observe(float64(d.Milliseconds()))
}

func (m *Storefront) ObserveCatalogFetch(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.CatalogFetches.WithLabelValues(outcome).Inc()
	m.CatalogFetchMS.Observe(float64(d.Milliseconds()))
}

func (m *Storefront) CartItemSkipped() {
	if m == nil {
		return
	}
	m.CartItemsSkipped.Inc()
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
