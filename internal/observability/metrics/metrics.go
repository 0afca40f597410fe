// Package metrics exposes the application-level Prometheus instruments.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Metrics holds the registered instruments. Labels are kept
// low-cardinality: route templates, not raw paths; invoice type and mode,
// never customer identifiers.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	invoicesCreated *prometheus.CounterVec
	invoiceAmounts  *prometheus.HistogramVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "billme_http_requests_total",
			Help: "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "billme_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		invoicesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "billme_invoices_created_total",
			Help: "Invoices created by type and GST mode.",
		}, []string{"type", "gst_mode", "interstate"}),
		invoiceAmounts: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "billme_invoice_grand_total_rupees",
			Help:    "Grand total distribution by invoice type.",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000},
		}, []string{"type"}),
	}
}

// RecordInvoice increments the invoice counters after a successful create.
func (m *Metrics) RecordInvoice(invoiceType, gstMode string, interstate bool, grandTotal float64) {
	if m == nil {
		return
	}
	m.invoicesCreated.WithLabelValues(invoiceType, gstMode, strconv.FormatBool(interstate)).Inc()
	m.invoiceAmounts.WithLabelValues(invoiceType).Observe(grandTotal)
}

// Handler serves the scrape endpoint for this registry.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// Middleware records request counts and latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

var Module = fx.Module("observability.metrics",
	fx.Provide(New),
)
