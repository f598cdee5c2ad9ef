package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legisq_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "legisq_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	RecordsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legisq_records_created_total",
		Help: "Records created by kind (ministry, state, bill, question, current_affair).",
	}, []string{"kind"})

	CodeCollisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legisq_code_collisions_total",
		Help: "Generated record codes rejected as duplicates.",
	}, []string{"kind"})

	Summaries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legisq_summaries_total",
		Help: "Summary requests by result (ok, cached, no_document, too_short, provider_error).",
	}, []string{"result"})
)

// Middleware mencatat jumlah & latency request per route template.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		if route == "" {
			route = "unmatched"
		}
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		HTTPDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expose registry default di /metrics.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
