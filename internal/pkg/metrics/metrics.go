package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/samirrijal/isonwater/internal/core/domain"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "isonwater",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "isonwater",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
	}, []string{"method", "path"})

	httpResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "isonwater",
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "HTTP response size in bytes",
		Buckets:   prometheus.ExponentialBuckets(100, 10, 6),
	}, []string{"method", "path"})

	// PointsClassified counts classified coordinates by result ("water" or "land").
	PointsClassified = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "isonwater",
		Subsystem: "classifier",
		Name:      "points_total",
		Help:      "Total coordinates classified",
	}, []string{"result"})

	// BatchSize observes how many points each classification call handled.
	BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "isonwater",
		Subsystem: "classifier",
		Name:      "batch_size",
		Help:      "Number of coordinates per classification call",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})

	landPolygons = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "isonwater",
		Subsystem: "land",
		Name:      "polygons",
		Help:      "Polygons held by the land index",
	})

	landVertices = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "isonwater",
		Subsystem: "land",
		Name:      "vertices",
		Help:      "Vertices held by the land index",
	})

	landLoadSeconds = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "isonwater",
		Subsystem: "land",
		Name:      "load_duration_seconds",
		Help:      "Time spent building the land index at startup",
	})
)

// Middleware records request metrics.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		method := c.Method()

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)
		httpResponseSize.WithLabelValues(method, path).Observe(float64(len(c.Response().Body())))

		return err
	}
}

// Handler returns a Fiber handler serving Prometheus /metrics endpoint.
func Handler() fiber.Handler {
	handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c *fiber.Ctx) error {
		handler(c.Context())
		c.Set(fiber.HeaderCacheControl, "no-cache")
		return nil
	}
}

// RecordLandStats publishes the size of the loaded land index.
func RecordLandStats(s domain.LandStats) {
	landPolygons.Set(float64(s.Polygons))
	landVertices.Set(float64(s.Vertices))
	landLoadSeconds.Set(s.LoadDuration.Seconds())
}
