package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Booking counters
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_created_total",
		Help: "Total number of bookings created",
	})
	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_cancelled_total",
		Help: "Total number of bookings cancelled",
	})
	BookingsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_rejected_total",
		Help: "Total number of rejected booking attempts",
	}, []string{"reason"})

	// Settlement counters
	Settlements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settlement_total",
		Help: "Total number of settlement attempts by outcome",
	}, []string{"outcome"})

	// SettlementAmount observes approved settlement amounts
	SettlementAmount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "settlement_amount",
		Help:    "Approved settlement amounts",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	// HTTP metrics
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

// Settlement outcome label values
const (
	OutcomeApproved = "approved"
	OutcomeDeclined = "declined"
	OutcomeRejected = "rejected"
)

// Middleware records per-request latency labeled by route template
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		requestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
