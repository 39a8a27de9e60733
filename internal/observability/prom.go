package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type Prom struct {
	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
	InFlight         *prometheus.GaugeVec

	Upstream *UpstreamMetrics
}

// UpstreamMetrics tracks calls made against the HR backend API.
type UpstreamMetrics struct {
	CallsTotal   *prometheus.CounterVec
	CallDuration *prometheus.HistogramVec
}

func NewProm(reg prometheus.Registerer) *Prom {
	p := &Prom{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hrportal",
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "hrportal",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				// Sane initial defaults
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		InFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "hrportal",
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
			[]string{"method", "route"},
		),
		Upstream: &UpstreamMetrics{
			CallsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "hrportal",
					Subsystem: "upstream",
					Name:      "calls_total",
					Help:      "HR backend calls by route and status.",
				},
				[]string{"method", "route", "status"},
			),
			CallDuration: prometheus.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: "hrportal",
					Subsystem: "upstream",
					Name:      "call_duration_seconds",
					Help:      "HR backend call latency by route.",
					Buckets:   []float64{0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.35, 0.5, 1, 2, 5},
				},
				[]string{"method", "route"},
			),
		},
	}
	reg.MustRegister(p.RequestsTotal, p.RequestsDuration, p.InFlight, p.Upstream.CallsTotal, p.Upstream.CallDuration)

	return p
}

// Observe records one backend call. A zero status code marks a transport
// failure that produced no HTTP response.
func (u *UpstreamMetrics) Observe(method, route string, status int, elapsed time.Duration) {
	if u == nil {
		return
	}
	label := "transport_error"
	if status != 0 {
		label = strconv.Itoa(status)
	}
	u.CallsTotal.WithLabelValues(method, route, label).Inc()
	u.CallDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (p *Prom) GinHandleMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		// route template is only available after routing; best effort:
		route := ctx.FullPath()

		if route == "" {
			route = "unmatched"
		}

		method := ctx.Request.Method
		p.InFlight.WithLabelValues(method, route).Inc()
		defer p.InFlight.WithLabelValues(method, route).Dec()
		ctx.Next()

		status := strconv.Itoa(ctx.Writer.Status())
		secs := time.Since(start).Seconds()

		p.RequestsTotal.WithLabelValues(method, route, status).Inc()
		p.RequestsDuration.WithLabelValues(method, route, status).Observe(secs)
	}
}
