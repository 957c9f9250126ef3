package calculator

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"go-interest-calculator/domain"
)

// Metrics collected by an instrumenting Service
type Metrics struct {
	RequestCount   *prometheus.CounterVec
	RequestLatency *prometheus.HistogramVec
}

// NewMetrics creates the calculator metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "interest",
			Subsystem: "calculator",
			Name:      "requests_total",
			Help:      "Number of calculations requested. Requests the HTTP transport rejects are in interest_http_rejected_total.",
		}, []string{"method", "error"}),
		RequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "interest",
			Subsystem: "calculator",
			Name:      "request_duration_seconds",
			Help:      "Time spent on calculations, in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, []string{"method"}),
	}
	reg.MustRegister(m.RequestCount, m.RequestLatency)
	return m
}

// instrumentingService decorates a calculator.Service with request metrics
type instrumentingService struct {
	metrics *Metrics
	next    Service
}

// NewInstrumentingService returns a new instance of an instrumenting Service
func NewInstrumentingService(metrics *Metrics, s Service) Service {
	return &instrumentingService{
		metrics: metrics,
		next:    s,
	}
}

func (s *instrumentingService) observe(method string, begin time.Time, err error) {
	s.metrics.RequestCount.WithLabelValues(method, strconv.FormatBool(err != nil)).Inc()
	s.metrics.RequestLatency.WithLabelValues(method).Observe(time.Since(begin).Seconds())
}

func (s *instrumentingService) Simple(ctx context.Context, in domain.Inputs) (amount domain.Amount, err error) {
	defer func(begin time.Time) { s.observe("simple", begin, err) }(time.Now())
	return s.next.Simple(ctx, in)
}

func (s *instrumentingService) Compound(ctx context.Context, in domain.Inputs) (result domain.Compounded, err error) {
	defer func(begin time.Time) { s.observe("compound", begin, err) }(time.Now())
	return s.next.Compound(ctx, in)
}

func (s *instrumentingService) Difference(ctx context.Context, in domain.Inputs) (difference domain.Amount, err error) {
	defer func(begin time.Time) { s.observe("difference", begin, err) }(time.Now())
	return s.next.Difference(ctx, in)
}
