package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks github.com/Etch-Social/etch-local/logic IMetrics

type IMetrics interface {
	StartApiRequestIn(label string) IRequestObserver
	StartChainCallOut(label string) IRequestObserver
	PostPublished()
	FeedAggregated()
	FeedErrored()
	TrackedFeedCount(count int)
	ServiceStarted()
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	apiRequestsIn    *prometheus.HistogramVec
	chainCallsOut    *prometheus.HistogramVec
	postsPublished   prometheus.Counter
	feedsAggregated  prometheus.Counter
	feedErrors       prometheus.Counter
	trackedFeedCount prometheus.Gauge
	serviceStarted   prometheus.Counter
}

func NewMetrics() IMetrics {

	res := metrics{}

	res.apiRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "api_requests_in_duration",
		Help: "Duration in seconds of API requests served.",
	}, []string{"label"})
	prometheus.Register(res.apiRequestsIn)

	res.chainCallsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "chain_calls_out_duration",
		Help: "Duration in seconds of chain RPC calls made.",
	}, []string{"label"})
	prometheus.Register(res.chainCallsOut)

	res.postsPublished = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_published",
		Help: "Number of posts signed and minted",
	})
	prometheus.Register(res.postsPublished)

	res.feedsAggregated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feeds_aggregated",
		Help: "Number of per-contract feed loads",
	})
	prometheus.Register(res.feedsAggregated)

	res.feedErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_errors",
		Help: "Number of per-contract feed loads that failed",
	})
	prometheus.Register(res.feedErrors)

	res.trackedFeedCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tracked_feed_count",
		Help: "Number of contract addresses currently tracked",
	})
	prometheus.Register(res.trackedFeedCount)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Incremented once on every service start",
	})
	prometheus.Register(res.serviceStarted)

	return &res
}

type requestObserver struct {
	start     time.Time
	histogram prometheus.Observer
}

func (obs *requestObserver) Finish() {
	elapsed := time.Since(obs.start)
	obs.histogram.Observe(elapsed.Seconds())
}

func (m *metrics) StartApiRequestIn(label string) IRequestObserver {
	return &requestObserver{
		start:     time.Now(),
		histogram: m.apiRequestsIn.WithLabelValues(label),
	}
}

func (m *metrics) StartChainCallOut(label string) IRequestObserver {
	return &requestObserver{
		start:     time.Now(),
		histogram: m.chainCallsOut.WithLabelValues(label),
	}
}

func (m *metrics) PostPublished() {
	m.postsPublished.Inc()
}

func (m *metrics) FeedAggregated() {
	m.feedsAggregated.Inc()
}

func (m *metrics) FeedErrored() {
	m.feedErrors.Inc()
}

func (m *metrics) TrackedFeedCount(count int) {
	m.trackedFeedCount.Set(float64(count))
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Inc()
}
