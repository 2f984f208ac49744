package pkg

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 进程级指标，/metrics 暴露
var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "community_http_requests_total",
		Help: "HTTP requests by route and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "community_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	SubscriptionOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "community_subscription_ops_total",
		Help: "Subscription mutations by operation and result.",
	}, []string{"op", "result"})

	OutboxDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "community_outbox_delivered_total",
		Help: "Outbox events handed to the sender, by result.",
	}, []string{"result"})
)
