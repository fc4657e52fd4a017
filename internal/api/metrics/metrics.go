// Package metrics defines the custom Prometheus metrics for the portfolio
// backend. It is the single source of truth for metric names, labels, and
// help strings. Counters are incremented from the API layer only.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "missing", "expired" or "invalid"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// ProjectsCreatedTotal counts successfully created portfolio projects.
var ProjectsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of portfolio projects created.",
	},
)

// MessagesReceivedTotal counts accepted contact-form submissions.
var MessagesReceivedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_received_total",
		Help:      "Total number of contact messages received.",
	},
)

// AssetUploadsTotal counts hosted-asset uploads that reached the object store.
// Label:
//   - folder: destination folder ("portfolio_projects", "user_profiles", "user_resumes")
var AssetUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "asset_uploads_total",
		Help:      "Total number of hosted-asset uploads, by destination folder.",
	},
	[]string{"folder"},
)

// NewsletterSubscriptionsTotal counts new newsletter subscriptions.
var NewsletterSubscriptionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "newsletter_subscriptions_total",
		Help:      "Total number of newsletter subscriptions.",
	},
)

// RateLimitedTotal counts requests rejected by the rate limiter.
// Label:
//   - route: the limited route group (e.g. "auth")
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
	[]string{"route"},
)
