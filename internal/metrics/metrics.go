// Package metrics exposes the bot's Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Claims = promauto.NewCounter(prometheus.CounterOpts{
		Name: "earnova_claims_total",
		Help: "Resources claimed by users.",
	})
	ProofsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "earnova_proofs_expired_total",
		Help: "Proofs that hit the deadline and triggered an auto-ban.",
	})
	BroadcastSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "earnova_broadcast_sent_total",
		Help: "Broadcast messages delivered.",
	})
	BroadcastFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "earnova_broadcast_failed_total",
		Help: "Broadcast messages that failed to deliver.",
	})
)
