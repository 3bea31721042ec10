package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RetryAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "freegym_store_retry_attempts_total",
		Help: "Failed remote store attempts, per operation.",
	}, []string{"operation"})

	RetryExhausted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "freegym_store_retry_exhausted_total",
		Help: "Remote store operations that failed after all retry attempts.",
	}, []string{"operation"})

	SettlementSteps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "freegym_settlement_steps_total",
		Help: "Settlement cascade step outcomes.",
	}, []string{"step", "outcome"})

	Transitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "freegym_approval_transitions_total",
		Help: "Approval status transitions recorded.",
	}, []string{"status"})
)
