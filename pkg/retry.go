package pkg

import (
	"errors"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"freegym_settlement/internal/observability/metrics"
)

const (
	// DefaultMaxAttempts bounds how often a remote operation is retried.
	DefaultMaxAttempts = 3
	// DefaultRetryBaseDelay is multiplied by the attempt number, giving the
	// 1s, 2s backoff sequence the admin tooling has always used.
	DefaultRetryBaseDelay = time.Second
)

// RetryRunner executes a single remote operation with bounded retry and
// linear backoff (1s, 2s, ...). No jitter, no circuit breaking: every remote
// call in the engine goes through here, and a final failure is classified
// into a user-facing message naming the operation.
type RetryRunner struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

func NewRetryRunner() *RetryRunner {
	return &RetryRunner{MaxAttempts: DefaultMaxAttempts, BaseDelay: DefaultRetryBaseDelay}
}

// Run attempts op up to MaxAttempts times. Validation failures never reach
// here; callers only route remote calls through Run.
func (r *RetryRunner) Run(opCtx string, op func() error) error {
	maxAttempts := r.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	baseDelay := r.BaseDelay
	if baseDelay <= 0 {
		baseDelay = DefaultRetryBaseDelay
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		log.Printf("[retry] %s failed (attempt %d/%d) err=%v", opCtx, attempt, maxAttempts, lastErr)
		metrics.RetryAttempts.WithLabelValues(opCtx).Inc()

		if attempt == maxAttempts {
			break
		}
		time.Sleep(baseDelay * time.Duration(attempt))
	}
	metrics.RetryExhausted.WithLabelValues(opCtx).Inc()
	return ClassifyRemoteError(opCtx, lastErr)
}

// WithRetry runs op with the default runner.
func WithRetry(opCtx string, op func() error) error {
	return NewRetryRunner().Run(opCtx, op)
}

// ClassifyRemoteError turns an exhausted remote failure into an AppError
// whose message an administrator can act on. The original error stays
// wrapped for errors.Is/As.
func ClassifyRemoteError(opCtx string, err error) *AppError {
	switch {
	case isTimeoutError(err):
		return NewDomainError("STORE_TIMEOUT",
			"The operation '"+opCtx+"' timed out. Please try again.",
			err, http.StatusGatewayTimeout)
	case isNetworkError(err):
		return NewDomainError("STORE_UNREACHABLE",
			"Could not reach the data store during '"+opCtx+"'. Please check the connection and try again.",
			err, http.StatusBadGateway)
	default:
		return NewDomainError("STORE_ERROR",
			"The operation '"+opCtx+"' failed. Please try again.",
			err, http.StatusInternalServerError)
	}
}

func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded")
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "network") || strings.Contains(msg, "connection")
}
