package pkg

import (
	"errors"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestRetryRunner_SucceedsWithoutRetry(t *testing.T) {
	r := &RetryRunner{MaxAttempts: 3, BaseDelay: time.Millisecond}
	calls := 0
	err := r.Run("test op", func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single attempt, got %d", calls)
	}
}

func TestRetryRunner_DefaultBackoffSequence(t *testing.T) {
	// Two failures then success: with the default 1s base delay the sleeps
	// are 1s after attempt one and 2s after attempt two.
	r := NewRetryRunner()
	calls := 0
	start := time.Now()
	err := r.Run("test op", func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
	if elapsed < 3*time.Second {
		t.Fatalf("expected at least 3s of backoff, got %v", elapsed)
	}
}

func TestRetryRunner_ExhaustionWrapsLastError(t *testing.T) {
	r := &RetryRunner{MaxAttempts: 3, BaseDelay: time.Millisecond}
	sentinel := errors.New("db down")
	calls := 0
	err := r.Run("test op", func() error {
		calls++
		return sentinel
	})
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected the last error to stay wrapped, got %v", err)
	}
	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected an AppError, got %T", err)
	}
	if appErr.Code != "STORE_ERROR" || appErr.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected classification: %+v", appErr)
	}
}

func TestClassifyRemoteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"timeout by message", errors.New("context deadline exceeded"), "STORE_TIMEOUT", http.StatusGatewayTimeout},
		{"network op error", &net.OpError{Op: "dial", Err: errors.New("refused")}, "STORE_UNREACHABLE", http.StatusBadGateway},
		{"connection by message", errors.New("connection reset by peer"), "STORE_UNREACHABLE", http.StatusBadGateway},
		{"anything else", errors.New("boom"), "STORE_ERROR", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := ClassifyRemoteError("test op", tt.err)
			if appErr.Code != tt.wantCode {
				t.Fatalf("expected code %s, got %s", tt.wantCode, appErr.Code)
			}
			if appErr.HTTPStatus != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, appErr.HTTPStatus)
			}
			if !errors.Is(appErr, tt.err) {
				t.Fatalf("expected cause to stay wrapped")
			}
		})
	}
}

func TestClassifyRemoteError_TimeoutInterface(t *testing.T) {
	appErr := ClassifyRemoteError("test op", &net.DNSError{Err: "lookup", IsTimeout: true})
	if appErr.Code != "STORE_TIMEOUT" {
		t.Fatalf("expected STORE_TIMEOUT for net.Error timeouts, got %s", appErr.Code)
	}
}
