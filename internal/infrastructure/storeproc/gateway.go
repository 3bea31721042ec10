package storeproc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"freegym_settlement/internal/usecase/interfaces"
)

var ErrMissingStoreRPCURL = errors.New("missing STORE_RPC_URL")
var ErrMissingStoreRPCKey = errors.New("missing STORE_RPC_KEY")
var ErrStoreGatewayNotConfigured = errors.New("store procedure gateway not configured")

const defaultRPCTimeout = 10 * time.Second

// Gateway calls the hosted store's named remote procedures over its REST RPC
// endpoint (POST {base}/rest/v1/rpc/{name} with a JSON argument object).
//
// The procedures carry the store-side write logic the engine must not
// reimplement: lock and deletion flag flips, schedule replacement with
// booking cleanup, deposit resets and bulk booking creation with the
// used-lessons trigger.

type Gateway struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IStoreProcedures = (*Gateway)(nil)

func NewGateway(baseURL, apiKey string) (*Gateway, error) {
	if isStoreGatewayMockEnabled() {
		log.Printf("[storeproc][gateway] mock mode enabled")
		return &Gateway{mockMode: true}, nil
	}

	if baseURL == "" {
		log.Printf("[storeproc][gateway] missing STORE_RPC_URL")
		return nil, ErrMissingStoreRPCURL
	}
	if apiKey == "" {
		log.Printf("[storeproc][gateway] missing STORE_RPC_KEY")
		return nil, ErrMissingStoreRPCKey
	}
	log.Printf("[storeproc][gateway] store RPC client initialized base_url=%s", baseURL)

	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultRPCTimeout},
	}, nil
}

func (g *Gateway) LockInstallment(ctx context.Context, requestID string, number int, lockedBy string) error {
	return g.call(ctx, "lock_installment", map[string]any{
		"p_request_id": requestID,
		"p_number":     number,
		"p_locked_by":  lockedBy,
	}, nil)
}

func (g *Gateway) DeleteThirdInstallment(ctx context.Context, requestID, deletedBy string) error {
	return g.call(ctx, "delete_third_installment", map[string]any{
		"p_request_id": requestID,
		"p_deleted_by": deletedBy,
	}, nil)
}

func (g *Gateway) ReplaceFlexibleSchedule(ctx context.Context, userID, newScheduleID string) error {
	return g.call(ctx, "replace_paspartu_schedule", map[string]any{
		"p_user_id":         userID,
		"p_new_schedule_id": newScheduleID,
	}, nil)
}

func (g *Gateway) ResetLessonDeposit(ctx context.Context, userID string, totalLessons int, createdBy string) error {
	return g.call(ctx, "reset_lesson_deposit_for_new_program", map[string]any{
		"p_user_id":       userID,
		"p_total_lessons": totalLessons,
		"p_created_by":    createdBy,
	}, nil)
}

func (g *Gateway) CreateBookings(ctx context.Context, userID, scheduleID string, sessionCount int) (int, error) {
	var out struct {
		Created int `json:"created"`
	}
	err := g.call(ctx, "create_lesson_bookings", map[string]any{
		"p_user_id":       userID,
		"p_schedule_id":   scheduleID,
		"p_session_count": sessionCount,
	}, &out)
	if err != nil {
		return 0, err
	}
	if g.mockMode {
		return sessionCount, nil
	}
	return out.Created, nil
}

func (g *Gateway) call(ctx context.Context, name string, args map[string]any, out any) error {
	if g != nil && g.mockMode {
		log.Printf("[storeproc][gateway] mock call name=%s args=%d", name, len(args))
		return nil
	}
	if g == nil || g.client == nil {
		log.Printf("[storeproc][gateway] gateway not configured")
		return ErrStoreGatewayNotConfigured
	}

	body, err := json.Marshal(args)
	if err != nil {
		return err
	}

	url := g.baseURL + "/rest/v1/rpc/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", g.apiKey)
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	log.Printf("[storeproc][gateway] call start name=%s", name)
	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[storeproc][gateway] call failed name=%s err=%v", name, err)
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[storeproc][gateway] call rejected name=%s status=%d", name, resp.StatusCode)
		return fmt.Errorf("store procedure %s returned status %d: %s", name, resp.StatusCode, truncate(string(raw), 200))
	}
	log.Printf("[storeproc][gateway] call success name=%s", name)

	if out != nil && len(raw) > 0 && json.Valid(raw) {
		if err := json.Unmarshal(raw, out); err != nil {
			log.Printf("[storeproc][gateway] response unmarshal failed name=%s err=%v", name, err)
			return err
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func isStoreGatewayMockEnabled() bool {
	for _, key := range []string{"STORE_RPC_MOCK", "STORE_GATEWAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
