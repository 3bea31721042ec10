package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freegym_settlement/internal/adapter/http/handlers/mocks"
	"freegym_settlement/internal/domain/entities"
	"freegym_settlement/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func installmentRouter(uc usecase.IInstallmentUseCase) *gin.Engine {
	h := NewInstallmentHandler(uc)
	r := gin.New()
	r.GET("/v1/installments/:request_id", h.GetPlan)
	r.PUT("/v1/installments/:request_id/legs", h.SetLegs)
	r.POST("/v1/installments/:request_id/legs/:number/lock", h.LockLeg)
	r.POST("/v1/installments/:request_id/third/delete", h.DeleteThirdLeg)
	return r
}

func TestInstallmentHandler_GetPlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInstallmentUseCase(ctrl)
		r := installmentRouter(uc)

		uc.EXPECT().GetPlan(gomock.Any(), "req-x").Return(entities.InstallmentPlan{}, usecase.ErrInstallmentPlanNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/installments/req-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInstallmentUseCase(ctrl)
		r := installmentRouter(uc)

		plan := entities.InstallmentPlan{RequestID: "req-1", TotalPrice: 300}
		plan.Legs[0] = entities.InstallmentLeg{Number: 1, Amount: 100, PaymentMethod: entities.PaymentMethodCash}
		plan.Legs[1] = entities.InstallmentLeg{Number: 2, Amount: 100, PaymentMethod: entities.PaymentMethodCash}
		plan.Legs[2] = entities.InstallmentLeg{Number: 3, Amount: 100, PaymentMethod: entities.PaymentMethodPOS}
		uc.EXPECT().GetPlan(gomock.Any(), "req-1").Return(plan, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/installments/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			RequestID string  `json:"request_id"`
			ActiveSum float64 `json:"active_sum"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp.RequestID != "req-1" || resp.ActiveSum != 300 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInstallmentHandler_LockLeg(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInstallmentUseCase(ctrl)
		r := installmentRouter(uc)

		body := `{"locked_by":"admin-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/installments/req-1/legs/2/lock", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if resp["code"] != "CONFIRMATION_REQUIRED" {
			t.Fatalf("expected CONFIRMATION_REQUIRED, got %q", resp["code"])
		}
	})

	t.Run("confirmed lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInstallmentUseCase(ctrl)
		r := installmentRouter(uc)

		uc.EXPECT().LockLeg(gomock.Any(), "req-1", 2, "admin-1").Return(nil)

		body := `{"confirm":true,"locked_by":"admin-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/installments/req-1/legs/2/lock", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("bad leg number in path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInstallmentUseCase(ctrl)
		r := installmentRouter(uc)

		body := `{"confirm":true,"locked_by":"admin-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/installments/req-1/legs/two/lock", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestInstallmentHandler_DeleteThirdLeg(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("locked third leg maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInstallmentUseCase(ctrl)
		r := installmentRouter(uc)

		uc.EXPECT().DeleteThirdLeg(gomock.Any(), "req-1", "admin-1").Return(usecase.ErrThirdLegLocked)

		body := `{"confirm":true,"deleted_by":"admin-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/installments/req-1/third/delete", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("missing confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInstallmentUseCase(ctrl)
		r := installmentRouter(uc)

		body := `{"deleted_by":"admin-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/installments/req-1/third/delete", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestInstallmentHandler_SetLegs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInstallmentUseCase(ctrl)
	r := installmentRouter(uc)

	plan := entities.InstallmentPlan{RequestID: "req-1", TotalPrice: 300}
	uc.EXPECT().SetLegAmounts(gomock.Any(), "req-1", gomock.Any()).
		Return(usecase.SetLegsResult{Plan: plan, SkippedLegs: []int{1}, Warnings: []string{"installment 1 of request req-1 is locked and was not modified"}}, nil)

	body := `{"legs":[{"number":1,"amount":50,"payment_method":"cash"},{"number":2,"amount":150,"payment_method":"cash"}]}`
	req := httptest.NewRequest(http.MethodPut, "/v1/installments/req-1/legs", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		SkippedLegs []int    `json:"skipped_legs"`
		Warnings    []string `json:"warnings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(resp.SkippedLegs) != 1 || len(resp.Warnings) != 1 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
