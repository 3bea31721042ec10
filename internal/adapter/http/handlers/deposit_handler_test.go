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

func depositRouter(uc usecase.IDepositUseCase) *gin.Engine {
	h := NewDepositHandler(uc)
	r := gin.New()
	r.GET("/v1/deposits/:user_id", h.Get)
	r.POST("/v1/deposits/:user_id/provision", h.Provision)
	return r
}

func TestDepositHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		r := depositRouter(uc)

		uc.EXPECT().Get(gomock.Any(), "user-x").Return(entities.LessonDeposit{}, usecase.ErrDepositNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/deposits/user-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		r := depositRouter(uc)

		uc.EXPECT().Get(gomock.Any(), "user-1").Return(entities.LessonDeposit{UserID: "user-1", TotalLessons: 5, UsedLessons: 2}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/deposits/user-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Remaining int `json:"remaining"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp.Remaining != 3 {
			t.Fatalf("expected remaining 3, got %d", resp.Remaining)
		}
	})
}

func TestDepositHandler_Provision(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid session count maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		r := depositRouter(uc)

		uc.EXPECT().Provision(gomock.Any(), "user-1", 0, false, "admin-1").
			Return(entities.LessonDeposit{}, usecase.ErrInvalidSessionCount)

		body := `{"session_count":0,"created_by":"admin-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/user-1/provision", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		r := depositRouter(uc)

		uc.EXPECT().Provision(gomock.Any(), "user-1", 3, true, "admin-1").
			Return(entities.LessonDeposit{UserID: "user-1", TotalLessons: 5, UsedLessons: 3}, nil)

		body := `{"session_count":3,"replace_existing":true,"created_by":"admin-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/user-1/provision", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
