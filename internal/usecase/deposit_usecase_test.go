package usecase

import (
	"context"
	"errors"
	"testing"

	"freegym_settlement/internal/domain/entities"
	mock_interfaces "freegym_settlement/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newDepositForTest(ctrl *gomock.Controller) (*DepositUseCase, *mock_interfaces.MockIDepositRepository, *mock_interfaces.MockIStoreProcedures) {
	repo := mock_interfaces.NewMockIDepositRepository(ctrl)
	procedures := mock_interfaces.NewMockIStoreProcedures(ctrl)
	uc := NewDepositUseCase(repo, procedures)
	uc.retry = fastRetry()
	return uc, repo, procedures
}

func TestDepositUseCase_Get(t *testing.T) {
	t.Run("empty user id", func(t *testing.T) {
		uc := NewDepositUseCase(nil, nil)
		_, err := uc.Get(context.Background(), " ")
		if !errors.Is(err, ErrInvalidDepositUserID) {
			t.Fatalf("expected ErrInvalidDepositUserID, got %v", err)
		}
	})

	t.Run("absent deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newDepositForTest(ctrl)

		repo.EXPECT().Get(gomock.Any(), "user-1").Return(entities.LessonDeposit{}, nil)

		_, err := uc.Get(context.Background(), "user-1")
		if !errors.Is(err, ErrDepositNotFound) {
			t.Fatalf("expected ErrDepositNotFound, got %v", err)
		}
	})

	t.Run("existing deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newDepositForTest(ctrl)

		repo.EXPECT().Get(gomock.Any(), "user-1").Return(entities.LessonDeposit{UserID: "user-1", TotalLessons: 5, UsedLessons: 2}, nil)

		deposit, err := uc.Get(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deposit.Remaining() != 3 {
			t.Fatalf("expected 3 remaining, got %d", deposit.Remaining())
		}
	})
}

func TestDepositUseCase_Provision(t *testing.T) {
	t.Run("invalid session count", func(t *testing.T) {
		uc := NewDepositUseCase(nil, nil)
		_, err := uc.Provision(context.Background(), "user-1", 0, false, "admin-1")
		if !errors.Is(err, ErrInvalidSessionCount) {
			t.Fatalf("expected ErrInvalidSessionCount, got %v", err)
		}
	})

	t.Run("exhausted deposit is reset exactly once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, procedures := newDepositForTest(ctrl)

		exhausted := entities.LessonDeposit{UserID: "user-1", TotalLessons: 5, UsedLessons: 5}
		fresh := entities.LessonDeposit{UserID: "user-1", TotalLessons: 5, UsedLessons: 2}
		gomock.InOrder(
			repo.EXPECT().Get(gomock.Any(), "user-1").Return(exhausted, nil),
			procedures.EXPECT().ResetLessonDeposit(gomock.Any(), "user-1", entities.DefaultDepositLessons, "admin-1").Return(nil),
			procedures.EXPECT().CreateBookings(gomock.Any(), "user-1", gomock.Any(), 2).Return(2, nil),
			repo.EXPECT().Get(gomock.Any(), "user-1").Return(fresh, nil),
		)

		deposit, err := uc.Provision(context.Background(), "user-1", 2, false, "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deposit.Remaining() != 3 {
			t.Fatalf("expected 3 remaining after reset and bookings, got %d", deposit.Remaining())
		}
	})

	t.Run("absent deposit is also reset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, procedures := newDepositForTest(ctrl)

		gomock.InOrder(
			repo.EXPECT().Get(gomock.Any(), "user-1").Return(entities.LessonDeposit{}, nil),
			procedures.EXPECT().ResetLessonDeposit(gomock.Any(), "user-1", entities.DefaultDepositLessons, "admin-1").Return(nil),
			procedures.EXPECT().CreateBookings(gomock.Any(), "user-1", gomock.Any(), 1).Return(1, nil),
			repo.EXPECT().Get(gomock.Any(), "user-1").Return(entities.LessonDeposit{UserID: "user-1", TotalLessons: 5, UsedLessons: 1}, nil),
		)

		if _, err := uc.Provision(context.Background(), "user-1", 1, false, "admin-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("outstanding balance keeps its baseline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, procedures := newDepositForTest(ctrl)

		current := entities.LessonDeposit{UserID: "user-1", TotalLessons: 5, UsedLessons: 3}
		gomock.InOrder(
			repo.EXPECT().Get(gomock.Any(), "user-1").Return(current, nil),
			// Baseline written back untouched; the store's booking trigger
			// does the incrementing.
			repo.EXPECT().UpdateBaseline(gomock.Any(), "user-1", 5, 3).Return(current, nil),
			procedures.EXPECT().CreateBookings(gomock.Any(), "user-1", gomock.Any(), 2).Return(2, nil),
			repo.EXPECT().Get(gomock.Any(), "user-1").Return(entities.LessonDeposit{UserID: "user-1", TotalLessons: 5, UsedLessons: 5}, nil),
		)

		deposit, err := uc.Provision(context.Background(), "user-1", 2, false, "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deposit.Remaining() != 0 {
			t.Fatalf("expected 0 remaining, got %d", deposit.Remaining())
		}
	})

	t.Run("schedule replacement failure is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, procedures := newDepositForTest(ctrl)

		procedures.EXPECT().ReplaceFlexibleSchedule(gomock.Any(), "user-1", gomock.Any()).
			Return(errors.New("rpc failed")).Times(3)
		current := entities.LessonDeposit{UserID: "user-1", TotalLessons: 5, UsedLessons: 1}
		gomock.InOrder(
			repo.EXPECT().Get(gomock.Any(), "user-1").Return(current, nil),
			repo.EXPECT().UpdateBaseline(gomock.Any(), "user-1", 5, 1).Return(current, nil),
			procedures.EXPECT().CreateBookings(gomock.Any(), "user-1", gomock.Any(), 1).Return(1, nil),
			repo.EXPECT().Get(gomock.Any(), "user-1").Return(entities.LessonDeposit{UserID: "user-1", TotalLessons: 5, UsedLessons: 2}, nil),
		)

		if _, err := uc.Provision(context.Background(), "user-1", 1, true, "admin-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("booking failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, procedures := newDepositForTest(ctrl)

		current := entities.LessonDeposit{UserID: "user-1", TotalLessons: 5, UsedLessons: 1}
		repo.EXPECT().Get(gomock.Any(), "user-1").Return(current, nil)
		repo.EXPECT().UpdateBaseline(gomock.Any(), "user-1", 5, 1).Return(current, nil)
		procedures.EXPECT().CreateBookings(gomock.Any(), "user-1", gomock.Any(), 1).
			Return(0, errors.New("rpc failed")).Times(3)

		if _, err := uc.Provision(context.Background(), "user-1", 1, false, "admin-1"); err == nil {
			t.Fatal("expected an error")
		}
	})
}
