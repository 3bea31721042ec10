package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"freegym_settlement/internal/domain/entities"
	"freegym_settlement/internal/usecase/interfaces"
	"freegym_settlement/pkg"

	"github.com/google/uuid"
)

var (
	ErrInvalidDepositUserID  = errors.New("invalid deposit user id")
	ErrInvalidSessionCount   = errors.New("invalid session count")
	ErrDepositNotFound       = errors.New("lesson deposit not found")
	ErrDepositsNotConfigured = errors.New("deposit repository not configured")
)

// IDepositUseCase owns the pay-as-you-go lesson deposit of flexible users.

type IDepositUseCase interface {
	Get(ctx context.Context, userID string) (entities.LessonDeposit, error)
	Provision(ctx context.Context, userID string, sessionCount int, replaceExisting bool, createdBy string) (entities.LessonDeposit, error)
}

type DepositUseCase struct {
	repo       interfaces.IDepositRepository
	procedures interfaces.IStoreProcedures
	retry      *pkg.RetryRunner
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

func NewDepositUseCase(repo interfaces.IDepositRepository, procedures interfaces.IStoreProcedures) *DepositUseCase {
	return &DepositUseCase{repo: repo, procedures: procedures, retry: pkg.NewRetryRunner()}
}

func (u *DepositUseCase) Get(ctx context.Context, userID string) (entities.LessonDeposit, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.LessonDeposit{}, ErrInvalidDepositUserID
	}

	var deposit entities.LessonDeposit
	err := u.retry.Run("loading lesson deposit", func() error {
		var err error
		deposit, err = u.repo.Get(ctx, userID)
		return err
	})
	if err != nil {
		return entities.LessonDeposit{}, err
	}
	if !deposit.Exists() {
		return entities.LessonDeposit{}, ErrDepositNotFound
	}
	return deposit, nil
}

// Provision prepares the deposit for a newly generated flexible schedule and
// creates one booking per session.
//
// The store's own triggers also write to this deposit (booking creation
// increments used_lessons, schedule replacement may decrement it), so the
// balance is re-read before every decision instead of trusting values
// written earlier in the same flow. The reset procedure is not idempotent
// and is invoked at most once per call.
func (u *DepositUseCase) Provision(ctx context.Context, userID string, sessionCount int, replaceExisting bool, createdBy string) (entities.LessonDeposit, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.LessonDeposit{}, ErrInvalidDepositUserID
	}
	if sessionCount <= 0 {
		return entities.LessonDeposit{}, ErrInvalidSessionCount
	}
	if u.repo == nil || u.procedures == nil {
		return entities.LessonDeposit{}, ErrDepositsNotConfigured
	}
	log.Printf("[deposit][usecase] provision start user_id=%s sessions=%d replace=%t", userID, sessionCount, replaceExisting)

	scheduleID := uuid.NewString()

	if replaceExisting {
		err := u.retry.Run("replacing flexible schedule", func() error {
			return u.procedures.ReplaceFlexibleSchedule(ctx, userID, scheduleID)
		})
		if err != nil {
			// The new schedule itself exists; losing the old one's cleanup
			// is tolerable and the store can reconcile it later.
			log.Printf("[deposit][usecase] schedule replacement failed, continuing user_id=%s err=%v", userID, err)
		}
	}

	deposit, err := u.readDeposit(ctx, userID)
	if err != nil {
		return entities.LessonDeposit{}, err
	}

	if !deposit.Exists() || deposit.Remaining() == 0 {
		// Fresh or exhausted pool: treated as a new purchase.
		err := u.retry.Run("resetting lesson deposit", func() error {
			return u.procedures.ResetLessonDeposit(ctx, userID, entities.DefaultDepositLessons, createdBy)
		})
		if err != nil {
			return entities.LessonDeposit{}, err
		}
	} else {
		// Outstanding balance survives; write the baseline back untouched.
		// Bookings below increment used_lessons via the store's trigger,
		// exactly once per created booking.
		err := u.retry.Run("updating lesson deposit baseline", func() error {
			_, err := u.repo.UpdateBaseline(ctx, userID, deposit.TotalLessons, deposit.UsedLessons)
			return err
		})
		if err != nil {
			return entities.LessonDeposit{}, err
		}
	}

	var created int
	err = u.retry.Run("creating bookings", func() error {
		var err error
		created, err = u.procedures.CreateBookings(ctx, userID, scheduleID, sessionCount)
		return err
	})
	if err != nil {
		return entities.LessonDeposit{}, err
	}

	final, err := u.readDeposit(ctx, userID)
	if err != nil {
		return entities.LessonDeposit{}, err
	}
	// Audit only: a mismatch between bookings and the balance is the
	// store's to reconcile, not ours.
	log.Printf("[deposit][usecase] provision done user_id=%s bookings=%d total=%d used=%d remaining=%d",
		userID, created, final.TotalLessons, final.UsedLessons, final.Remaining())
	return final, nil
}

func (u *DepositUseCase) readDeposit(ctx context.Context, userID string) (entities.LessonDeposit, error) {
	var deposit entities.LessonDeposit
	err := u.retry.Run("loading lesson deposit", func() error {
		var err error
		deposit, err = u.repo.Get(ctx, userID)
		return err
	})
	return deposit, err
}
