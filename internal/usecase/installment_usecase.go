package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"freegym_settlement/internal/domain/entities"
	"freegym_settlement/internal/usecase/interfaces"
	"freegym_settlement/pkg"
)

var (
	ErrInvalidRequestID          = errors.New("invalid request id")
	ErrInvalidLegNumber          = errors.New("invalid installment leg number")
	ErrInvalidLegAmount          = errors.New("invalid installment leg amount")
	ErrInvalidLegPaymentMethod   = errors.New("invalid installment payment method")
	ErrInstallmentPlanNotFound   = errors.New("installment plan not found")
	ErrThirdLegLocked            = errors.New("third installment is locked and cannot be deleted")
	ErrInstallmentsNotConfigured = errors.New("installment dependencies not configured")
)

// SetLegsResult reports what SetLegAmounts actually changed. Locked legs and
// a deleted third leg are skipped, not errors, so the caller can show which
// parts of the form were ignored.
type SetLegsResult struct {
	Plan        entities.InstallmentPlan
	SkippedLegs []int
	Warnings    []string
}

// IInstallmentUseCase owns the up-to-three installment legs of a
// payment-plan request. Locking and third-leg deletion are irreversible and
// must be confirmed by the caller before reaching this layer.

type IInstallmentUseCase interface {
	GetPlan(ctx context.Context, requestID string) (entities.InstallmentPlan, error)
	SetLegAmounts(ctx context.Context, requestID string, legs []entities.InstallmentLeg) (SetLegsResult, error)
	LockLeg(ctx context.Context, requestID string, number int, lockedBy string) error
	DeleteThirdLeg(ctx context.Context, requestID, deletedBy string) error
}

type InstallmentUseCase struct {
	repo       interfaces.IInstallmentRepository
	procedures interfaces.IStoreProcedures
	retry      *pkg.RetryRunner
}

var _ IInstallmentUseCase = (*InstallmentUseCase)(nil)

func NewInstallmentUseCase(repo interfaces.IInstallmentRepository, procedures interfaces.IStoreProcedures) *InstallmentUseCase {
	return &InstallmentUseCase{repo: repo, procedures: procedures, retry: pkg.NewRetryRunner()}
}

func (u *InstallmentUseCase) GetPlan(ctx context.Context, requestID string) (entities.InstallmentPlan, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.InstallmentPlan{}, ErrInvalidRequestID
	}

	plan, err := u.loadPlan(ctx, requestID)
	if err != nil {
		return entities.InstallmentPlan{}, err
	}
	if plan.RequestID == "" {
		return entities.InstallmentPlan{}, ErrInstallmentPlanNotFound
	}
	return plan, nil
}

// SetLegAmounts overwrites the amount, payment method and due date of every
// submitted leg that is still mutable. A sum that does not match the
// request's total price yields a warning, never an error: the store has
// always been lax here and downstream screens rely on that.
func (u *InstallmentUseCase) SetLegAmounts(ctx context.Context, requestID string, legs []entities.InstallmentLeg) (SetLegsResult, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return SetLegsResult{}, ErrInvalidRequestID
	}
	for _, leg := range legs {
		if leg.Number < 1 || leg.Number > 3 {
			return SetLegsResult{}, ErrInvalidLegNumber
		}
		if leg.Amount < 0 {
			return SetLegsResult{}, ErrInvalidLegAmount
		}
		if !leg.PaymentMethod.Valid() {
			return SetLegsResult{}, ErrInvalidLegPaymentMethod
		}
	}

	plan, err := u.loadPlan(ctx, requestID)
	if err != nil {
		return SetLegsResult{}, err
	}
	if plan.RequestID == "" {
		return SetLegsResult{}, ErrInstallmentPlanNotFound
	}

	result := SetLegsResult{}
	mutable := make([]entities.InstallmentLeg, 0, len(legs))
	for _, leg := range legs {
		current, _ := plan.Leg(leg.Number)
		if current.Lock.Locked || (leg.Number == 3 && current.Deleted) {
			result.SkippedLegs = append(result.SkippedLegs, leg.Number)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("installment %d of request %s is locked and was not modified", leg.Number, requestID))
			continue
		}
		mutable = append(mutable, leg)
	}

	if len(mutable) > 0 {
		err = u.retry.Run("saving installment legs", func() error {
			var err error
			plan, err = u.repo.SaveLegs(ctx, requestID, mutable)
			return err
		})
		if err != nil {
			return SetLegsResult{}, err
		}
	}
	result.Plan = plan

	if sum := plan.ActiveAmountSum(); plan.TotalPrice > 0 && math.Abs(sum-plan.TotalPrice) > 0.009 {
		warning := fmt.Sprintf("request %s: installment amounts sum to %.2f but the package price is %.2f", requestID, sum, plan.TotalPrice)
		result.Warnings = append(result.Warnings, warning)
		log.Printf("[installment][usecase] %s", warning)
	}
	return result, nil
}

// LockLeg is two-phase: the leg's current values are written back first, so
// the lock always freezes the last-seen amount/method/due-date, then the
// store's lock procedure flips the one-way flag. Locking an already-locked
// leg is a no-op. There is no unlock.
func (u *InstallmentUseCase) LockLeg(ctx context.Context, requestID string, number int, lockedBy string) error {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return ErrInvalidRequestID
	}
	if number < 1 || number > 3 {
		return ErrInvalidLegNumber
	}
	if u.repo == nil || u.procedures == nil {
		return ErrInstallmentsNotConfigured
	}

	plan, err := u.loadPlan(ctx, requestID)
	if err != nil {
		return err
	}
	if plan.RequestID == "" {
		return ErrInstallmentPlanNotFound
	}

	leg, _ := plan.Leg(number)
	if leg.Lock.Locked {
		log.Printf("[installment][usecase] lock no-op, already locked request_id=%s leg=%d", requestID, number)
		return nil
	}

	err = u.retry.Run("freezing installment leg values", func() error {
		_, err := u.repo.SaveLegs(ctx, requestID, []entities.InstallmentLeg{leg})
		return err
	})
	if err != nil {
		return err
	}

	err = u.retry.Run("locking installment leg", func() error {
		return u.procedures.LockInstallment(ctx, requestID, number, lockedBy)
	})
	if err != nil {
		return err
	}
	log.Printf("[installment][usecase] leg locked request_id=%s leg=%d locked_by=%s", requestID, number, lockedBy)
	return nil
}

// DeleteThirdLeg flips the one-way deletion flag of leg 3. It refuses when
// the leg is already locked: deletion would contradict a committed lock.
func (u *InstallmentUseCase) DeleteThirdLeg(ctx context.Context, requestID, deletedBy string) error {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return ErrInvalidRequestID
	}
	if u.repo == nil || u.procedures == nil {
		return ErrInstallmentsNotConfigured
	}

	plan, err := u.loadPlan(ctx, requestID)
	if err != nil {
		return err
	}
	if plan.RequestID == "" {
		return ErrInstallmentPlanNotFound
	}

	leg, _ := plan.Leg(3)
	if leg.Lock.Locked {
		return ErrThirdLegLocked
	}
	if leg.Deleted {
		log.Printf("[installment][usecase] third-leg delete no-op, already deleted request_id=%s", requestID)
		return nil
	}

	err = u.retry.Run("deleting third installment", func() error {
		return u.procedures.DeleteThirdInstallment(ctx, requestID, deletedBy)
	})
	if err != nil {
		return err
	}
	log.Printf("[installment][usecase] third leg deleted request_id=%s deleted_by=%s", requestID, deletedBy)
	return nil
}

// IsLegLocked reads the persisted lock flag only: a missing or zero-valued
// lock state counts as unlocked. Fail-open on purpose: the store has rows
// predating the lock columns and the portal has always treated them as
// editable; do not flip this to fail-closed without product sign-off.
func IsLegLocked(plan entities.InstallmentPlan, number int) bool {
	leg, ok := plan.Leg(number)
	return ok && leg.Lock.Locked
}

func (u *InstallmentUseCase) loadPlan(ctx context.Context, requestID string) (entities.InstallmentPlan, error) {
	var plan entities.InstallmentPlan
	err := u.retry.Run("loading installment plan", func() error {
		var err error
		plan, err = u.repo.GetPlan(ctx, requestID)
		return err
	})
	return plan, err
}
