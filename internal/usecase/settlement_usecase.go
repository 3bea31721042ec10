package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"freegym_settlement/internal/domain/entities"
	"freegym_settlement/internal/observability/metrics"
	"freegym_settlement/internal/usecase/interfaces"
	"freegym_settlement/pkg"

	"github.com/google/uuid"
)

var (
	ErrSettlementNotConfigured = errors.New("settlement dependencies not configured")
)

// Products activated by a dual-product package approval.
var dualPackageProducts = [2]string{"Free Gym", "Pilates"}

const defaultMembershipDuration = 365 * 24 * time.Hour

// ISettlementUseCase executes the post-approval settlement cascade.
//
// Every step is best-effort: failures are collected per step in the
// CascadeReport and never abort the remaining steps or roll back earlier
// ones. The approval decision itself has already been persisted by the time
// a cascade runs.

type ISettlementUseCase interface {
	Run(ctx context.Context, userID string, options entities.OptionsSnapshot, createdBy string) *entities.CascadeReport
	RunForRequest(ctx context.Context, req entities.MembershipRequest, options entities.OptionsSnapshot, createdBy string) *entities.CascadeReport
}

type SettlementUseCase struct {
	membershipRepo interfaces.IMembershipRepository
	ledgerRepo     interfaces.ILedgerRepository
	deposits       IDepositUseCase
	retry          *pkg.RetryRunner
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(
	membershipRepo interfaces.IMembershipRepository,
	ledgerRepo interfaces.ILedgerRepository,
	deposits IDepositUseCase,
) *SettlementUseCase {
	return &SettlementUseCase{
		membershipRepo: membershipRepo,
		ledgerRepo:     ledgerRepo,
		deposits:       deposits,
		retry:          pkg.NewRetryRunner(),
	}
}

// Run executes the common settlement steps for a plain user subject, in
// fixed order: old-members flag, kettlebell points, cash entry, POS entry.
func (u *SettlementUseCase) Run(ctx context.Context, userID string, options entities.OptionsSnapshot, createdBy string) *entities.CascadeReport {
	report := &entities.CascadeReport{SubjectID: userID}
	u.runCommonSteps(ctx, report, userID, options, createdBy)
	return report
}

// RunForRequest executes the membership-request variant: request status,
// membership activation (two rows for a dual-product package) and, for
// flexible users, deposit provisioning precede the common steps.
func (u *SettlementUseCase) RunForRequest(ctx context.Context, req entities.MembershipRequest, options entities.OptionsSnapshot, createdBy string) *entities.CascadeReport {
	report := &entities.CascadeReport{SubjectID: req.ID}
	log.Printf("[settlement][usecase] run-for-request start request_id=%s user_id=%s", req.ID, req.UserID)

	statusErr := u.retry.Run("updating request status", func() error {
		_, err := u.membershipRepo.UpdateRequestStatus(ctx, req.ID, entities.RequestStatusApproved)
		return err
	})
	u.recordStep(report, entities.StepRequestStatus, statusErr)
	if statusErr != nil {
		log.Printf("[settlement][usecase] request status update failed request_id=%s err=%v", req.ID, statusErr)
	}

	products := []string{req.PackageName}
	if req.DualProduct {
		products = dualPackageProducts[:]
	}
	now := time.Now().UTC()
	for _, product := range products {
		m := entities.Membership{
			ID:        uuid.NewString(),
			UserID:    req.UserID,
			RequestID: req.ID,
			Product:   product,
			StartDate: now,
			EndDate:   now.Add(defaultMembershipDuration),
			CreatedAt: now,
		}
		err := u.retry.Run("activating membership", func() error {
			_, err := u.membershipRepo.ActivateMembership(ctx, m)
			return err
		})
		u.recordStep(report, entities.StepActivateMembership, err)
		if err != nil {
			log.Printf("[settlement][usecase] membership activation failed request_id=%s product=%s err=%v", req.ID, product, err)
		}
	}

	if req.Flexible {
		err := ErrSettlementNotConfigured
		if u.deposits != nil {
			_, err = u.deposits.Provision(ctx, req.UserID, req.SessionCount, true, createdBy)
		}
		u.recordStep(report, entities.StepProvisionDeposit, err)
		if err != nil {
			log.Printf("[settlement][usecase] deposit provisioning failed request_id=%s user_id=%s err=%v", req.ID, req.UserID, err)
		}
	}

	u.runCommonSteps(ctx, report, req.UserID, options, createdBy)
	return report
}

func (u *SettlementUseCase) runCommonSteps(ctx context.Context, report *entities.CascadeReport, userID string, options entities.OptionsSnapshot, createdBy string) {
	// Amounts are captured up front: a successful old-members step clears
	// the live promo/cash/pos selections (local hygiene only), and that
	// must never change what steps 3 and 4 write.
	kettlebellPoints := options.KettlebellPoints
	cashAmount := options.CashAmount
	posAmount := options.PosAmount

	if options.OldMembersUsed {
		err := u.retry.Run("marking old members used", func() error {
			return u.membershipRepo.MarkOldMembersUsed(ctx, userID, createdBy)
		})
		u.recordStep(report, entities.StepOldMembers, err)
		if err != nil {
			log.Printf("[settlement][usecase] old-members step failed subject=%s err=%v", report.SubjectID, err)
		} else {
			options.First150Members = false
			options.CashAmount = 0
			options.PosAmount = 0
		}
	}

	if kettlebellPoints > 0 {
		entry := entities.KettlebellPointEntry{
			ID:        uuid.NewString(),
			UserID:    userID,
			Points:    kettlebellPoints,
			CreatedBy: createdBy,
			CreatedAt: time.Now().UTC(),
		}
		err := u.retry.Run("appending kettlebell points", func() error {
			_, err := u.ledgerRepo.AppendKettlebellPoints(ctx, entry)
			return err
		})
		u.recordStep(report, entities.StepKettlebellPoints, err)
		if err != nil {
			log.Printf("[settlement][usecase] kettlebell step failed subject=%s err=%v", report.SubjectID, err)
		}
	}

	if cashAmount > 0 {
		err := u.appendCashTransaction(ctx, userID, cashAmount, entities.PaymentMethodCash, createdBy)
		u.recordStep(report, entities.StepCashTransaction, err)
		if err != nil {
			log.Printf("[settlement][usecase] cash step failed subject=%s err=%v", report.SubjectID, err)
		}
	}

	if posAmount > 0 {
		err := u.appendCashTransaction(ctx, userID, posAmount, entities.PaymentMethodPOS, createdBy)
		u.recordStep(report, entities.StepPosTransaction, err)
		if err != nil {
			log.Printf("[settlement][usecase] pos step failed subject=%s err=%v", report.SubjectID, err)
		}
	}
}

func (u *SettlementUseCase) appendCashTransaction(ctx context.Context, userID string, amount float64, method entities.PaymentMethod, createdBy string) error {
	entry := entities.CashTransactionEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Amount:    amount,
		Method:    method,
		Notes:     "Settlement from approved program",
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}
	return u.retry.Run("appending cash transaction", func() error {
		_, err := u.ledgerRepo.AppendCashTransaction(ctx, entry)
		return err
	})
}

func (u *SettlementUseCase) recordStep(report *entities.CascadeReport, step string, err error) {
	if err != nil {
		report.RecordFailure(step, err)
		metrics.SettlementSteps.WithLabelValues(step, "failure").Inc()
		return
	}
	report.RecordSuccess(step)
	metrics.SettlementSteps.WithLabelValues(step, "success").Inc()
}
