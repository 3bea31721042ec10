package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"freegym_settlement/internal/domain/entities"
	"freegym_settlement/internal/observability/metrics"
	"freegym_settlement/internal/usecase/interfaces"
	"freegym_settlement/pkg"

	"github.com/google/uuid"
)

var (
	ErrInvalidSubjectID      = errors.New("invalid subject id")
	ErrInvalidApprovalStatus = errors.New("invalid approval status")
	ErrEmptyOptions          = errors.New("options snapshot carries no selection")
	ErrSettlementFailed      = errors.New("approval recorded but every settlement step failed")
)

// TransitionResult is the outcome of one status transition. Warnings carry
// settlement steps that failed after the decision was already persisted.
type TransitionResult struct {
	Record   entities.ApprovalRecord
	Warnings []string
}

// BatchItemResult pairs one subject of a batch with its individual outcome.
// Batches are processed strictly in order and one subject's failure never
// stops the rest.
type BatchItemResult struct {
	SubjectID string
	Result    TransitionResult
	Err       error
}

// IApprovalUseCase drives the per-subject approval status machine.
//
// The contract that everything else here hangs off: the decision record is
// committed BEFORE any settlement side effect runs, and settlement failures
// surface as warnings, never as a rollback of the decision.

type IApprovalUseCase interface {
	Transition(ctx context.Context, subjectID string, status entities.ApprovalStatus, options entities.OptionsSnapshot, createdBy, notes string) (TransitionResult, error)
	TransitionBatch(ctx context.Context, subjectIDs []string, status entities.ApprovalStatus, options entities.OptionsSnapshot, createdBy, notes string) []BatchItemResult
	ListBySubject(ctx context.Context, subjectID string) ([]entities.ApprovalRecord, error)
}

type ApprovalUseCase struct {
	approvalRepo   interfaces.IApprovalRepository
	frozenRepo     interfaces.IFrozenSnapshotRepository
	membershipRepo interfaces.IMembershipRepository
	settlement     ISettlementUseCase
	retry          *pkg.RetryRunner
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(
	approvalRepo interfaces.IApprovalRepository,
	frozenRepo interfaces.IFrozenSnapshotRepository,
	membershipRepo interfaces.IMembershipRepository,
	settlement ISettlementUseCase,
) *ApprovalUseCase {
	return &ApprovalUseCase{
		approvalRepo:   approvalRepo,
		frozenRepo:     frozenRepo,
		membershipRepo: membershipRepo,
		settlement:     settlement,
		retry:          pkg.NewRetryRunner(),
	}
}

// Transition records an administrator decision for one subject.
//
// pending freezes the submitted options alongside the audit record and runs
// no side effects. approved and rejected resolve the effective options (a
// frozen snapshot, if one exists, wins over whatever was submitted) and then
// consume the snapshot. rejected is pure audit; approved additionally runs
// the settlement cascade, whose per-step failures come back as warnings.
func (u *ApprovalUseCase) Transition(ctx context.Context, subjectID string, status entities.ApprovalStatus, options entities.OptionsSnapshot, createdBy, notes string) (TransitionResult, error) {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return TransitionResult{}, ErrInvalidSubjectID
	}
	if !status.Valid() {
		return TransitionResult{}, ErrInvalidApprovalStatus
	}
	// Every decision has to carry a selection. pending is rejected before any
	// remote call; approve/reject may draw their selection from the frozen
	// snapshot instead, so they are checked after that lookup.
	if status == entities.ApprovalStatusPending && options.IsEmpty() {
		return TransitionResult{}, ErrEmptyOptions
	}
	log.Printf("[approval][usecase] transition start subject_id=%s status=%s created_by=%s", subjectID, status, createdBy)

	effective := options.Normalize()
	usedFrozen := false
	if status != entities.ApprovalStatusPending {
		frozen, err := u.loadFrozen(ctx, subjectID)
		if err != nil {
			return TransitionResult{}, err
		}
		if frozen.SubjectID != "" {
			effective = frozen.Options.Normalize()
			usedFrozen = true
			log.Printf("[approval][usecase] frozen snapshot takes precedence subject_id=%s frozen_at=%s", subjectID, frozen.FrozenAt.Format(time.RFC3339))
		} else if options.IsEmpty() {
			return TransitionResult{}, ErrEmptyOptions
		}
	}

	now := time.Now().UTC()
	record := entities.ApprovalRecord{
		ID:        uuid.NewString(),
		SubjectID: subjectID,
		Status:    status,
		Options:   effective,
		CreatedBy: createdBy,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := u.retry.Run("creating approval record", func() error {
		var err error
		record, err = u.approvalRepo.CreateRecord(ctx, record)
		return err
	})
	if err != nil {
		return TransitionResult{}, err
	}
	metrics.Transitions.WithLabelValues(string(status)).Inc()

	result := TransitionResult{Record: record}

	switch status {
	case entities.ApprovalStatusPending:
		err := u.retry.Run("freezing options snapshot", func() error {
			return u.frozenRepo.Save(ctx, entities.FrozenSnapshot{
				SubjectID: subjectID,
				Options:   effective,
				FrozenAt:  now,
				FrozenBy:  createdBy,
			})
		})
		if err != nil {
			// The audit row is already committed; report the freeze failure
			// instead of pretending the transition did not happen.
			result.Warnings = append(result.Warnings, "options snapshot could not be frozen: "+err.Error())
			log.Printf("[approval][usecase] freeze failed subject_id=%s err=%v", subjectID, err)
		}
		return result, nil

	case entities.ApprovalStatusRejected:
		u.clearFrozen(ctx, subjectID, usedFrozen, &result)
		log.Printf("[approval][usecase] subject rejected, no settlement subject_id=%s", subjectID)
		return result, nil

	case entities.ApprovalStatusApproved:
		u.clearFrozen(ctx, subjectID, usedFrozen, &result)
		report := u.settle(ctx, subjectID, effective, createdBy)
		result.Warnings = append(result.Warnings, report.Warnings()...)
		if report.AllFailed() {
			// The decision stands; only its side effects need another run.
			return result, ErrSettlementFailed
		}
		return result, nil
	}
	return result, nil
}

// settle picks the cascade variant: subjects that resolve to a membership
// request get the full request flow, anything else is settled as a plain
// member subject.
func (u *ApprovalUseCase) settle(ctx context.Context, subjectID string, options entities.OptionsSnapshot, createdBy string) *entities.CascadeReport {
	var req entities.MembershipRequest
	err := u.retry.Run("loading membership request", func() error {
		var err error
		req, err = u.membershipRepo.GetRequestByID(ctx, subjectID)
		return err
	})
	if err != nil {
		// Falling back to the member flow here would write ledger rows under
		// a request id. Surface the lookup as a failed step instead so the
		// admin can retry the settlement.
		log.Printf("[approval][usecase] request lookup failed subject_id=%s err=%v", subjectID, err)
		report := &entities.CascadeReport{SubjectID: subjectID}
		report.RecordFailure(entities.StepRequestLookup, err)
		metrics.SettlementSteps.WithLabelValues(entities.StepRequestLookup, "failure").Inc()
		return report
	}
	if req.ID == "" {
		return u.settlement.Run(ctx, subjectID, options, createdBy)
	}
	return u.settlement.RunForRequest(ctx, req, options, createdBy)
}

// TransitionBatch applies the same decision to several subjects, strictly
// one after another. A failed subject is reported in its slot and the batch
// keeps going.
func (u *ApprovalUseCase) TransitionBatch(ctx context.Context, subjectIDs []string, status entities.ApprovalStatus, options entities.OptionsSnapshot, createdBy, notes string) []BatchItemResult {
	results := make([]BatchItemResult, 0, len(subjectIDs))
	for _, subjectID := range subjectIDs {
		res, err := u.Transition(ctx, subjectID, status, options, createdBy, notes)
		results = append(results, BatchItemResult{SubjectID: subjectID, Result: res, Err: err})
		if err != nil {
			log.Printf("[approval][usecase] batch item failed subject_id=%s err=%v", subjectID, err)
		}
	}
	return results
}

func (u *ApprovalUseCase) ListBySubject(ctx context.Context, subjectID string) ([]entities.ApprovalRecord, error) {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return nil, ErrInvalidSubjectID
	}
	var records []entities.ApprovalRecord
	err := u.retry.Run("listing approval records", func() error {
		var err error
		records, err = u.approvalRepo.ListBySubjectID(ctx, subjectID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (u *ApprovalUseCase) loadFrozen(ctx context.Context, subjectID string) (entities.FrozenSnapshot, error) {
	var snap entities.FrozenSnapshot
	err := u.retry.Run("loading frozen snapshot", func() error {
		var err error
		snap, err = u.frozenRepo.Get(ctx, subjectID)
		return err
	})
	return snap, err
}

// clearFrozen consumes the subject's snapshot after a final decision. A
// delete failure leaves a stale snapshot that would shadow the next
// decision's options, so it is surfaced as a warning.
func (u *ApprovalUseCase) clearFrozen(ctx context.Context, subjectID string, hadFrozen bool, result *TransitionResult) {
	if !hadFrozen {
		return
	}
	err := u.retry.Run("deleting frozen snapshot", func() error {
		return u.frozenRepo.Delete(ctx, subjectID)
	})
	if err != nil {
		result.Warnings = append(result.Warnings, "frozen options snapshot could not be cleared: "+err.Error())
		log.Printf("[approval][usecase] frozen snapshot delete failed subject_id=%s err=%v", subjectID, err)
	}
}
