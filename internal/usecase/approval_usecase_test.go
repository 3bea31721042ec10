package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"freegym_settlement/internal/domain/entities"
	mock_interfaces "freegym_settlement/internal/usecase/interfaces/mocks"
	"freegym_settlement/pkg"

	"go.uber.org/mock/gomock"
)

func fastRetry() *pkg.RetryRunner {
	return &pkg.RetryRunner{MaxAttempts: 3, BaseDelay: time.Millisecond}
}

type approvalFixture struct {
	approvalRepo   *mock_interfaces.MockIApprovalRepository
	frozenRepo     *mock_interfaces.MockIFrozenSnapshotRepository
	membershipRepo *mock_interfaces.MockIMembershipRepository
	ledgerRepo     *mock_interfaces.MockILedgerRepository
	uc             *ApprovalUseCase
}

func newApprovalFixture(ctrl *gomock.Controller) approvalFixture {
	f := approvalFixture{
		approvalRepo:   mock_interfaces.NewMockIApprovalRepository(ctrl),
		frozenRepo:     mock_interfaces.NewMockIFrozenSnapshotRepository(ctrl),
		membershipRepo: mock_interfaces.NewMockIMembershipRepository(ctrl),
		ledgerRepo:     mock_interfaces.NewMockILedgerRepository(ctrl),
	}
	settlement := NewSettlementUseCase(f.membershipRepo, f.ledgerRepo, nil)
	settlement.retry = fastRetry()
	f.uc = NewApprovalUseCase(f.approvalRepo, f.frozenRepo, f.membershipRepo, settlement)
	f.uc.retry = fastRetry()
	return f
}

func expectCreateRecordEcho(f approvalFixture) *gomock.Call {
	return f.approvalRepo.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec entities.ApprovalRecord) (entities.ApprovalRecord, error) {
			return rec, nil
		})
}

func TestApprovalUseCase_Transition_Validations(t *testing.T) {
	t.Run("empty subject id", func(t *testing.T) {
		uc := NewApprovalUseCase(nil, nil, nil, nil)
		_, err := uc.Transition(context.Background(), "  ", entities.ApprovalStatusApproved, entities.OptionsSnapshot{}, "admin-1", "")
		if !errors.Is(err, ErrInvalidSubjectID) {
			t.Fatalf("expected ErrInvalidSubjectID, got %v", err)
		}
	})

	t.Run("none is not a transition target", func(t *testing.T) {
		uc := NewApprovalUseCase(nil, nil, nil, nil)
		_, err := uc.Transition(context.Background(), "user-1", entities.ApprovalStatusNone, entities.OptionsSnapshot{}, "admin-1", "")
		if !errors.Is(err, ErrInvalidApprovalStatus) {
			t.Fatalf("expected ErrInvalidApprovalStatus, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewApprovalUseCase(nil, nil, nil, nil)
		_, err := uc.Transition(context.Background(), "user-1", entities.ApprovalStatus("frobnicated"), entities.OptionsSnapshot{}, "admin-1", "")
		if !errors.Is(err, ErrInvalidApprovalStatus) {
			t.Fatalf("expected ErrInvalidApprovalStatus, got %v", err)
		}
	})

	t.Run("pending with empty options writes nothing", func(t *testing.T) {
		// nil repos: any remote call would panic.
		uc := NewApprovalUseCase(nil, nil, nil, nil)
		_, err := uc.Transition(context.Background(), "user-1", entities.ApprovalStatusPending, entities.OptionsSnapshot{}, "admin-1", "")
		if !errors.Is(err, ErrEmptyOptions) {
			t.Fatalf("expected ErrEmptyOptions, got %v", err)
		}
	})

	t.Run("approve with empty options and no frozen snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newApprovalFixture(ctrl)

		f.frozenRepo.EXPECT().Get(gomock.Any(), "user-1").Return(entities.FrozenSnapshot{}, nil)
		// No CreateRecord EXPECT: the record must not be persisted.

		_, err := f.uc.Transition(context.Background(), "user-1", entities.ApprovalStatusApproved, entities.OptionsSnapshot{}, "admin-1", "")
		if !errors.Is(err, ErrEmptyOptions) {
			t.Fatalf("expected ErrEmptyOptions, got %v", err)
		}
	})
}

func TestApprovalUseCase_Transition_Pending(t *testing.T) {
	t.Run("freezes normalized options and runs no settlement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newApprovalFixture(ctrl)

		var created entities.ApprovalRecord
		f.approvalRepo.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec entities.ApprovalRecord) (entities.ApprovalRecord, error) {
				created = rec
				return rec, nil
			})
		var frozen entities.FrozenSnapshot
		f.frozenRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snap entities.FrozenSnapshot) error {
				frozen = snap
				return nil
			})

		options := entities.OptionsSnapshot{First150Members: true, CashAmount: 999, PosAmount: 50, KettlebellPoints: 3}
		res, err := f.uc.Transition(context.Background(), "user-1", entities.ApprovalStatusPending, options, "admin-1", "note")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Warnings) != 0 {
			t.Fatalf("expected no warnings, got %v", res.Warnings)
		}
		if created.Status != entities.ApprovalStatusPending || created.SubjectID != "user-1" {
			t.Fatalf("unexpected record: %+v", created)
		}
		// The promo fixes cash and zeroes POS before anything is persisted.
		if created.Options.CashAmount != entities.First150CashAmount || created.Options.PosAmount != 0 {
			t.Fatalf("options not normalized: %+v", created.Options)
		}
		if frozen.SubjectID != "user-1" || frozen.Options != created.Options {
			t.Fatalf("frozen snapshot mismatch: %+v", frozen)
		}
	})

	t.Run("freeze failure is a warning, not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newApprovalFixture(ctrl)

		expectCreateRecordEcho(f)
		f.frozenRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(3)

		res, err := f.uc.Transition(context.Background(), "user-1", entities.ApprovalStatusPending, entities.OptionsSnapshot{KettlebellPoints: 1}, "admin-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Warnings) != 1 {
			t.Fatalf("expected one warning, got %v", res.Warnings)
		}
	})
}

func TestApprovalUseCase_Transition_Rejected(t *testing.T) {
	t.Run("pure audit, no ledger writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newApprovalFixture(ctrl)

		f.frozenRepo.EXPECT().Get(gomock.Any(), "user-1").Return(entities.FrozenSnapshot{}, nil)
		expectCreateRecordEcho(f)
		// No EXPECT on the ledger or membership mocks: any settlement write
		// would fail the controller.

		res, err := f.uc.Transition(context.Background(), "user-1", entities.ApprovalStatusRejected,
			entities.OptionsSnapshot{KettlebellPoints: 10, CashAmount: 100}, "admin-1", "changed their mind")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Warnings) != 0 {
			t.Fatalf("expected no warnings, got %v", res.Warnings)
		}
		if res.Record.Status != entities.ApprovalStatusRejected {
			t.Fatalf("unexpected record status: %s", res.Record.Status)
		}
	})

	t.Run("consumes the frozen snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newApprovalFixture(ctrl)

		f.frozenRepo.EXPECT().Get(gomock.Any(), "user-1").Return(entities.FrozenSnapshot{
			SubjectID: "user-1",
			Options:   entities.OptionsSnapshot{KettlebellPoints: 4},
			FrozenAt:  time.Now().UTC(),
		}, nil)
		expectCreateRecordEcho(f)
		f.frozenRepo.EXPECT().Delete(gomock.Any(), "user-1").Return(nil)

		res, err := f.uc.Transition(context.Background(), "user-1", entities.ApprovalStatusRejected, entities.OptionsSnapshot{}, "admin-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Record.Options.KettlebellPoints != 4 {
			t.Fatalf("expected frozen options on the record, got %+v", res.Record.Options)
		}
	})
}

func TestApprovalUseCase_Transition_Approved(t *testing.T) {
	t.Run("frozen snapshot wins over submitted options", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newApprovalFixture(ctrl)

		f.frozenRepo.EXPECT().Get(gomock.Any(), "user-1").Return(entities.FrozenSnapshot{
			SubjectID: "user-1",
			Options:   entities.OptionsSnapshot{KettlebellPoints: 7},
		}, nil)
		expectCreateRecordEcho(f)
		f.frozenRepo.EXPECT().Delete(gomock.Any(), "user-1").Return(nil)
		f.membershipRepo.EXPECT().GetRequestByID(gomock.Any(), "user-1").Return(entities.MembershipRequest{}, nil)

		var points int
		f.ledgerRepo.EXPECT().AppendKettlebellPoints(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry entities.KettlebellPointEntry) (entities.KettlebellPointEntry, error) {
				points = entry.Points
				return entry, nil
			})

		submitted := entities.OptionsSnapshot{KettlebellPoints: 99}
		res, err := f.uc.Transition(context.Background(), "user-1", entities.ApprovalStatusApproved, submitted, "admin-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if points != 7 {
			t.Fatalf("expected frozen points 7 to be settled, got %d", points)
		}
		if len(res.Warnings) != 0 {
			t.Fatalf("expected no warnings, got %v", res.Warnings)
		}
	})

	t.Run("subject resolving to a request runs the request flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newApprovalFixture(ctrl)

		req := entities.MembershipRequest{ID: "req-1", UserID: "user-9", PackageName: "Free Gym"}
		f.frozenRepo.EXPECT().Get(gomock.Any(), "req-1").Return(entities.FrozenSnapshot{}, nil)
		expectCreateRecordEcho(f)
		f.membershipRepo.EXPECT().GetRequestByID(gomock.Any(), "req-1").Return(req, nil)
		f.membershipRepo.EXPECT().UpdateRequestStatus(gomock.Any(), "req-1", entities.RequestStatusApproved).Return(req, nil)
		f.membershipRepo.EXPECT().ActivateMembership(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m entities.Membership) (entities.Membership, error) {
				if m.UserID != "user-9" || m.RequestID != "req-1" || m.Product != "Free Gym" {
					t.Fatalf("unexpected membership: %+v", m)
				}
				return m, nil
			})

		f.ledgerRepo.EXPECT().AppendKettlebellPoints(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry entities.KettlebellPointEntry) (entities.KettlebellPointEntry, error) {
				return entry, nil
			})

		_, err := f.uc.Transition(context.Background(), "req-1", entities.ApprovalStatusApproved, entities.OptionsSnapshot{KettlebellPoints: 1}, "admin-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("request lookup failure surfaces instead of settling as member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newApprovalFixture(ctrl)

		f.frozenRepo.EXPECT().Get(gomock.Any(), "req-77").Return(entities.FrozenSnapshot{}, nil)
		expectCreateRecordEcho(f)
		f.membershipRepo.EXPECT().GetRequestByID(gomock.Any(), "req-77").
			Return(entities.MembershipRequest{}, errors.New("dynamodb throttled")).Times(3)
		// No ledger EXPECTs: a cash row keyed by the request id would fail
		// the controller.

		res, err := f.uc.Transition(context.Background(), "req-77", entities.ApprovalStatusApproved,
			entities.OptionsSnapshot{CashAmount: 50}, "admin-1", "")
		if !errors.Is(err, ErrSettlementFailed) {
			t.Fatalf("expected ErrSettlementFailed, got %v", err)
		}
		if len(res.Warnings) != 1 {
			t.Fatalf("expected one warning, got %v", res.Warnings)
		}
		if want := "step " + entities.StepRequestLookup + " failed"; !strings.Contains(res.Warnings[0], want) {
			t.Fatalf("expected warning naming the lookup step, got %q", res.Warnings[0])
		}
	})

	t.Run("decision stands when every settlement step fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newApprovalFixture(ctrl)

		f.frozenRepo.EXPECT().Get(gomock.Any(), "user-1").Return(entities.FrozenSnapshot{}, nil)
		var recordCreated bool
		f.approvalRepo.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec entities.ApprovalRecord) (entities.ApprovalRecord, error) {
				recordCreated = true
				return rec, nil
			})
		f.membershipRepo.EXPECT().GetRequestByID(gomock.Any(), "user-1").Return(entities.MembershipRequest{}, nil)
		f.ledgerRepo.EXPECT().AppendCashTransaction(gomock.Any(), gomock.Any()).
			Return(entities.CashTransactionEntry{}, errors.New("store down")).Times(3)

		res, err := f.uc.Transition(context.Background(), "user-1", entities.ApprovalStatusApproved,
			entities.OptionsSnapshot{CashAmount: 50}, "admin-1", "")
		if !errors.Is(err, ErrSettlementFailed) {
			t.Fatalf("expected ErrSettlementFailed, got %v", err)
		}
		if !recordCreated {
			t.Fatal("expected the approval record to be committed before settlement")
		}
		if len(res.Warnings) == 0 {
			t.Fatal("expected step warnings alongside the error")
		}
	})
}

func TestApprovalUseCase_TransitionBatch(t *testing.T) {
	t.Run("keeps going after a failed subject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newApprovalFixture(ctrl)

		f.frozenRepo.EXPECT().Get(gomock.Any(), "user-1").Return(entities.FrozenSnapshot{}, nil)
		f.approvalRepo.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).
			Return(entities.ApprovalRecord{}, errors.New("db down")).Times(3)

		f.frozenRepo.EXPECT().Get(gomock.Any(), "user-2").Return(entities.FrozenSnapshot{}, nil)
		expectCreateRecordEcho(f)
		f.membershipRepo.EXPECT().GetRequestByID(gomock.Any(), "user-2").Return(entities.MembershipRequest{}, nil)
		f.ledgerRepo.EXPECT().AppendKettlebellPoints(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry entities.KettlebellPointEntry) (entities.KettlebellPointEntry, error) {
				return entry, nil
			})

		results := f.uc.TransitionBatch(context.Background(), []string{"user-1", "user-2"},
			entities.ApprovalStatusApproved, entities.OptionsSnapshot{KettlebellPoints: 2}, "admin-1", "")
		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
		if results[0].SubjectID != "user-1" || results[0].Err == nil {
			t.Fatalf("expected first subject to fail: %+v", results[0])
		}
		if results[1].SubjectID != "user-2" || results[1].Err != nil {
			t.Fatalf("expected second subject to succeed: %+v", results[1])
		}
	})
}

func TestApprovalUseCase_ListBySubject(t *testing.T) {
	t.Run("empty subject id", func(t *testing.T) {
		uc := NewApprovalUseCase(nil, nil, nil, nil)
		_, err := uc.ListBySubject(context.Background(), " ")
		if !errors.Is(err, ErrInvalidSubjectID) {
			t.Fatalf("expected ErrInvalidSubjectID, got %v", err)
		}
	})

	t.Run("returns the audit trail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newApprovalFixture(ctrl)

		f.approvalRepo.EXPECT().ListBySubjectID(gomock.Any(), "user-1").Return([]entities.ApprovalRecord{
			{ID: "a", SubjectID: "user-1", Status: entities.ApprovalStatusPending},
			{ID: "b", SubjectID: "user-1", Status: entities.ApprovalStatusApproved},
		}, nil)

		records, err := f.uc.ListBySubject(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
	})
}
