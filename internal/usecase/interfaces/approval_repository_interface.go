package interfaces

import (
	"context"
	"freegym_settlement/internal/domain/entities"
)

// IApprovalRepository abstracts persistence for ApprovalRecord audit rows.
// Records are append-only; re-evaluating a subject writes a new record.

type IApprovalRepository interface {
	CreateRecord(ctx context.Context, rec entities.ApprovalRecord) (entities.ApprovalRecord, error)
	ListBySubjectID(ctx context.Context, subjectID string) ([]entities.ApprovalRecord, error)
}
