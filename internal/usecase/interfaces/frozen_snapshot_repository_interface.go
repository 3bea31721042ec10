package interfaces

import (
	"context"
	"freegym_settlement/internal/domain/entities"
)

// IFrozenSnapshotRepository abstracts the per-subject frozen options row.
// At most one snapshot exists per subject; Get on a subject without one
// returns the zero value, not an error.

type IFrozenSnapshotRepository interface {
	Save(ctx context.Context, snap entities.FrozenSnapshot) error
	Get(ctx context.Context, subjectID string) (entities.FrozenSnapshot, error)
	Delete(ctx context.Context, subjectID string) error
}
