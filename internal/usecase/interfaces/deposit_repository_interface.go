package interfaces

import (
	"context"
	"freegym_settlement/internal/domain/entities"
)

// IDepositRepository abstracts the lesson deposit row of a flexible user.
// Get on a user without a deposit returns the zero value, not an error.
// UpdateBaseline writes total/used directly; the reset path goes through the
// store's reset procedure instead (see IStoreProcedures).

type IDepositRepository interface {
	Get(ctx context.Context, userID string) (entities.LessonDeposit, error)
	UpdateBaseline(ctx context.Context, userID string, totalLessons, usedLessons int) (entities.LessonDeposit, error)
}
