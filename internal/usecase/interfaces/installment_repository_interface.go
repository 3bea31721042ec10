package interfaces

import (
	"context"
	"freegym_settlement/internal/domain/entities"
)

// IInstallmentRepository abstracts the installment leg attributes stored on
// the membership request row. SaveLegs overwrites amount/method/due-date for
// the given legs only; lock and deletion flags are owned by the store's
// named procedures and never written through here.

type IInstallmentRepository interface {
	GetPlan(ctx context.Context, requestID string) (entities.InstallmentPlan, error)
	SaveLegs(ctx context.Context, requestID string, legs []entities.InstallmentLeg) (entities.InstallmentPlan, error)
}
