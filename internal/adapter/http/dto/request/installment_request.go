package request

import "freegym_settlement/internal/domain/entities"

// LegPayload is one installment leg as submitted by the admin portal.
type LegPayload struct {
	Number        int     `json:"number"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	DueDate       string  `json:"due_date,omitempty"` // YYYY-MM-DD
}

func (l LegPayload) ToEntity() entities.InstallmentLeg {
	return entities.InstallmentLeg{
		Number:        l.Number,
		Amount:        l.Amount,
		PaymentMethod: entities.PaymentMethod(l.PaymentMethod),
		DueDate:       l.DueDate,
	}
}

// SetLegsRequest overwrites the mutable legs of a plan.
type SetLegsRequest struct {
	Legs []LegPayload `json:"legs"`
}

func (r SetLegsRequest) ToEntities() []entities.InstallmentLeg {
	legs := make([]entities.InstallmentLeg, 0, len(r.Legs))
	for _, l := range r.Legs {
		legs = append(legs, l.ToEntity())
	}
	return legs
}

// LockLegRequest locks one leg. The lock is irreversible, so the portal must
// send confirm=true after its own confirmation dialog.
type LockLegRequest struct {
	Confirm  bool   `json:"confirm"`
	LockedBy string `json:"locked_by"`
}

// DeleteThirdLegRequest deletes the third leg. Also irreversible, also
// confirmed.
type DeleteThirdLegRequest struct {
	Confirm   bool   `json:"confirm"`
	DeletedBy string `json:"deleted_by"`
}
