package response

import (
	"time"

	"freegym_settlement/internal/domain/entities"
	"freegym_settlement/internal/usecase"
)

type LegResponse struct {
	Number        int     `json:"number"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	DueDate       string  `json:"due_date,omitempty"`
	Locked        bool    `json:"locked"`
	LockedBy      string  `json:"locked_by,omitempty"`
	Deleted       bool    `json:"deleted,omitempty"`
}

type PlanResponse struct {
	RequestID  string        `json:"request_id"`
	TotalPrice float64       `json:"total_price"`
	ActiveSum  float64       `json:"active_sum"`
	Overdue    bool          `json:"overdue"`
	Legs       []LegResponse `json:"legs"`
}

func FromPlan(plan entities.InstallmentPlan) PlanResponse {
	out := PlanResponse{
		RequestID:  plan.RequestID,
		TotalPrice: plan.TotalPrice,
		ActiveSum:  plan.ActiveAmountSum(),
		Overdue:    plan.HasOverdue(time.Now().UTC()),
		Legs:       make([]LegResponse, 0, len(plan.Legs)),
	}
	for _, leg := range plan.Legs {
		out.Legs = append(out.Legs, LegResponse{
			Number:        leg.Number,
			Amount:        leg.Amount,
			PaymentMethod: string(leg.PaymentMethod),
			DueDate:       leg.DueDate,
			Locked:        leg.Lock.Locked,
			LockedBy:      leg.Lock.LockedBy,
			Deleted:       leg.Deleted,
		})
	}
	return out
}

type SetLegsResponse struct {
	Plan        PlanResponse `json:"plan"`
	SkippedLegs []int        `json:"skipped_legs,omitempty"`
	Warnings    []string     `json:"warnings,omitempty"`
}

func FromSetLegsResult(res usecase.SetLegsResult) SetLegsResponse {
	return SetLegsResponse{
		Plan:        FromPlan(res.Plan),
		SkippedLegs: res.SkippedLegs,
		Warnings:    res.Warnings,
	}
}
