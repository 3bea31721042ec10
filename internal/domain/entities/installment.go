package entities

import "time"

// PaymentMethod is how an installment leg or register entry was paid.

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodPOS  PaymentMethod = "pos"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCash || m == PaymentMethodPOS
}

// LegLockState makes the one-way nature of an installment lock explicit.
// The zero value is "unlocked"; once Locked is set there is no transition
// back; no unlock operation exists anywhere in the system.
type LegLockState struct {
	Locked   bool      `json:"locked"`
	LockedAt time.Time `json:"locked_at,omitempty"`
	LockedBy string    `json:"locked_by,omitempty"`
}

// Lock returns the locked state, keeping the original lock metadata when the
// leg was already locked (locking twice is a no-op, not an error).
func (s LegLockState) Lock(at time.Time, by string) LegLockState {
	if s.Locked {
		return s
	}
	return LegLockState{Locked: true, LockedAt: at, LockedBy: by}
}

// InstallmentLeg is one of up to three scheduled partial payments of a
// membership request's total price.
type InstallmentLeg struct {
	Number        int           `json:"number"` // 1..3
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	DueDate       string        `json:"due_date,omitempty"` // YYYY-MM-DD
	Lock          LegLockState  `json:"lock"`

	// Third leg only: one-way deletion flag.
	Deleted   bool      `json:"deleted,omitempty"`
	DeletedAt time.Time `json:"deleted_at,omitempty"`
	DeletedBy string    `json:"deleted_by,omitempty"`
}

// InstallmentPlan is the payment plan attached to a membership request.
// A plan has either no legs or exactly three.
//
// Storage model: the leg attributes live on the membership request row
// itself (installment_N_amount / _payment_method / _due_date / _locked plus
// the third_installment_deleted flags), matching the hosted store's schema.
type InstallmentPlan struct {
	RequestID  string           `json:"request_id"`
	TotalPrice float64          `json:"total_price"`
	Legs       [3]InstallmentLeg `json:"legs"`
}

// ActiveAmountSum is the sum of the non-deleted leg amounts. It should equal
// TotalPrice, but the store does not enforce that; callers treat a mismatch
// as a warning.
func (p InstallmentPlan) ActiveAmountSum() float64 {
	sum := 0.0
	for _, leg := range p.Legs {
		if leg.Deleted {
			continue
		}
		sum += leg.Amount
	}
	return sum
}

// Leg returns the leg with the given number (1..3) and whether it exists.
func (p InstallmentPlan) Leg(number int) (InstallmentLeg, bool) {
	if number < 1 || number > 3 {
		return InstallmentLeg{}, false
	}
	return p.Legs[number-1], true
}

// HasOverdue reports whether any locked, non-deleted leg is past its due
// date at the given time. Used by the member portal to block booking.
func (p InstallmentPlan) HasOverdue(now time.Time) bool {
	for _, leg := range p.Legs {
		if !leg.Lock.Locked || leg.Deleted || leg.DueDate == "" {
			continue
		}
		due, err := time.Parse("2006-01-02", leg.DueDate)
		if err != nil {
			continue
		}
		if due.Before(now.Truncate(24 * time.Hour)) {
			return true
		}
	}
	return false
}
