package entities

import "time"

// RequestStatus is the lifecycle of a membership request row.

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// MembershipRequest is a member's subscription request. Requests with a
// payment plan carry exactly three installment legs on the same row.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type MembershipRequest struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	PackageName string        `json:"package_name"`
	TotalPrice  float64       `json:"total_price"`
	Status      RequestStatus `json:"status"`

	// DualProduct packages activate two membership rows on approval
	// (e.g. the Ultimate package covers both the gym floor and Pilates).
	DualProduct bool `json:"dual_product"`

	// Flexible marks a pay-as-you-go (Paspartu) user whose lessons are
	// backed by a LessonDeposit instead of a fixed weekly schedule.
	Flexible     bool `json:"flexible"`
	SessionCount int  `json:"session_count,omitempty"`

	HasInstallments bool            `json:"has_installments"`
	Installments    InstallmentPlan `json:"installments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Membership is one activated membership row; dual-product packages produce
// two of these per approved request.
type Membership struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RequestID string    `json:"request_id"`
	Product   string    `json:"product"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}
