package entities

import "time"

// ApprovalStatus represents the administrator decision recorded for a subject.
//
// Domain notes:
//   - A subject is either a member (program options approval) or a membership
//     request (subscription approval); both share the same status machine.
//   - "none" is never a valid transition target; it only describes a subject
//     with no recorded decision yet.

type ApprovalStatus string

const (
	ApprovalStatusNone     ApprovalStatus = "none"
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Valid reports whether s is a status an administrator may transition to.
func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// First150CashAmount is the fixed cash price applied when the promotional
// "first 150 members" option is selected. POS is forced to zero in that case.
const First150CashAmount = 45.0

// OptionsSnapshot is the closed set of program options an administrator can
// select for a subject. Unknown fields are rejected at the HTTP boundary.
type OptionsSnapshot struct {
	OldMembersUsed   bool    `json:"old_members_used"`
	KettlebellPoints int     `json:"kettlebell_points"`
	CashAmount       float64 `json:"cash_amount"`
	PosAmount        float64 `json:"pos_amount"`
	First150Members  bool    `json:"first_150_members"`

	// Group room details, present only for group/combination programs.
	GroupRoomSize   *int `json:"group_room_size,omitempty"`
	WeeklyFrequency *int `json:"weekly_frequency,omitempty"`
	MonthlyTotal    *int `json:"monthly_total,omitempty"`
}

// Normalize applies the promotional pricing rule: the first-150-members
// option fixes cash at the promo amount and zeroes POS.
func (o OptionsSnapshot) Normalize() OptionsSnapshot {
	if o.First150Members {
		o.CashAmount = First150CashAmount
		o.PosAmount = 0
	}
	return o
}

// IsEmpty reports whether the snapshot carries no selection at all.
func (o OptionsSnapshot) IsEmpty() bool {
	return !o.OldMembersUsed &&
		o.KettlebellPoints == 0 &&
		o.CashAmount == 0 &&
		o.PosAmount == 0 &&
		!o.First150Members &&
		o.GroupRoomSize == nil &&
		o.WeeklyFrequency == nil &&
		o.MonthlyTotal == nil
}

// ApprovalRecord is the audit row written for every status transition.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (subject_id-index): subject_id
type ApprovalRecord struct {
	ID        string          `json:"id"`
	SubjectID string          `json:"subject_id"`
	Status    ApprovalStatus  `json:"status"`
	Options   OptionsSnapshot `json:"options"`
	CreatedBy string          `json:"created_by"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// FrozenSnapshot is the read-only copy of the options in effect when a
// subject entered "pending". While present it takes precedence over any live
// options supplied with a later approve/reject.
//
// Storage model (DynamoDB):
//   - PK: subject_id (one frozen row per subject)
type FrozenSnapshot struct {
	SubjectID string          `json:"subject_id"`
	Options   OptionsSnapshot `json:"options"`
	FrozenAt  time.Time       `json:"frozen_at"`
	FrozenBy  string          `json:"frozen_by"`
}
