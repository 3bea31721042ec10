package request

import (
	"bytes"
	"encoding/json"

	"freegym_settlement/internal/domain/entities"
)

// OptionsPayload is the closed set of program options accepted over HTTP.
// Decoding is strict: a payload carrying any field outside this set is
// rejected at the boundary instead of being silently dropped.
type OptionsPayload struct {
	OldMembersUsed   bool    `json:"old_members_used"`
	KettlebellPoints int     `json:"kettlebell_points"`
	CashAmount       float64 `json:"cash_amount"`
	PosAmount        float64 `json:"pos_amount"`
	First150Members  bool    `json:"first_150_members"`
	GroupRoomSize    *int    `json:"group_room_size,omitempty"`
	WeeklyFrequency  *int    `json:"weekly_frequency,omitempty"`
	MonthlyTotal     *int    `json:"monthly_total,omitempty"`
}

func (o OptionsPayload) ToEntity() entities.OptionsSnapshot {
	return entities.OptionsSnapshot{
		OldMembersUsed:   o.OldMembersUsed,
		KettlebellPoints: o.KettlebellPoints,
		CashAmount:       o.CashAmount,
		PosAmount:        o.PosAmount,
		First150Members:  o.First150Members,
		GroupRoomSize:    o.GroupRoomSize,
		WeeklyFrequency:  o.WeeklyFrequency,
		MonthlyTotal:     o.MonthlyTotal,
	}
}

// TransitionRequest is the payload for a single approval transition.
type TransitionRequest struct {
	SubjectID string         `json:"subject_id"`
	Status    string         `json:"status"`
	Options   OptionsPayload `json:"options"`
	CreatedBy string         `json:"created_by"`
	Notes     string         `json:"notes,omitempty"`
}

// BatchTransitionRequest applies one decision to several subjects.
type BatchTransitionRequest struct {
	SubjectIDs []string       `json:"subject_ids"`
	Status     string         `json:"status"`
	Options    OptionsPayload `json:"options"`
	CreatedBy  string         `json:"created_by"`
	Notes      string         `json:"notes,omitempty"`
}

// DecodeStrict unmarshals raw JSON rejecting unknown fields anywhere in the
// payload, including inside the options object.
func DecodeStrict(raw []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}
