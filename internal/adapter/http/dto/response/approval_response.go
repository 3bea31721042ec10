package response

import (
	"time"

	"freegym_settlement/internal/domain/entities"
	"freegym_settlement/internal/usecase"
)

type ApprovalRecordResponse struct {
	ID        string                   `json:"id"`
	SubjectID string                   `json:"subject_id"`
	Status    string                   `json:"status"`
	Options   entities.OptionsSnapshot `json:"options"`
	CreatedBy string                   `json:"created_by"`
	Notes     string                   `json:"notes,omitempty"`
	CreatedAt time.Time                `json:"created_at"`
}

func FromApprovalRecord(rec entities.ApprovalRecord) ApprovalRecordResponse {
	return ApprovalRecordResponse{
		ID:        rec.ID,
		SubjectID: rec.SubjectID,
		Status:    string(rec.Status),
		Options:   rec.Options,
		CreatedBy: rec.CreatedBy,
		Notes:     rec.Notes,
		CreatedAt: rec.CreatedAt,
	}
}

// TransitionResponse carries the committed record plus any settlement steps
// that failed after it. Warnings with a 200 means "decision stands, some side
// effects need a retry".
type TransitionResponse struct {
	Record   ApprovalRecordResponse `json:"record"`
	Warnings []string               `json:"warnings,omitempty"`
}

func FromTransitionResult(res usecase.TransitionResult) TransitionResponse {
	return TransitionResponse{
		Record:   FromApprovalRecord(res.Record),
		Warnings: res.Warnings,
	}
}

type BatchItemResponse struct {
	SubjectID string              `json:"subject_id"`
	Result    *TransitionResponse `json:"result,omitempty"`
	Error     string              `json:"error,omitempty"`
}

type BatchTransitionResponse struct {
	Results []BatchItemResponse `json:"results"`
}

func FromBatchResults(items []usecase.BatchItemResult) BatchTransitionResponse {
	out := BatchTransitionResponse{Results: make([]BatchItemResponse, 0, len(items))}
	for _, item := range items {
		resp := BatchItemResponse{SubjectID: item.SubjectID}
		if item.Err != nil {
			resp.Error = item.Err.Error()
		} else {
			r := FromTransitionResult(item.Result)
			resp.Result = &r
		}
		out.Results = append(out.Results, resp)
	}
	return out
}

type ApprovalHistoryResponse struct {
	SubjectID string                   `json:"subject_id"`
	Records   []ApprovalRecordResponse `json:"records"`
}

func FromApprovalRecords(subjectID string, records []entities.ApprovalRecord) ApprovalHistoryResponse {
	out := ApprovalHistoryResponse{SubjectID: subjectID, Records: make([]ApprovalRecordResponse, 0, len(records))}
	for _, rec := range records {
		out.Records = append(out.Records, FromApprovalRecord(rec))
	}
	return out
}
