package entities

import "fmt"

// Settlement cascade step names, in execution order. Failure messages carry
// these so an administrator can retry exactly the step that failed.
const (
	StepRequestLookup      = "request_lookup"
	StepRequestStatus      = "request_status"
	StepActivateMembership = "activate_membership"
	StepProvisionDeposit   = "provision_deposit"
	StepOldMembers         = "old_members"
	StepKettlebellPoints   = "kettlebell_points"
	StepCashTransaction    = "cash_transaction"
	StepPosTransaction     = "pos_transaction"
)

// StepResult is the outcome of a single settlement step.
type StepResult struct {
	Step      string `json:"step"`
	SubjectID string `json:"subject_id"`
	Err       string `json:"error,omitempty"`
}

// CascadeReport collects the per-step outcomes of one settlement run. Steps
// are best-effort: a failed step never prevents later steps from running and
// earlier successful steps are never rolled back. Callers must inspect the
// report instead of relying on logs.
type CascadeReport struct {
	SubjectID string       `json:"subject_id"`
	Succeeded []StepResult `json:"succeeded"`
	Failed    []StepResult `json:"failed"`
}

func (r *CascadeReport) RecordSuccess(step string) {
	r.Succeeded = append(r.Succeeded, StepResult{Step: step, SubjectID: r.SubjectID})
}

func (r *CascadeReport) RecordFailure(step string, err error) {
	r.Failed = append(r.Failed, StepResult{Step: step, SubjectID: r.SubjectID, Err: err.Error()})
}

// Warnings renders the failed steps as user-facing messages, each naming the
// subject and the step.
func (r *CascadeReport) Warnings() []string {
	if len(r.Failed) == 0 {
		return nil
	}
	warnings := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		warnings = append(warnings, fmt.Sprintf("subject %s: step %s failed: %s", f.SubjectID, f.Step, f.Err))
	}
	return warnings
}

// AllFailed reports whether the cascade produced no successful step at all.
func (r *CascadeReport) AllFailed() bool {
	return len(r.Succeeded) == 0 && len(r.Failed) > 0
}
