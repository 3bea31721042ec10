package request

// ProvisionDepositRequest prepares a flexible user's lesson deposit and
// creates one booking per session.
type ProvisionDepositRequest struct {
	SessionCount    int    `json:"session_count"`
	ReplaceExisting bool   `json:"replace_existing"`
	CreatedBy       string `json:"created_by"`
}
