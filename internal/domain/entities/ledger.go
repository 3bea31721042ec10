package entities

import "time"

// KettlebellPointEntry is an append-only loyalty points row. Entries are
// never updated or deleted once written.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type KettlebellPointEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Points    int       `json:"points"`
	ProgramID string    `json:"program_id,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// CashTransactionEntry is an append-only cash register row covering both
// cash and POS amounts.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type CashTransactionEntry struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Amount    float64       `json:"amount"`
	Method    PaymentMethod `json:"method"`
	ProgramID string        `json:"program_id,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	CreatedBy string        `json:"created_by"`
	CreatedAt time.Time     `json:"created_at"`
}
