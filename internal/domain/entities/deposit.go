package entities

import "time"

// DefaultDepositLessons is the lesson pool granted to a flexible (Paspartu)
// user on a fresh or exhausted deposit.
const DefaultDepositLessons = 5

// LessonDeposit is the prepaid lesson pool of a flexible-membership user.
// Bookings decrement the pool through the hosted store's own trigger, so the
// engine never derives `used` from values it wrote earlier in the same flow;
// it always re-reads before deciding deltas.
//
// Storage model (DynamoDB):
//   - PK: user_id (one deposit row per user)
type LessonDeposit struct {
	UserID       string    `json:"user_id"`
	TotalLessons int       `json:"total_lessons"`
	UsedLessons  int       `json:"used_lessons"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Remaining is the derived balance; never persisted.
func (d LessonDeposit) Remaining() int {
	r := d.TotalLessons - d.UsedLessons
	if r < 0 {
		return 0
	}
	return r
}

// Exists reports whether the deposit row is present in the store.
func (d LessonDeposit) Exists() bool {
	return d.UserID != ""
}
