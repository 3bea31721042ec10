package interfaces

import "context"

// IStoreProcedures abstracts the hosted store's named remote procedures.
// All of them are fallible and retryable; ResetLessonDeposit is NOT
// idempotent (calling it twice double-credits the deposit) and must be
// invoked at most once per provisioning flow.
type IStoreProcedures interface {
	// LockInstallment flips the one-way lock flag for a leg. Irreversible.
	LockInstallment(ctx context.Context, requestID string, number int, lockedBy string) error
	// DeleteThirdInstallment flips the one-way deletion flag for leg 3.
	DeleteThirdInstallment(ctx context.Context, requestID string, deletedBy string) error
	// ReplaceFlexibleSchedule swaps a user's flexible schedule, removing
	// obsolete bookings. The store's trigger may decrement used_lessons as
	// a side effect.
	ReplaceFlexibleSchedule(ctx context.Context, userID, newScheduleID string) error
	// ResetLessonDeposit credits a fresh lesson pool. Not idempotent.
	ResetLessonDeposit(ctx context.Context, userID string, totalLessons int, createdBy string) error
	// CreateBookings bulk-creates one booking per session; the store's
	// trigger increments used_lessons once per created booking.
	CreateBookings(ctx context.Context, userID, scheduleID string, sessionCount int) (created int, err error)
}
