package interfaces

import (
	"context"
	"freegym_settlement/internal/domain/entities"
)

// IMembershipRepository abstracts persistence for membership requests and
// the membership rows activated on approval.
//
// The engine must be able to:
//   - load a request (including its installment leg attributes)
//   - flip the request status when an administrator decides
//   - activate one or two membership rows for an approved request
//   - record one-time usage of the "old members" loyalty option

type IMembershipRepository interface {
	GetRequestByID(ctx context.Context, id string) (entities.MembershipRequest, error)
	UpdateRequestStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.MembershipRequest, error)
	ActivateMembership(ctx context.Context, m entities.Membership) (entities.Membership, error)
	MarkOldMembersUsed(ctx context.Context, userID, markedBy string) error
}
