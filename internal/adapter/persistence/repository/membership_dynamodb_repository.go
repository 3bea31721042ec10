package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"freegym_settlement/internal/domain/entities"
	"freegym_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequestsTableName    = "membership_requests"
	defaultMembershipsTableName = "memberships"
	defaultOldMembersTableName  = "old_members_usage"
)

// membershipRequestItem mirrors the hosted store's schema: the installment
// legs live as flattened attributes on the request row itself.
type membershipRequestItem struct {
	ID              string `dynamodbav:"id"`
	UserID          string `dynamodbav:"user_id"`
	PackageName     string `dynamodbav:"package_name"`
	TotalPrice      string `dynamodbav:"total_price"`
	Status          string `dynamodbav:"status"`
	DualProduct     bool   `dynamodbav:"dual_product"`
	Flexible        bool   `dynamodbav:"flexible"`
	SessionCount    int    `dynamodbav:"session_count,omitempty"`
	HasInstallments bool   `dynamodbav:"has_installments"`

	Installment1Amount        string `dynamodbav:"installment_1_amount,omitempty"`
	Installment1PaymentMethod string `dynamodbav:"installment_1_payment_method,omitempty"`
	Installment1DueDate       string `dynamodbav:"installment_1_due_date,omitempty"`
	Installment1Locked        bool   `dynamodbav:"installment_1_locked,omitempty"`
	Installment1LockedAt      string `dynamodbav:"installment_1_locked_at,omitempty"`
	Installment1LockedBy      string `dynamodbav:"installment_1_locked_by,omitempty"`

	Installment2Amount        string `dynamodbav:"installment_2_amount,omitempty"`
	Installment2PaymentMethod string `dynamodbav:"installment_2_payment_method,omitempty"`
	Installment2DueDate       string `dynamodbav:"installment_2_due_date,omitempty"`
	Installment2Locked        bool   `dynamodbav:"installment_2_locked,omitempty"`
	Installment2LockedAt      string `dynamodbav:"installment_2_locked_at,omitempty"`
	Installment2LockedBy      string `dynamodbav:"installment_2_locked_by,omitempty"`

	Installment3Amount        string `dynamodbav:"installment_3_amount,omitempty"`
	Installment3PaymentMethod string `dynamodbav:"installment_3_payment_method,omitempty"`
	Installment3DueDate       string `dynamodbav:"installment_3_due_date,omitempty"`
	Installment3Locked        bool   `dynamodbav:"installment_3_locked,omitempty"`
	Installment3LockedAt      string `dynamodbav:"installment_3_locked_at,omitempty"`
	Installment3LockedBy      string `dynamodbav:"installment_3_locked_by,omitempty"`

	ThirdInstallmentDeleted   bool   `dynamodbav:"third_installment_deleted,omitempty"`
	ThirdInstallmentDeletedAt string `dynamodbav:"third_installment_deleted_at,omitempty"`
	ThirdInstallmentDeletedBy string `dynamodbav:"third_installment_deleted_by,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type membershipItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	RequestID string `dynamodbav:"request_id"`
	Product   string `dynamodbav:"product"`
	StartDate string `dynamodbav:"start_date"`
	EndDate   string `dynamodbav:"end_date"`
	CreatedAt string `dynamodbav:"created_at"`
}

type oldMembersUsageItem struct {
	UserID   string `dynamodbav:"user_id"`
	Used     bool   `dynamodbav:"used"`
	MarkedBy string `dynamodbav:"marked_by"`
	MarkedAt string `dynamodbav:"marked_at"`
}

// MembershipDynamoRepository persists membership requests, activated
// memberships and the one-time old-members usage flag in DynamoDB.
//
// Table requirements:
//   - membership_requests: PK id (string), GSI user_id-index (PK: user_id)
//   - memberships:         PK id (string)
//   - old_members_usage:   PK user_id (string)

type MembershipDynamoRepository struct {
	ddb              *dynamodb.Client
	requestsTable    string
	membershipsTable string
	oldMembersTable  string
}

var _ interfaces.IMembershipRepository = (*MembershipDynamoRepository)(nil)

func NewMembershipDynamoRepository(ddb *dynamodb.Client) *MembershipDynamoRepository {
	return &MembershipDynamoRepository{
		ddb:              ddb,
		requestsTable:    getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
		membershipsTable: getenvDefault("MEMBERSHIPS_TABLE", defaultMembershipsTableName),
		oldMembersTable:  getenvDefault("OLD_MEMBERS_TABLE", defaultOldMembersTableName),
	}
}

func (r *MembershipDynamoRepository) GetRequestByID(ctx context.Context, id string) (entities.MembershipRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.requestsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MembershipRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.MembershipRequest{}, nil
	}

	var it membershipRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MembershipRequest{}, err
	}
	return fromMembershipRequestItem(it), nil
}

func (r *MembershipDynamoRepository) UpdateRequestStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.MembershipRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.requestsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.MembershipRequest{}, nil
		}
		return entities.MembershipRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.MembershipRequest{}, nil
	}
	var it membershipRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.MembershipRequest{}, err
	}
	return fromMembershipRequestItem(it), nil
}

func (r *MembershipDynamoRepository) ActivateMembership(ctx context.Context, m entities.Membership) (entities.Membership, error) {
	it := membershipItem{
		ID:        m.ID,
		UserID:    m.UserID,
		RequestID: m.RequestID,
		Product:   m.Product,
		StartDate: m.StartDate.UTC().Format(time.RFC3339Nano),
		EndDate:   m.EndDate.UTC().Format(time.RFC3339Nano),
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Membership{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.membershipsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Membership{}, err
	}
	return m, nil
}

// MarkOldMembersUsed records the one-time usage of the old-members option.
// Marking twice overwrites the same row and keeps the flag set, so a repeated
// settlement run stays harmless.
func (r *MembershipDynamoRepository) MarkOldMembersUsed(ctx context.Context, userID, markedBy string) error {
	it := oldMembersUsageItem{
		UserID:   userID,
		Used:     true,
		MarkedBy: markedBy,
		MarkedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.oldMembersTable),
		Item:      av,
	})
	return err
}

func fromMembershipRequestItem(it membershipRequestItem) entities.MembershipRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.TotalPrice, 64)
	return entities.MembershipRequest{
		ID:              it.ID,
		UserID:          it.UserID,
		PackageName:     it.PackageName,
		TotalPrice:      price,
		Status:          entities.RequestStatus(it.Status),
		DualProduct:     it.DualProduct,
		Flexible:        it.Flexible,
		SessionCount:    it.SessionCount,
		HasInstallments: it.HasInstallments,
		Installments:    planFromRequestItem(it),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// planFromRequestItem assembles the InstallmentPlan from the flattened leg
// attributes. Shared with the installment repository, which queries the same
// table.
func planFromRequestItem(it membershipRequestItem) entities.InstallmentPlan {
	price, _ := strconv.ParseFloat(it.TotalPrice, 64)
	plan := entities.InstallmentPlan{RequestID: it.ID, TotalPrice: price}
	plan.Legs[0] = legFromAttributes(1, it.Installment1Amount, it.Installment1PaymentMethod, it.Installment1DueDate,
		it.Installment1Locked, it.Installment1LockedAt, it.Installment1LockedBy)
	plan.Legs[1] = legFromAttributes(2, it.Installment2Amount, it.Installment2PaymentMethod, it.Installment2DueDate,
		it.Installment2Locked, it.Installment2LockedAt, it.Installment2LockedBy)
	plan.Legs[2] = legFromAttributes(3, it.Installment3Amount, it.Installment3PaymentMethod, it.Installment3DueDate,
		it.Installment3Locked, it.Installment3LockedAt, it.Installment3LockedBy)

	plan.Legs[2].Deleted = it.ThirdInstallmentDeleted
	if it.ThirdInstallmentDeletedAt != "" {
		plan.Legs[2].DeletedAt, _ = time.Parse(time.RFC3339Nano, it.ThirdInstallmentDeletedAt)
	}
	plan.Legs[2].DeletedBy = it.ThirdInstallmentDeletedBy
	return plan
}

func legFromAttributes(number int, amount, method, dueDate string, locked bool, lockedAt, lockedBy string) entities.InstallmentLeg {
	leg := entities.InstallmentLeg{
		Number:        number,
		PaymentMethod: entities.PaymentMethod(method),
		DueDate:       dueDate,
	}
	leg.Amount, _ = strconv.ParseFloat(amount, 64)
	if locked {
		at, _ := time.Parse(time.RFC3339Nano, lockedAt)
		leg.Lock = entities.LegLockState{Locked: true, LockedAt: at, LockedBy: lockedBy}
	}
	return leg
}
