package repository

import (
	"context"
	"time"

	"freegym_settlement/internal/domain/entities"
	"freegym_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultApprovalsTableName = "approval_records"
	approvalsSubjectIDIndex   = "subject_id-index"
)

type approvalItem struct {
	ID        string      `dynamodbav:"id"`
	SubjectID string      `dynamodbav:"subject_id"`
	Status    string      `dynamodbav:"status"`
	Options   optionsItem `dynamodbav:"options"`
	CreatedBy string      `dynamodbav:"created_by"`
	Notes     string      `dynamodbav:"notes,omitempty"`
	CreatedAt string      `dynamodbav:"created_at"`
	UpdatedAt string      `dynamodbav:"updated_at"`
}

type optionsItem struct {
	OldMembersUsed   bool    `dynamodbav:"old_members_used"`
	KettlebellPoints int     `dynamodbav:"kettlebell_points"`
	CashAmount       float64 `dynamodbav:"cash_amount"`
	PosAmount        float64 `dynamodbav:"pos_amount"`
	First150Members  bool    `dynamodbav:"first_150_members"`
	GroupRoomSize    *int    `dynamodbav:"group_room_size,omitempty"`
	WeeklyFrequency  *int    `dynamodbav:"weekly_frequency,omitempty"`
	MonthlyTotal     *int    `dynamodbav:"monthly_total,omitempty"`
}

// ApprovalDynamoRepository persists ApprovalRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: subject_id-index (PK: subject_id)

type ApprovalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IApprovalRepository = (*ApprovalDynamoRepository)(nil)

func NewApprovalDynamoRepository(ddb *dynamodb.Client) *ApprovalDynamoRepository {
	return &ApprovalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPROVALS_TABLE", defaultApprovalsTableName),
	}
}

func (r *ApprovalDynamoRepository) CreateRecord(ctx context.Context, rec entities.ApprovalRecord) (entities.ApprovalRecord, error) {
	it := toApprovalItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ApprovalRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ApprovalRecord{}, err
	}
	return rec, nil
}

func (r *ApprovalDynamoRepository) ListBySubjectID(ctx context.Context, subjectID string) ([]entities.ApprovalRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(approvalsSubjectIDIndex),
		KeyConditionExpression: aws.String("subject_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: subjectID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.ApprovalRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it approvalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromApprovalItem(it))
	}
	return records, nil
}

func toApprovalItem(rec entities.ApprovalRecord) approvalItem {
	return approvalItem{
		ID:        rec.ID,
		SubjectID: rec.SubjectID,
		Status:    string(rec.Status),
		Options:   toOptionsItem(rec.Options),
		CreatedBy: rec.CreatedBy,
		Notes:     rec.Notes,
		CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromApprovalItem(it approvalItem) entities.ApprovalRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ApprovalRecord{
		ID:        it.ID,
		SubjectID: it.SubjectID,
		Status:    entities.ApprovalStatus(it.Status),
		Options:   fromOptionsItem(it.Options),
		CreatedBy: it.CreatedBy,
		Notes:     it.Notes,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func toOptionsItem(o entities.OptionsSnapshot) optionsItem {
	return optionsItem{
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

func fromOptionsItem(it optionsItem) entities.OptionsSnapshot {
	return entities.OptionsSnapshot{
		OldMembersUsed:   it.OldMembersUsed,
		KettlebellPoints: it.KettlebellPoints,
		CashAmount:       it.CashAmount,
		PosAmount:        it.PosAmount,
		First150Members:  it.First150Members,
		GroupRoomSize:    it.GroupRoomSize,
		WeeklyFrequency:  it.WeeklyFrequency,
		MonthlyTotal:     it.MonthlyTotal,
	}
}
