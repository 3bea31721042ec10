package repository

import (
	"context"
	"errors"
	"time"

	"freegym_settlement/internal/domain/entities"
	"freegym_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDepositsTableName = "lesson_deposits"

type lessonDepositItem struct {
	UserID       string `dynamodbav:"user_id"`
	TotalLessons int    `dynamodbav:"total_lessons"`
	UsedLessons  int    `dynamodbav:"used_lessons"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// DepositDynamoRepository persists LessonDeposit entities in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string), one deposit row per flexible user
//
// Reads are strongly consistent: the store's booking trigger writes to the
// same row and the provisioning flow re-reads the balance between steps.

type DepositDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDepositRepository = (*DepositDynamoRepository)(nil)

func NewDepositDynamoRepository(ddb *dynamodb.Client) *DepositDynamoRepository {
	return &DepositDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEPOSITS_TABLE", defaultDepositsTableName),
	}
}

func (r *DepositDynamoRepository) Get(ctx context.Context, userID string) (entities.LessonDeposit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LessonDeposit{}, err
	}
	if len(out.Item) == 0 {
		return entities.LessonDeposit{}, nil
	}

	var it lessonDepositItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LessonDeposit{}, err
	}
	return fromLessonDepositItem(it), nil
}

func (r *DepositDynamoRepository) UpdateBaseline(ctx context.Context, userID string, totalLessons, usedLessons int) (entities.LessonDeposit, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConditionExpression: aws.String("attribute_exists(#user_id)"),
		UpdateExpression:    aws.String("SET #total_lessons = :total, #used_lessons = :used, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":total":      &types.AttributeValueMemberN{Value: intToString(totalLessons)},
			":used":       &types.AttributeValueMemberN{Value: intToString(usedLessons)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#user_id":       "user_id",
			"#total_lessons": "total_lessons",
			"#used_lessons":  "used_lessons",
			"#updated_at":    "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.LessonDeposit{}, nil
		}
		return entities.LessonDeposit{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.LessonDeposit{}, nil
	}
	var it lessonDepositItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.LessonDeposit{}, err
	}
	return fromLessonDepositItem(it), nil
}

func fromLessonDepositItem(it lessonDepositItem) entities.LessonDeposit {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.LessonDeposit{
		UserID:       it.UserID,
		TotalLessons: it.TotalLessons,
		UsedLessons:  it.UsedLessons,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
