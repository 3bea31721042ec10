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

const defaultFrozenSnapshotsTableName = "frozen_options"

type frozenSnapshotItem struct {
	SubjectID string      `dynamodbav:"subject_id"`
	Options   optionsItem `dynamodbav:"options"`
	FrozenAt  string      `dynamodbav:"frozen_at"`
	FrozenBy  string      `dynamodbav:"frozen_by"`
}

// FrozenSnapshotDynamoRepository persists FrozenSnapshot entities in DynamoDB.
//
// Table requirements:
//   - PK: subject_id (string)
//
// Subject id is the PK on purpose: a subject has at most one frozen row, and
// freezing again while pending simply overwrites it.

type FrozenSnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFrozenSnapshotRepository = (*FrozenSnapshotDynamoRepository)(nil)

func NewFrozenSnapshotDynamoRepository(ddb *dynamodb.Client) *FrozenSnapshotDynamoRepository {
	return &FrozenSnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FROZEN_SNAPSHOTS_TABLE", defaultFrozenSnapshotsTableName),
	}
}

func (r *FrozenSnapshotDynamoRepository) Save(ctx context.Context, snap entities.FrozenSnapshot) error {
	it := frozenSnapshotItem{
		SubjectID: snap.SubjectID,
		Options:   toOptionsItem(snap.Options),
		FrozenAt:  snap.FrozenAt.UTC().Format(time.RFC3339Nano),
		FrozenBy:  snap.FrozenBy,
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *FrozenSnapshotDynamoRepository) Get(ctx context.Context, subjectID string) (entities.FrozenSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"subject_id": &types.AttributeValueMemberS{Value: subjectID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FrozenSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.FrozenSnapshot{}, nil
	}

	var it frozenSnapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FrozenSnapshot{}, err
	}
	frozenAt, _ := time.Parse(time.RFC3339Nano, it.FrozenAt)
	return entities.FrozenSnapshot{
		SubjectID: it.SubjectID,
		Options:   fromOptionsItem(it.Options),
		FrozenAt:  frozenAt,
		FrozenBy:  it.FrozenBy,
	}, nil
}

func (r *FrozenSnapshotDynamoRepository) Delete(ctx context.Context, subjectID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"subject_id": &types.AttributeValueMemberS{Value: subjectID},
		},
	})
	return err
}
