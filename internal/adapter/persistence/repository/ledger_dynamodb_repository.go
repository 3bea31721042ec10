package repository

import (
	"context"
	"time"

	"freegym_settlement/internal/domain/entities"
	"freegym_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultKettlebellTableName = "kettlebell_points"
	defaultCashTableName       = "cash_transactions"
)

type kettlebellPointItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Points    int    `dynamodbav:"points"`
	CreatedBy string `dynamodbav:"created_by"`
	CreatedAt string `dynamodbav:"created_at"`
}

type cashTransactionItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Amount    string `dynamodbav:"amount"`
	Method    string `dynamodbav:"method"`
	Notes     string `dynamodbav:"notes,omitempty"`
	CreatedBy string `dynamodbav:"created_by"`
	CreatedAt string `dynamodbav:"created_at"`
}

// LedgerDynamoRepository persists the append-only loyalty points and cash
// register entries in DynamoDB.
//
// Table requirements:
//   - kettlebell_points: PK id (string), GSI user_id-index (PK: user_id)
//   - cash_transactions: PK id (string), GSI user_id-index (PK: user_id)
//
// Both tables are insert-only; the conditional put guards against a retried
// settlement step double-writing the same entry id.

type LedgerDynamoRepository struct {
	ddb             *dynamodb.Client
	kettlebellTable string
	cashTable       string
}

var _ interfaces.ILedgerRepository = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb *dynamodb.Client) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{
		ddb:             ddb,
		kettlebellTable: getenvDefault("KETTLEBELL_POINTS_TABLE", defaultKettlebellTableName),
		cashTable:       getenvDefault("CASH_TRANSACTIONS_TABLE", defaultCashTableName),
	}
}

func (r *LedgerDynamoRepository) AppendKettlebellPoints(ctx context.Context, entry entities.KettlebellPointEntry) (entities.KettlebellPointEntry, error) {
	it := kettlebellPointItem{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Points:    entry.Points,
		CreatedBy: entry.CreatedBy,
		CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.KettlebellPointEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.kettlebellTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.KettlebellPointEntry{}, err
	}
	return entry, nil
}

func (r *LedgerDynamoRepository) AppendCashTransaction(ctx context.Context, entry entities.CashTransactionEntry) (entities.CashTransactionEntry, error) {
	it := cashTransactionItem{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Amount:    floatToString(entry.Amount),
		Method:    string(entry.Method),
		Notes:     entry.Notes,
		CreatedBy: entry.CreatedBy,
		CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CashTransactionEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.cashTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CashTransactionEntry{}, err
	}
	return entry, nil
}
