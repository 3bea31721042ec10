package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"freegym_settlement/internal/domain/entities"
	"freegym_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// InstallmentDynamoRepository reads and writes the installment leg attributes
// that live on the membership request row (see membershipRequestItem). It
// never touches the lock or deletion flags; those belong to the store's named
// procedures.

type InstallmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInstallmentRepository = (*InstallmentDynamoRepository)(nil)

func NewInstallmentDynamoRepository(ddb *dynamodb.Client) *InstallmentDynamoRepository {
	return &InstallmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *InstallmentDynamoRepository) GetPlan(ctx context.Context, requestID string) (entities.InstallmentPlan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: requestID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InstallmentPlan{}, err
	}
	if len(out.Item) == 0 {
		return entities.InstallmentPlan{}, nil
	}

	var it membershipRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InstallmentPlan{}, err
	}
	return planFromRequestItem(it), nil
}

func (r *InstallmentDynamoRepository) SaveLegs(ctx context.Context, requestID string, legs []entities.InstallmentLeg) (entities.InstallmentPlan, error) {
	exprParts := make([]string, 0, len(legs)*3+1)
	values := map[string]types.AttributeValue{}
	names := map[string]string{"#id": "id"}

	for _, leg := range legs {
		amountAttr := fmt.Sprintf("installment_%d_amount", leg.Number)
		methodAttr := fmt.Sprintf("installment_%d_payment_method", leg.Number)
		dueAttr := fmt.Sprintf("installment_%d_due_date", leg.Number)

		exprParts = append(exprParts,
			fmt.Sprintf("#%s = :%s", amountAttr, amountAttr),
			fmt.Sprintf("#%s = :%s", methodAttr, methodAttr),
			fmt.Sprintf("#%s = :%s", dueAttr, dueAttr),
		)
		names["#"+amountAttr] = amountAttr
		names["#"+methodAttr] = methodAttr
		names["#"+dueAttr] = dueAttr
		values[":"+amountAttr] = &types.AttributeValueMemberS{Value: floatToString(leg.Amount)}
		values[":"+methodAttr] = &types.AttributeValueMemberS{Value: string(leg.PaymentMethod)}
		values[":"+dueAttr] = &types.AttributeValueMemberS{Value: leg.DueDate}
	}

	exprParts = append(exprParts, "#updated_at = :updated_at")
	names["#updated_at"] = "updated_at"
	values[":updated_at"] = &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: requestID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(exprParts, ", ")),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.InstallmentPlan{}, nil
		}
		return entities.InstallmentPlan{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.InstallmentPlan{}, nil
	}
	var it membershipRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.InstallmentPlan{}, err
	}
	return planFromRequestItem(it), nil
}
