package repository

import (
	"context"
	"fmt"
	"time"

	"killbill_bluepay/internal/domain/entities"
	"killbill_bluepay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultPaymentMethodsTableName = "bluepay_payment_methods"

type paymentMethodTokenItem struct {
	PaymentMethodID string `dynamodbav:"payment_method_id"`
	TransactionID   string `dynamodbav:"transaction_id"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// TokenDynamoRepository persists gateway tokens per payment method in DynamoDB.
//
// Table requirements:
//   - PK: payment_method_id (string)

type TokenDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ITokenRepository = (*TokenDynamoRepository)(nil)

func NewTokenDynamoRepository(ddb DynamoDBAPI) *TokenDynamoRepository {
	return &TokenDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BLUEPAY_PAYMENT_METHODS_TABLE", defaultPaymentMethodsTableName),
	}
}

func (r *TokenDynamoRepository) GetByPaymentMethodID(ctx context.Context, paymentMethodID uuid.UUID) (entities.PaymentMethodToken, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_method_id": &types.AttributeValueMemberS{Value: paymentMethodID.String()},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentMethodToken{}, fmt.Errorf("dynamodb: get payment method: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.PaymentMethodToken{}, interfaces.ErrRecordNotFound
	}

	var it paymentMethodTokenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentMethodToken{}, fmt.Errorf("dynamodb: decode payment method: %w", err)
	}
	return fromPaymentMethodTokenItem(it)
}

// Upsert replaces any previous item for the payment method. PutItem is atomic per item.
func (r *TokenDynamoRepository) Upsert(ctx context.Context, token entities.PaymentMethodToken) error {
	av, err := attributevalue.MarshalMap(toPaymentMethodTokenItem(token))
	if err != nil {
		return fmt.Errorf("dynamodb: encode payment method: %w", err)
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("dynamodb: put payment method: %w", err)
	}
	return nil
}

func toPaymentMethodTokenItem(t entities.PaymentMethodToken) paymentMethodTokenItem {
	return paymentMethodTokenItem{
		PaymentMethodID: t.PaymentMethodID.String(),
		TransactionID:   t.TransactionID,
		UpdatedAt:       t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentMethodTokenItem(it paymentMethodTokenItem) (entities.PaymentMethodToken, error) {
	id, err := uuid.Parse(it.PaymentMethodID)
	if err != nil {
		return entities.PaymentMethodToken{}, fmt.Errorf("dynamodb: decode payment method id: %w", err)
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PaymentMethodToken{
		PaymentMethodID: id,
		TransactionID:   it.TransactionID,
		UpdatedAt:       updatedAt,
	}, nil
}
