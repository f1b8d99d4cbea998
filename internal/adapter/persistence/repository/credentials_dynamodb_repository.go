package repository

import (
	"context"
	"fmt"

	"killbill_bluepay/internal/domain/entities"
	"killbill_bluepay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultCredentialsTableName = "bluepay_credentials"

type credentialsItem struct {
	TenantID  string `dynamodbav:"tenant_id"`
	AccountID string `dynamodbav:"account_id"`
	SecretKey string `dynamodbav:"secret_key"`
	Test      bool   `dynamodbav:"test"`
}

// CredentialsDynamoRepository reads per-tenant BluePay credentials from DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)

type CredentialsDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICredentialsRepository = (*CredentialsDynamoRepository)(nil)

func NewCredentialsDynamoRepository(ddb DynamoDBAPI) *CredentialsDynamoRepository {
	return &CredentialsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BLUEPAY_CREDENTIALS_TABLE", defaultCredentialsTableName),
	}
}

func (r *CredentialsDynamoRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) (entities.TenantCredentials, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID.String()},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TenantCredentials{}, fmt.Errorf("dynamodb: get credentials: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.TenantCredentials{}, interfaces.ErrRecordNotFound
	}

	var it credentialsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TenantCredentials{}, fmt.Errorf("dynamodb: decode credentials: %w", err)
	}
	return fromCredentialsItem(tenantID, it), nil
}

func fromCredentialsItem(tenantID uuid.UUID, it credentialsItem) entities.TenantCredentials {
	return entities.TenantCredentials{
		TenantID:  tenantID,
		AccountID: it.AccountID,
		SecretKey: it.SecretKey,
		Test:      it.Test,
	}
}
