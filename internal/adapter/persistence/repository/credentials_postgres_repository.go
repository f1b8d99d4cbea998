package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"killbill_bluepay/internal/domain/entities"
	"killbill_bluepay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// CredentialsPostgresRepository reads per-tenant BluePay credentials from bluepay_credentials.
type CredentialsPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.ICredentialsRepository = (*CredentialsPostgresRepository)(nil)

func NewCredentialsPostgresRepository(db *sql.DB) *CredentialsPostgresRepository {
	return &CredentialsPostgresRepository{db: db}
}

func (r *CredentialsPostgresRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) (entities.TenantCredentials, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return entities.TenantCredentials{}, fmt.Errorf("db: acquire connection: %w", err)
	}
	defer conn.Close()

	const query = `SELECT account_id, secret_key, test FROM bluepay_credentials WHERE tenant_id = $1`

	creds := entities.TenantCredentials{TenantID: tenantID}
	var accountID, secretKey sql.NullString
	err = conn.QueryRowContext(ctx, query, tenantID.String()).Scan(&accountID, &secretKey, &creds.Test)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.TenantCredentials{}, interfaces.ErrRecordNotFound
	}
	if err != nil {
		return entities.TenantCredentials{}, fmt.Errorf("db: select credentials: %w", err)
	}
	creds.AccountID = accountID.String
	creds.SecretKey = secretKey.String
	return creds, nil
}
