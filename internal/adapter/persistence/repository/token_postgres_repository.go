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

// TokenPostgresRepository persists gateway tokens in bluepay_payment_methods.
type TokenPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.ITokenRepository = (*TokenPostgresRepository)(nil)

func NewTokenPostgresRepository(db *sql.DB) *TokenPostgresRepository {
	return &TokenPostgresRepository{db: db}
}

func (r *TokenPostgresRepository) GetByPaymentMethodID(ctx context.Context, paymentMethodID uuid.UUID) (entities.PaymentMethodToken, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return entities.PaymentMethodToken{}, fmt.Errorf("db: acquire connection: %w", err)
	}
	defer conn.Close()

	const query = `SELECT transaction_id, updated_at FROM bluepay_payment_methods WHERE payment_method_id = $1`

	token := entities.PaymentMethodToken{PaymentMethodID: paymentMethodID}
	err = conn.QueryRowContext(ctx, query, paymentMethodID.String()).Scan(&token.TransactionID, &token.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PaymentMethodToken{}, interfaces.ErrRecordNotFound
	}
	if err != nil {
		return entities.PaymentMethodToken{}, fmt.Errorf("db: select payment method: %w", err)
	}
	return token, nil
}

// Upsert inserts the token or replaces the one already stored for the payment method.
func (r *TokenPostgresRepository) Upsert(ctx context.Context, token entities.PaymentMethodToken) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("db: acquire connection: %w", err)
	}
	defer conn.Close()

	const query = `
INSERT INTO bluepay_payment_methods (payment_method_id, transaction_id, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (payment_method_id) DO UPDATE
SET transaction_id = EXCLUDED.transaction_id,
    updated_at = EXCLUDED.updated_at`

	if _, err := conn.ExecContext(ctx, query, token.PaymentMethodID.String(), token.TransactionID, token.UpdatedAt.UTC()); err != nil {
		return fmt.Errorf("db: upsert payment method: %w", err)
	}
	return nil
}
