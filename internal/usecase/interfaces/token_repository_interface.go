package interfaces

//go:generate mockgen -source=token_repository_interface.go -destination=mocks/token_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"killbill_bluepay/internal/domain/entities"

	"github.com/google/uuid"
)

// ITokenRepository abstracts persistence of gateway tokens keyed by payment method.
//
// Upsert must be atomic for a given payment method id: concurrent writers may
// race, and the last one wins.
type ITokenRepository interface {
	GetByPaymentMethodID(ctx context.Context, paymentMethodID uuid.UUID) (entities.PaymentMethodToken, error)
	Upsert(ctx context.Context, token entities.PaymentMethodToken) error
}
