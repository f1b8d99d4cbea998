package interfaces

//go:generate mockgen -source=account_service_interface.go -destination=mocks/account_service_interface_mock.go -package=mock_interfaces

import (
	"context"
	"errors"

	"killbill_bluepay/internal/domain/entities"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when the billing platform has no such account.
var ErrAccountNotFound = errors.New("account not found")

// IAccountService is the billing platform account API.
type IAccountService interface {
	GetAccountByID(ctx context.Context, accountID uuid.UUID, call entities.CallContext) (entities.Account, error)
}
