package interfaces

//go:generate mockgen -source=credentials_repository_interface.go -destination=mocks/credentials_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"errors"

	"killbill_bluepay/internal/domain/entities"

	"github.com/google/uuid"
)

// ErrRecordNotFound is returned by repositories when no row matches the key.
var ErrRecordNotFound = errors.New("record not found")

// ICredentialsRepository abstracts the read-only per-tenant gateway credentials table.

type ICredentialsRepository interface {
	GetByTenantID(ctx context.Context, tenantID uuid.UUID) (entities.TenantCredentials, error)
}
