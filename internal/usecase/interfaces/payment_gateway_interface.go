package interfaces

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

import (
	"context"

	"killbill_bluepay/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IPaymentGateway abstracts the external card/ACH gateway (e.g. BluePay).
//
// Implementations never return transport failures as Go errors: they are
// reported through GatewayResponse.Err with Success=false, so callers must
// check Success.
type IPaymentGateway interface {
	// RegisterPaymentMethod runs a zero-amount authorization to obtain a reusable token.
	RegisterPaymentMethod(ctx context.Context, creds entities.TenantCredentials, customer entities.CustomerProfile, instrument entities.PaymentInstrument, clientOrderID string, customerIP string) entities.GatewayResponse
	// ExecuteSale charges amount against a previously obtained token.
	ExecuteSale(ctx context.Context, creds entities.TenantCredentials, amount decimal.Decimal, token string, description string, clientOrderID string) entities.GatewayResponse
}
