package payments

import (
	"fmt"
	"log"
	"strings"
	"time"

	"killbill_bluepay/internal/usecase/interfaces"
)

const (
	ProviderBluePay     = "bluepay"
	ProviderMercadoPago = "mercadopago"
)

// Settings selects and configures the gateway backend.
type Settings struct {
	Provider   string
	Mock       bool
	BluePayURL string
	Timeout    time.Duration
}

// NewGateway builds the configured gateway. Mock wins over Provider.
func NewGateway(s Settings) (interfaces.IPaymentGateway, error) {
	if s.Mock {
		log.Printf("[plugin][gateway] mock mode enabled")
		return MockGateway{}, nil
	}
	switch strings.ToLower(strings.TrimSpace(s.Provider)) {
	case "", ProviderBluePay:
		return NewBluePayGateway(s.BluePayURL, s.Timeout), nil
	case ProviderMercadoPago:
		return NewMercadoPagoGateway(), nil
	default:
		return nil, fmt.Errorf("unknown PAYMENT_GATEWAY %q", s.Provider)
	}
}
