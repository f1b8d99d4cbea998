package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"killbill_bluepay/internal/domain/entities"
	"killbill_bluepay/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/cardtoken"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
)

var ErrMercadoPagoUnsupportedInstrument = errors.New("mercado pago: only card instruments can be tokenized")

const mercadoPagoStatusApproved = "approved"

// mercadoPagoSession is one SDK session bound to a tenant access token.
type mercadoPagoSession interface {
	CreateCardToken(ctx context.Context, req cardtoken.Request) (*cardtoken.Response, error)
	CreatePayment(ctx context.Context, req payment.Request) (*payment.Response, error)
}

type sdkSession struct {
	cardTokens cardtoken.Client
	payments   payment.Client
}

func (s sdkSession) CreateCardToken(ctx context.Context, req cardtoken.Request) (*cardtoken.Response, error) {
	return s.cardTokens.Create(ctx, req)
}

func (s sdkSession) CreatePayment(ctx context.Context, req payment.Request) (*payment.Response, error) {
	return s.payments.Create(ctx, req)
}

func newSDKSession(accessToken string) (mercadoPagoSession, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	return sdkSession{cardTokens: cardtoken.NewClient(cfg), payments: payment.NewClient(cfg)}, nil
}

// MercadoPagoGateway serves the plugin gateway contract through the Mercado Pago SDK.
//
// The tenant secret key is used as the access token, so each call opens its own
// SDK session. Mercado Pago card tokens are single use; a registered token
// backs exactly one sale.

type MercadoPagoGateway struct {
	newSession func(accessToken string) (mercadoPagoSession, error)
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway() *MercadoPagoGateway {
	log.Printf("[plugin][gateway] Mercado Pago client initialized")
	return &MercadoPagoGateway{newSession: newSDKSession}
}

func (g *MercadoPagoGateway) RegisterPaymentMethod(ctx context.Context, creds entities.TenantCredentials, customer entities.CustomerProfile, instrument entities.PaymentInstrument, clientOrderID, _ string) entities.GatewayResponse {
	card, ok := instrument.(entities.CardInstrument)
	if !ok {
		log.Printf("[plugin][gateway] mercadopago tokenization rejected order_id=%s payment_type=%s", clientOrderID, instrument.PaymentType())
		return entities.GatewayResponse{Success: false, Message: ErrMercadoPagoUnsupportedInstrument.Error()}
	}

	session, err := g.newSession(creds.SecretKey)
	if err != nil {
		log.Printf("[plugin][gateway] failed creating sdk config err=%v", err)
		return entities.FailedGatewayResponse(fmt.Errorf("mercado pago: %w", err))
	}

	payload := map[string]any{
		"card_number":      card.Number,
		"security_code":    card.CVV2,
		"expiration_month": twoDigitMonth(card.ExpirationMonth),
		"expiration_year":  fourDigitYear(card.ExpirationYear),
		"cardholder": map[string]any{
			"name": strings.TrimSpace(customer.FirstName + " " + customer.LastName),
		},
	}
	var req cardtoken.Request
	if err := roundTripJSON(payload, &req); err != nil {
		log.Printf("[plugin][gateway] card token payload encode failed err=%v", err)
		return entities.FailedGatewayResponse(fmt.Errorf("mercado pago: %w", err))
	}

	log.Printf("[plugin][gateway] mercadopago card token start order_id=%s", clientOrderID)
	resp, err := session.CreateCardToken(ctx, req)
	if err != nil {
		log.Printf("[plugin][gateway] sdk card token failed err=%v", err)
		return entities.FailedGatewayResponse(fmt.Errorf("mercado pago: %w", err))
	}

	var out struct {
		ID             string `json:"id"`
		Status         string `json:"status"`
		LastFourDigits string `json:"last_four_digits"`
	}
	if err := roundTripJSON(resp, &out); err != nil {
		log.Printf("[plugin][gateway] card token response decode failed err=%v", err)
		return entities.FailedGatewayResponse(fmt.Errorf("mercado pago: %w", err))
	}
	log.Printf("[plugin][gateway] card token created order_id=%s status=%s", clientOrderID, out.Status)

	return entities.GatewayResponse{
		Success:       out.ID != "",
		Status:        out.Status,
		Message:       out.Status,
		TransactionID: out.ID,
		MaskedAccount: maskLastFour(out.LastFourDigits),
	}
}

func (g *MercadoPagoGateway) ExecuteSale(ctx context.Context, creds entities.TenantCredentials, amount decimal.Decimal, token, description, clientOrderID string) entities.GatewayResponse {
	session, err := g.newSession(creds.SecretKey)
	if err != nil {
		log.Printf("[plugin][gateway] failed creating sdk config err=%v", err)
		return entities.FailedGatewayResponse(fmt.Errorf("mercado pago: %w", err))
	}

	payload := map[string]any{
		"transaction_amount": amount.InexactFloat64(),
		"token":              token,
		"description":        description,
		"external_reference": clientOrderID,
		"installments":       1,
	}
	var req payment.Request
	if err := roundTripJSON(payload, &req); err != nil {
		log.Printf("[plugin][gateway] payload unmarshal failed err=%v", err)
		return entities.FailedGatewayResponse(fmt.Errorf("mercado pago: %w", err))
	}

	log.Printf("[plugin][gateway] mercadopago create start order_id=%s amount=%s", clientOrderID, amount.StringFixed(2))
	resp, err := session.CreatePayment(ctx, req)
	if err != nil {
		log.Printf("[plugin][gateway] sdk create failed err=%v", err)
		return entities.FailedGatewayResponse(fmt.Errorf("mercado pago: %w", err))
	}

	var out struct {
		StatusDetail      string `json:"status_detail"`
		AuthorizationCode string `json:"authorization_code"`
		PaymentMethodID   string `json:"payment_method_id"`
		Card              struct {
			LastFourDigits string `json:"last_four_digits"`
		} `json:"card"`
	}
	if err := roundTripJSON(resp, &out); err != nil {
		log.Printf("[plugin][gateway] response decode failed err=%v", err)
		return entities.FailedGatewayResponse(fmt.Errorf("mercado pago: %w", err))
	}
	log.Printf("[plugin][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return entities.GatewayResponse{
		Success:       resp.Status == mercadoPagoStatusApproved,
		Status:        resp.Status,
		Message:       out.StatusDetail,
		TransactionID: fmt.Sprintf("%d", resp.ID),
		MaskedAccount: maskLastFour(out.Card.LastFourDigits),
		CardType:      out.PaymentMethodID,
		AuthCode:      out.AuthorizationCode,
	}
}

func roundTripJSON(in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func twoDigitMonth(m string) string {
	if len(m) == 1 {
		return "0" + m
	}
	return m
}

func fourDigitYear(y string) string {
	if len(y) == 2 {
		return "20" + y
	}
	return y
}

func maskLastFour(lastFour string) string {
	if lastFour == "" {
		return ""
	}
	return "xxxxxxxxxxxx" + lastFour
}
