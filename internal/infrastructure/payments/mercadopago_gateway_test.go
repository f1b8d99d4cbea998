package payments

import (
	"context"
	"errors"
	"testing"

	"killbill_bluepay/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/cardtoken"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
)

type fakeMercadoPagoSession struct {
	tokenReq   cardtoken.Request
	paymentReq payment.Request
	tokenResp  *cardtoken.Response
	payResp    *payment.Response
	err        error
}

func (f *fakeMercadoPagoSession) CreateCardToken(_ context.Context, req cardtoken.Request) (*cardtoken.Response, error) {
	f.tokenReq = req
	return f.tokenResp, f.err
}

func (f *fakeMercadoPagoSession) CreatePayment(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.paymentReq = req
	return f.payResp, f.err
}

func gatewayWith(session *fakeMercadoPagoSession, gotToken *string) *MercadoPagoGateway {
	return &MercadoPagoGateway{newSession: func(accessToken string) (mercadoPagoSession, error) {
		*gotToken = accessToken
		return session, nil
	}}
}

func TestMercadoPagoGateway_RegisterPaymentMethod(t *testing.T) {
	card := entities.CardInstrument{Number: "5031433215406351", ExpirationMonth: "7", ExpirationYear: "30", CVV2: "123"}

	t.Run("card token", func(t *testing.T) {
		session := &fakeMercadoPagoSession{tokenResp: &cardtoken.Response{}}
		var accessToken string
		gw := gatewayWith(session, &accessToken)

		resp := gw.RegisterPaymentMethod(context.Background(), testCreds, entities.CustomerProfile{FirstName: "Jane", LastName: "Doe"}, card, "pm-1", "")
		if accessToken != "SECRET" {
			t.Fatalf("expected tenant secret as access token, got %q", accessToken)
		}
		// An empty SDK response carries no token id.
		if resp.Success || resp.Err != nil {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("ach unsupported", func(t *testing.T) {
		session := &fakeMercadoPagoSession{}
		var accessToken string
		gw := gatewayWith(session, &accessToken)

		resp := gw.RegisterPaymentMethod(context.Background(), testCreds, entities.CustomerProfile{}, entities.ACHInstrument{RoutingNumber: "1", AccountNumber: "2"}, "pm-2", "")
		if resp.Success || resp.Err != nil || resp.Message != ErrMercadoPagoUnsupportedInstrument.Error() {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if accessToken != "" {
			t.Fatal("no session should be opened for ach")
		}
	})

	t.Run("sdk error", func(t *testing.T) {
		session := &fakeMercadoPagoSession{err: errors.New("401 unauthorized")}
		var accessToken string
		gw := gatewayWith(session, &accessToken)

		resp := gw.RegisterPaymentMethod(context.Background(), testCreds, entities.CustomerProfile{}, card, "pm-3", "")
		if resp.Success || resp.Err == nil {
			t.Fatalf("expected transport failure, got %+v", resp)
		}
	})

	t.Run("session error", func(t *testing.T) {
		gw := &MercadoPagoGateway{newSession: func(string) (mercadoPagoSession, error) { return nil, errors.New("bad token") }}
		resp := gw.RegisterPaymentMethod(context.Background(), testCreds, entities.CustomerProfile{}, card, "pm-4", "")
		if resp.Success || resp.Err == nil {
			t.Fatalf("expected failure, got %+v", resp)
		}
	})
}

func TestMercadoPagoGateway_ExecuteSale(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		session := &fakeMercadoPagoSession{payResp: &payment.Response{ID: 123456, Status: "approved"}}
		var accessToken string
		gw := gatewayWith(session, &accessToken)

		resp := gw.ExecuteSale(context.Background(), testCreds, decimal.RequireFromString("12.34"), "tok", "Invoice", "tx-1")
		if !resp.Success || resp.TransactionID != "123456" || resp.Status != "approved" {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if session.paymentReq.Token != "tok" || session.paymentReq.ExternalReference != "tx-1" || session.paymentReq.TransactionAmount != 12.34 {
			t.Fatalf("unexpected request: %+v", session.paymentReq)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		session := &fakeMercadoPagoSession{payResp: &payment.Response{ID: 1, Status: "rejected"}}
		var accessToken string
		gw := gatewayWith(session, &accessToken)

		resp := gw.ExecuteSale(context.Background(), testCreds, decimal.NewFromInt(1), "tok", "", "tx-2")
		if resp.Success || resp.Err != nil || resp.Status != "rejected" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("sdk error", func(t *testing.T) {
		session := &fakeMercadoPagoSession{err: errors.New("timeout")}
		var accessToken string
		gw := gatewayWith(session, &accessToken)

		resp := gw.ExecuteSale(context.Background(), testCreds, decimal.NewFromInt(1), "tok", "", "tx-3")
		if resp.Success || resp.Err == nil {
			t.Fatalf("expected failure, got %+v", resp)
		}
	})
}

func TestCardDateHelpers(t *testing.T) {
	if twoDigitMonth("7") != "07" || twoDigitMonth("11") != "11" {
		t.Fatal("unexpected month padding")
	}
	if fourDigitYear("30") != "2030" || fourDigitYear("2030") != "2030" {
		t.Fatal("unexpected year expansion")
	}
}
