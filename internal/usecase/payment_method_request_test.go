package usecase

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"killbill_bluepay/internal/domain/entities"
)

func TestParsePaymentMethodRequest(t *testing.T) {
	t.Run("card", func(t *testing.T) {
		req, err := ParsePaymentMethodRequest(entities.PluginProperties{
			{Key: PropertyPaymentType, Value: "card"},
			{Key: PropertyCreditCardNumber, Value: " 4111111111111111 "},
			{Key: PropertyCreditCardExpirationMonth, Value: float64(7)},
			{Key: PropertyCreditCardExpirationYear, Value: json.Number("2031")},
			{Key: PropertyCreditCardCVV2, Value: "123"},
			{Key: PropertyCustomerIP, Value: "127.0.0.1"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		card, ok := req.Instrument.(entities.CardInstrument)
		if !ok {
			t.Fatalf("expected card instrument, got %T", req.Instrument)
		}
		if card.Number != "4111111111111111" || card.ExpirationDate() != "072031" || card.CVV2 != "123" {
			t.Fatalf("unexpected card: %+v", card)
		}
		if req.CustomerIP != "127.0.0.1" {
			t.Fatalf("unexpected customer ip %q", req.CustomerIP)
		}
	})

	t.Run("ach", func(t *testing.T) {
		req, err := ParsePaymentMethodRequest(entities.PluginProperties{
			{Key: PropertyPaymentType, Value: "ach"},
			{Key: PropertyRoutingNumber, Value: "021000021"},
			{Key: PropertyAccountNumber, Value: "000123"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Instrument != (entities.ACHInstrument{RoutingNumber: "021000021", AccountNumber: "000123"}) {
			t.Fatalf("unexpected instrument: %+v", req.Instrument)
		}
	})

	failures := []struct {
		name  string
		props entities.PluginProperties
		want  string
	}{
		{"empty", nil, "missing paymentType"},
		{"unknown type", entities.PluginProperties{{Key: PropertyPaymentType, Value: "paypal"}}, "unknown paymentType: paypal"},
		{"unknown key", entities.PluginProperties{{Key: PropertyPaymentType, Value: "card"}, {Key: "bogusField", Value: "1"}}, "unrecognized plugin property: bogusField"},
		{"card without number", entities.PluginProperties{{Key: PropertyPaymentType, Value: "card"}}, "missing creditCardNumber"},
		{"card without year", entities.PluginProperties{
			{Key: PropertyPaymentType, Value: "card"},
			{Key: PropertyCreditCardNumber, Value: "4111"},
			{Key: PropertyCreditCardExpirationMonth, Value: "1"},
		}, "missing creditCardExpirationYear"},
		{"ach without account", entities.PluginProperties{
			{Key: PropertyPaymentType, Value: "ach"},
			{Key: PropertyRoutingNumber, Value: "021000021"},
		}, "missing accountNumber"},
		{"blank value counts as missing", entities.PluginProperties{
			{Key: PropertyPaymentType, Value: "ach"},
			{Key: PropertyRoutingNumber, Value: "   "},
			{Key: PropertyAccountNumber, Value: "1"},
		}, "missing routingNumber"},
	}
	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePaymentMethodRequest(tc.props)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in %q", tc.want, err.Error())
			}
		})
	}
}

func TestSaleDescription(t *testing.T) {
	if got := saleDescription(nil); got != defaultSaleDescription {
		t.Fatalf("expected default description, got %q", got)
	}
	props := entities.PluginProperties{
		{Key: PropertyDescription, Value: "first"},
		{Key: PropertyDescription, Value: "second"},
	}
	if got := saleDescription(props); got != "second" {
		t.Fatalf("expected last description to win, got %q", got)
	}
	if got := saleDescription(entities.PluginProperties{{Key: PropertyDescription, Value: nil}}); got != "" {
		t.Fatalf("expected empty description for nil value, got %q", got)
	}
}
