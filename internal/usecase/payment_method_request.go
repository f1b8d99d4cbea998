package usecase

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"killbill_bluepay/internal/domain/entities"
)

// Payment method property keys accepted from the host.
const (
	PropertyPaymentType               = "paymentType"
	PropertyCreditCardNumber          = "creditCardNumber"
	PropertyCreditCardCVV2            = "creditCardCVV2"
	PropertyCreditCardExpirationMonth = "creditCardExpirationMonth"
	PropertyCreditCardExpirationYear  = "creditCardExpirationYear"
	PropertyRoutingNumber             = "routingNumber"
	PropertyAccountNumber             = "accountNumber"
	PropertyCustomerIP                = "donorIp"

	PropertyDescription = "description"
)

type paymentMethodFields struct {
	paymentType     string
	cardNumber      string
	cardCVV2        string
	expirationMonth string
	expirationYear  string
	routingNumber   string
	accountNumber   string
	customerIP      string
}

// ParsePaymentMethodRequest turns the payment method property bag into a
// validated request. Unknown keys and missing required fields are rejected
// with ErrInvalidInput.
func ParsePaymentMethodRequest(props entities.PluginProperties) (entities.PaymentMethodRequest, error) {
	fields, err := parsePaymentMethodFields(props)
	if err != nil {
		return entities.PaymentMethodRequest{}, err
	}
	return fields.toRequest()
}

func parsePaymentMethodFields(props entities.PluginProperties) (paymentMethodFields, error) {
	var f paymentMethodFields
	for _, p := range props {
		v := propertyString(p.Value)
		switch p.Key {
		case PropertyPaymentType:
			f.paymentType = v
		case PropertyCreditCardNumber:
			f.cardNumber = v
		case PropertyCreditCardCVV2:
			f.cardCVV2 = v
		case PropertyCreditCardExpirationMonth:
			f.expirationMonth = v
		case PropertyCreditCardExpirationYear:
			f.expirationYear = v
		case PropertyRoutingNumber:
			f.routingNumber = v
		case PropertyAccountNumber:
			f.accountNumber = v
		case PropertyCustomerIP:
			f.customerIP = v
		default:
			return paymentMethodFields{}, invalidInput(opRegisterPaymentMethod, "unrecognized plugin property: %s", p.Key)
		}
	}
	return f, nil
}

func (f paymentMethodFields) toRequest() (entities.PaymentMethodRequest, error) {
	req := entities.PaymentMethodRequest{CustomerIP: f.customerIP}

	switch entities.PaymentType(f.paymentType) {
	case "":
		return entities.PaymentMethodRequest{}, invalidInput(opRegisterPaymentMethod, "missing %s", PropertyPaymentType)
	case entities.PaymentTypeCard:
		required := []struct{ key, value string }{
			{PropertyCreditCardNumber, f.cardNumber},
			{PropertyCreditCardExpirationMonth, f.expirationMonth},
			{PropertyCreditCardExpirationYear, f.expirationYear},
			{PropertyCreditCardCVV2, f.cardCVV2},
		}
		for _, r := range required {
			if r.value == "" {
				return entities.PaymentMethodRequest{}, invalidInput(opRegisterPaymentMethod, "missing %s", r.key)
			}
		}
		req.Instrument = entities.CardInstrument{
			Number:          f.cardNumber,
			ExpirationMonth: f.expirationMonth,
			ExpirationYear:  f.expirationYear,
			CVV2:            f.cardCVV2,
		}
	case entities.PaymentTypeACH:
		if f.routingNumber == "" {
			return entities.PaymentMethodRequest{}, invalidInput(opRegisterPaymentMethod, "missing %s", PropertyRoutingNumber)
		}
		if f.accountNumber == "" {
			return entities.PaymentMethodRequest{}, invalidInput(opRegisterPaymentMethod, "missing %s", PropertyAccountNumber)
		}
		req.Instrument = entities.ACHInstrument{
			RoutingNumber: f.routingNumber,
			AccountNumber: f.accountNumber,
		}
	default:
		return entities.PaymentMethodRequest{}, invalidInput(opRegisterPaymentMethod, "unknown %s: %s", PropertyPaymentType, f.paymentType)
	}
	return req, nil
}

// saleDescription returns the description property, or the default memo when absent.
func saleDescription(props entities.PluginProperties) string {
	description := defaultSaleDescription
	for _, p := range props {
		if p.Key == PropertyDescription {
			description = propertyString(p.Value)
		}
	}
	return description
}

// propertyString renders a property value the way the host serializes it.
// JSON numbers decode as float64, so 7 becomes "7".
func propertyString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}
