package entities

import (
	"time"

	"github.com/google/uuid"
)

// PaymentType discriminates the stored instrument.
type PaymentType string

const (
	PaymentTypeCard PaymentType = "card"
	PaymentTypeACH  PaymentType = "ach"
)

// PaymentMethodToken maps a billing platform payment method to the gateway
// transaction that holds the tokenized instrument.
//
// Storage model:
//   - PK: payment_method_id
//   - Writes are upserts; the last registration wins.

type PaymentMethodToken struct {
	PaymentMethodID uuid.UUID `json:"payment_method_id"`
	TransactionID   string    `json:"transaction_id"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PaymentInstrument is either a CardInstrument or an ACHInstrument.
type PaymentInstrument interface {
	PaymentType() PaymentType
	isPaymentInstrument()
}

type CardInstrument struct {
	Number          string
	ExpirationMonth string
	ExpirationYear  string
	CVV2            string
}

func (CardInstrument) PaymentType() PaymentType { return PaymentTypeCard }
func (CardInstrument) isPaymentInstrument()     {}

// ExpirationDate is the two digit month followed by the year as supplied.
func (c CardInstrument) ExpirationDate() string {
	month := c.ExpirationMonth
	if len(month) == 1 {
		month = "0" + month
	}
	return month + c.ExpirationYear
}

type ACHInstrument struct {
	RoutingNumber string
	AccountNumber string
}

func (ACHInstrument) PaymentType() PaymentType { return PaymentTypeACH }
func (ACHInstrument) isPaymentInstrument()     {}

// PaymentMethodRequest is the validated form of the payment method property bag.
type PaymentMethodRequest struct {
	Instrument PaymentInstrument
	CustomerIP string
}

// PaymentMethodDetail describes one payment method as reported back to the host.
type PaymentMethodDetail struct {
	PaymentMethodID         uuid.UUID        `json:"payment_method_id"`
	ExternalPaymentMethodID string           `json:"external_payment_method_id,omitempty"`
	IsDefault               bool             `json:"is_default"`
	Properties              PluginProperties `json:"properties,omitempty"`
}

func (PaymentMethodDetail) PluginStatus() PaymentPluginStatus { return PaymentPluginStatusUndefined }

// PaymentMethodInfo is the short listing form of a payment method.
type PaymentMethodInfo struct {
	AccountID               uuid.UUID `json:"account_id"`
	PaymentMethodID         uuid.UUID `json:"payment_method_id"`
	ExternalPaymentMethodID string    `json:"external_payment_method_id,omitempty"`
	IsDefault               bool      `json:"is_default"`
}

func (PaymentMethodInfo) PluginStatus() PaymentPluginStatus { return PaymentPluginStatusUndefined }
