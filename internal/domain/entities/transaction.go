package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentTransactionInfo is the outcome of one payment transaction as reported
// to the payment orchestrator.
//
// Zero values mean "unknown": stub operations leave Type, Amount, Currency and
// dates empty and report PaymentPluginStatusCanceled.

type PaymentTransactionInfo struct {
	PaymentID                uuid.UUID           `json:"payment_id"`
	TransactionID            uuid.UUID           `json:"transaction_id"`
	Type                     TransactionType     `json:"transaction_type,omitempty"`
	Amount                   *decimal.Decimal    `json:"amount,omitempty"`
	Currency                 Currency            `json:"currency,omitempty"`
	CreatedDate              *time.Time          `json:"created_date,omitempty"`
	EffectiveDate            *time.Time          `json:"effective_date,omitempty"`
	Status                   PaymentPluginStatus `json:"status"`
	GatewayError             string              `json:"gateway_error,omitempty"`
	GatewayErrorCode         string              `json:"gateway_error_code,omitempty"`
	FirstPaymentReferenceID  string              `json:"first_payment_reference_id,omitempty"`
	SecondPaymentReferenceID string              `json:"second_payment_reference_id,omitempty"`
	Properties               PluginProperties    `json:"properties,omitempty"`
}

func (t PaymentTransactionInfo) PluginStatus() PaymentPluginStatus { return t.Status }

// CanceledTransaction is the neutral result returned by unsupported operations.
func CanceledTransaction(paymentID, transactionID uuid.UUID) PaymentTransactionInfo {
	return PaymentTransactionInfo{
		PaymentID:     paymentID,
		TransactionID: transactionID,
		Status:        PaymentPluginStatusCanceled,
	}
}
