package request

import (
	"killbill_bluepay/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PluginProperty is one key/value entry of a plugin property list.
type PluginProperty struct {
	Key   string `json:"key" binding:"required"`
	Value any    `json:"value"`
}

// ToPluginProperties keeps the order of the request list.
func ToPluginProperties(in []PluginProperty) entities.PluginProperties {
	out := make(entities.PluginProperties, 0, len(in))
	for _, p := range in {
		out = append(out, entities.PluginProperty{Key: p.Key, Value: p.Value})
	}
	return out
}

// RegisterPaymentMethodRequest carries the instrument details to tokenize.
//
// payment_method_properties holds paymentType plus the card or ACH fields.
type RegisterPaymentMethodRequest struct {
	PaymentMethodProperties []PluginProperty `json:"payment_method_properties" binding:"dive"`
	IsDefault               bool             `json:"is_default"`
	Properties              []PluginProperty `json:"properties" binding:"dive"`
}

// TransactionRequest is the body of every payment transaction route.
//
// transaction_id is optional; a new id is assigned when it is omitted.
type TransactionRequest struct {
	PaymentMethodID uuid.UUID        `json:"payment_method_id" binding:"required"`
	TransactionID   uuid.UUID        `json:"transaction_id"`
	Amount          decimal.Decimal  `json:"amount" swaggertype:"string" example:"10.00"`
	Currency        string           `json:"currency" example:"USD"`
	Properties      []PluginProperty `json:"properties" binding:"dive"`
}

// ResolveTransactionID returns the requested transaction id or a new one.
func (r TransactionRequest) ResolveTransactionID() uuid.UUID {
	if r.TransactionID == uuid.Nil {
		return uuid.New()
	}
	return r.TransactionID
}

type PaymentMethodInfo struct {
	PaymentMethodID         uuid.UUID `json:"payment_method_id" binding:"required"`
	ExternalPaymentMethodID string    `json:"external_payment_method_id"`
	IsDefault               bool      `json:"is_default"`
}

type ResetPaymentMethodsRequest struct {
	PaymentMethods []PaymentMethodInfo `json:"payment_methods" binding:"dive"`
	Properties     []PluginProperty    `json:"properties" binding:"dive"`
}

func (r ResetPaymentMethodsRequest) ToPaymentMethodInfos(accountID uuid.UUID) []entities.PaymentMethodInfo {
	out := make([]entities.PaymentMethodInfo, 0, len(r.PaymentMethods))
	for _, pm := range r.PaymentMethods {
		out = append(out, entities.PaymentMethodInfo{
			AccountID:               accountID,
			PaymentMethodID:         pm.PaymentMethodID,
			ExternalPaymentMethodID: pm.ExternalPaymentMethodID,
			IsDefault:               pm.IsDefault,
		})
	}
	return out
}

type FormDescriptorRequest struct {
	CustomFields []PluginProperty `json:"custom_fields" binding:"dive"`
	Properties   []PluginProperty `json:"properties" binding:"dive"`
}

type NotificationRequest struct {
	Notification string           `json:"notification"`
	Properties   []PluginProperty `json:"properties" binding:"dive"`
}
