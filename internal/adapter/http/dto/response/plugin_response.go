package response

import (
	"time"

	"killbill_bluepay/internal/domain/entities"
)

type PluginProperty struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

func fromPluginProperties(in entities.PluginProperties) []PluginProperty {
	if len(in) == 0 {
		return nil
	}
	out := make([]PluginProperty, 0, len(in))
	for _, p := range in {
		out = append(out, PluginProperty{Key: p.Key, Value: p.Value})
	}
	return out
}

// PaymentTransactionInfoResponse is the host-facing view of one payment transaction.
type PaymentTransactionInfoResponse struct {
	PaymentID                string           `json:"payment_id"`
	TransactionID            string           `json:"transaction_id"`
	TransactionType          string           `json:"transaction_type,omitempty"`
	Amount                   string           `json:"amount,omitempty" example:"10.00"`
	Currency                 string           `json:"currency,omitempty"`
	CreatedDate              *time.Time       `json:"created_date,omitempty"`
	EffectiveDate            *time.Time       `json:"effective_date,omitempty"`
	Status                   string           `json:"status"`
	GatewayError             string           `json:"gateway_error,omitempty"`
	GatewayErrorCode         string           `json:"gateway_error_code,omitempty"`
	FirstPaymentReferenceID  string           `json:"first_payment_reference_id,omitempty"`
	SecondPaymentReferenceID string           `json:"second_payment_reference_id,omitempty"`
	Properties               []PluginProperty `json:"properties,omitempty"`
}

func FromPaymentTransactionInfo(t entities.PaymentTransactionInfo) PaymentTransactionInfoResponse {
	res := PaymentTransactionInfoResponse{
		PaymentID:                t.PaymentID.String(),
		TransactionID:            t.TransactionID.String(),
		TransactionType:          string(t.Type),
		Currency:                 string(t.Currency),
		CreatedDate:              t.CreatedDate,
		EffectiveDate:            t.EffectiveDate,
		Status:                   string(t.Status),
		GatewayError:             t.GatewayError,
		GatewayErrorCode:         t.GatewayErrorCode,
		FirstPaymentReferenceID:  t.FirstPaymentReferenceID,
		SecondPaymentReferenceID: t.SecondPaymentReferenceID,
		Properties:               fromPluginProperties(t.Properties),
	}
	if t.Amount != nil {
		res.Amount = t.Amount.StringFixed(2)
	}
	return res
}

func FromPaymentTransactionInfos(in []entities.PaymentTransactionInfo) []PaymentTransactionInfoResponse {
	out := make([]PaymentTransactionInfoResponse, 0, len(in))
	for _, t := range in {
		out = append(out, FromPaymentTransactionInfo(t))
	}
	return out
}

type PaymentMethodDetailResponse struct {
	PaymentMethodID         string           `json:"payment_method_id"`
	ExternalPaymentMethodID string           `json:"external_payment_method_id,omitempty"`
	IsDefault               bool             `json:"is_default"`
	Status                  string           `json:"status"`
	Properties              []PluginProperty `json:"properties,omitempty"`
}

func FromPaymentMethodDetail(d entities.PaymentMethodDetail) PaymentMethodDetailResponse {
	return PaymentMethodDetailResponse{
		PaymentMethodID:         d.PaymentMethodID.String(),
		ExternalPaymentMethodID: d.ExternalPaymentMethodID,
		IsDefault:               d.IsDefault,
		Status:                  string(d.PluginStatus()),
		Properties:              fromPluginProperties(d.Properties),
	}
}

type PaymentMethodInfoResponse struct {
	AccountID               string `json:"account_id"`
	PaymentMethodID         string `json:"payment_method_id"`
	ExternalPaymentMethodID string `json:"external_payment_method_id,omitempty"`
	IsDefault               bool   `json:"is_default"`
}

func FromPaymentMethodInfos(in []entities.PaymentMethodInfo) []PaymentMethodInfoResponse {
	out := make([]PaymentMethodInfoResponse, 0, len(in))
	for _, pm := range in {
		out = append(out, PaymentMethodInfoResponse{
			AccountID:               pm.AccountID.String(),
			PaymentMethodID:         pm.PaymentMethodID.String(),
			ExternalPaymentMethodID: pm.ExternalPaymentMethodID,
			IsDefault:               pm.IsDefault,
		})
	}
	return out
}

// PageResponse is one page of search results.
type PageResponse[T any] struct {
	CurrentOffset int64 `json:"current_offset"`
	NextOffset    int64 `json:"next_offset"`
	MaxRecords    int64 `json:"max_records"`
	TotalRecords  int64 `json:"total_records"`
	Items         []T   `json:"items"`
}

func FromPage[E, T any](p entities.Page[E], convert func(E) T) PageResponse[T] {
	items := make([]T, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, convert(it))
	}
	return PageResponse[T]{
		CurrentOffset: p.CurrentOffset,
		NextOffset:    p.NextOffset,
		MaxRecords:    p.MaxRecords,
		TotalRecords:  p.TotalRecords,
		Items:         items,
	}
}

type FormDescriptorResponse struct {
	AccountID  string           `json:"account_id"`
	FormMethod string           `json:"form_method,omitempty"`
	FormURL    string           `json:"form_url,omitempty"`
	FormFields []PluginProperty `json:"form_fields,omitempty"`
	Properties []PluginProperty `json:"properties,omitempty"`
}

func FromFormDescriptor(f entities.FormDescriptor) FormDescriptorResponse {
	return FormDescriptorResponse{
		AccountID:  f.AccountID.String(),
		FormMethod: f.FormMethod,
		FormURL:    f.FormURL,
		FormFields: fromPluginProperties(f.FormFields),
		Properties: fromPluginProperties(f.Properties),
	}
}

type NotificationResponse struct {
	Status     string            `json:"status"`
	Entity     string            `json:"entity,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Properties []PluginProperty  `json:"properties,omitempty"`
}

func FromNotificationResult(n entities.NotificationResult) NotificationResponse {
	return NotificationResponse{
		Status:     string(n.PluginStatus()),
		Entity:     n.Entity,
		Headers:    n.Headers,
		Properties: fromPluginProperties(n.Properties),
	}
}
