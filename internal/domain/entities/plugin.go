package entities

import "github.com/google/uuid"

// PaymentPluginStatus is the normalized outcome reported to the payment orchestrator.
type PaymentPluginStatus string

const (
	PaymentPluginStatusProcessed PaymentPluginStatus = "PROCESSED"
	PaymentPluginStatusPending   PaymentPluginStatus = "PENDING"
	PaymentPluginStatusError     PaymentPluginStatus = "ERROR"
	PaymentPluginStatusCanceled  PaymentPluginStatus = "CANCELED"
	PaymentPluginStatusUndefined PaymentPluginStatus = "UNDEFINED"
)

type TransactionType string

const (
	TransactionTypeAuthorize TransactionType = "AUTHORIZE"
	TransactionTypeCapture   TransactionType = "CAPTURE"
	TransactionTypePurchase  TransactionType = "PURCHASE"
	TransactionTypeVoid      TransactionType = "VOID"
	TransactionTypeCredit    TransactionType = "CREDIT"
	TransactionTypeRefund    TransactionType = "REFUND"
)

// Currency is an ISO 4217 code.
type Currency string

// PluginResult is implemented by every value returned to the host.
type PluginResult interface {
	PluginStatus() PaymentPluginStatus
}

// PluginProperty is one entry of the ordered key/value bag passed by the host.
type PluginProperty struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type PluginProperties []PluginProperty

// Lookup returns the value of the first property with the given key.
func (p PluginProperties) Lookup(key string) (any, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return nil, false
}

// CallContext carries the caller identity for one plugin call.
type CallContext struct {
	TenantID  uuid.UUID
	UserName  string
	Reason    string
	Comment   string
	RequestID string
}

// Page is a slice of search results with its pagination window.
type Page[T any] struct {
	CurrentOffset int64 `json:"current_offset"`
	NextOffset    int64 `json:"next_offset"`
	MaxRecords    int64 `json:"max_records"`
	TotalRecords  int64 `json:"total_records"`
	Items         []T   `json:"items"`
}

func (Page[T]) PluginStatus() PaymentPluginStatus { return PaymentPluginStatusUndefined }

// FormDescriptor describes a hosted payment page.
type FormDescriptor struct {
	AccountID  uuid.UUID        `json:"account_id"`
	FormMethod string           `json:"form_method,omitempty"`
	FormURL    string           `json:"form_url,omitempty"`
	FormFields PluginProperties `json:"form_fields,omitempty"`
	Properties PluginProperties `json:"properties,omitempty"`
}

func (FormDescriptor) PluginStatus() PaymentPluginStatus { return PaymentPluginStatusUndefined }

// NotificationResult is the plugin answer to a gateway notification.
type NotificationResult struct {
	Status     PaymentPluginStatus `json:"status"`
	Entity     string              `json:"entity,omitempty"`
	Headers    map[string]string   `json:"headers,omitempty"`
	Properties PluginProperties    `json:"properties,omitempty"`
}

func (n NotificationResult) PluginStatus() PaymentPluginStatus { return n.Status }
