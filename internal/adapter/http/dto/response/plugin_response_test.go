package response

import (
	"testing"
	"time"

	"killbill_bluepay/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestFromPaymentTransactionInfo(t *testing.T) {
	now := time.Now().UTC()
	amount := decimal.RequireFromString("10.5")
	info := entities.PaymentTransactionInfo{
		PaymentID:                uuid.New(),
		TransactionID:            uuid.New(),
		Type:                     entities.TransactionTypePurchase,
		Amount:                   &amount,
		Currency:                 "USD",
		CreatedDate:              &now,
		EffectiveDate:            &now,
		Status:                   entities.PaymentPluginStatusError,
		GatewayError:             "declined",
		GatewayErrorCode:         "0",
		FirstPaymentReferenceID:  "T1",
		SecondPaymentReferenceID: "A1",
	}

	res := FromPaymentTransactionInfo(info)
	if res.Amount != "10.50" || res.Currency != "USD" || res.TransactionType != "PURCHASE" || res.Status != "ERROR" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.GatewayError != "declined" || res.GatewayErrorCode != "0" || res.FirstPaymentReferenceID != "T1" || res.SecondPaymentReferenceID != "A1" {
		t.Fatalf("unexpected gateway fields: %+v", res)
	}
	if res.CreatedDate == nil || !res.CreatedDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}

	canceled := FromPaymentTransactionInfo(entities.CanceledTransaction(info.PaymentID, info.TransactionID))
	if canceled.Amount != "" || canceled.TransactionType != "" || canceled.CreatedDate != nil || canceled.Status != "CANCELED" {
		t.Fatalf("unexpected canceled response: %+v", canceled)
	}
}

func TestFromPage(t *testing.T) {
	page := entities.Page[entities.PaymentMethodDetail]{CurrentOffset: 5, NextOffset: 5, Items: []entities.PaymentMethodDetail{}}
	res := FromPage(page, FromPaymentMethodDetail)
	if res.CurrentOffset != 5 || res.Items == nil || len(res.Items) != 0 {
		t.Fatalf("unexpected page: %+v", res)
	}
}

func TestFromPaymentMethodDetail(t *testing.T) {
	id := uuid.New()
	res := FromPaymentMethodDetail(entities.PaymentMethodDetail{PaymentMethodID: id})
	if res.PaymentMethodID != id.String() || res.Status != "UNDEFINED" {
		t.Fatalf("unexpected detail: %+v", res)
	}
}

func TestFromNotificationResult(t *testing.T) {
	res := FromNotificationResult(entities.NotificationResult{Status: entities.PaymentPluginStatusUndefined})
	if res.Status != "UNDEFINED" || res.Entity != "" {
		t.Fatalf("unexpected notification: %+v", res)
	}
}
