package usecase

import (
	"context"
	"log"

	"killbill_bluepay/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The operations below are part of the host contract but are not supported by
// this plugin. They never touch the stores, the account service or the gateway,
// and their results are neutral: CANCELED transactions, empty lists and pages.

func (u *PaymentPluginUseCase) AuthorizePayment(_ context.Context, _ entities.CallContext, _, paymentID, transactionID, _ uuid.UUID, _ decimal.Decimal, _ entities.Currency, _ entities.PluginProperties) (entities.PaymentTransactionInfo, error) {
	return unsupportedTransaction("authorize", paymentID, transactionID), nil
}

func (u *PaymentPluginUseCase) CapturePayment(_ context.Context, _ entities.CallContext, _, paymentID, transactionID, _ uuid.UUID, _ decimal.Decimal, _ entities.Currency, _ entities.PluginProperties) (entities.PaymentTransactionInfo, error) {
	return unsupportedTransaction("capture", paymentID, transactionID), nil
}

func (u *PaymentPluginUseCase) VoidPayment(_ context.Context, _ entities.CallContext, _, paymentID, transactionID, _ uuid.UUID, _ entities.PluginProperties) (entities.PaymentTransactionInfo, error) {
	return unsupportedTransaction("void", paymentID, transactionID), nil
}

func (u *PaymentPluginUseCase) CreditPayment(_ context.Context, _ entities.CallContext, _, paymentID, transactionID, _ uuid.UUID, _ decimal.Decimal, _ entities.Currency, _ entities.PluginProperties) (entities.PaymentTransactionInfo, error) {
	return unsupportedTransaction("credit", paymentID, transactionID), nil
}

func (u *PaymentPluginUseCase) RefundPayment(_ context.Context, _ entities.CallContext, _, paymentID, transactionID, _ uuid.UUID, _ decimal.Decimal, _ entities.Currency, _ entities.PluginProperties) (entities.PaymentTransactionInfo, error) {
	return unsupportedTransaction("refund", paymentID, transactionID), nil
}

func (u *PaymentPluginUseCase) GetPaymentInfo(_ context.Context, _ entities.CallContext, _, _ uuid.UUID, _ entities.PluginProperties) ([]entities.PaymentTransactionInfo, error) {
	return []entities.PaymentTransactionInfo{}, nil
}

func (u *PaymentPluginUseCase) SearchPayments(_ context.Context, _ entities.CallContext, _ string, offset, _ int64, _ entities.PluginProperties) (entities.Page[entities.PaymentTransactionInfo], error) {
	return emptyPage[entities.PaymentTransactionInfo](offset), nil
}

func (u *PaymentPluginUseCase) DeletePaymentMethod(_ context.Context, _ entities.CallContext, _, _ uuid.UUID, _ entities.PluginProperties) error {
	return nil
}

func (u *PaymentPluginUseCase) GetPaymentMethodDetail(_ context.Context, _ entities.CallContext, _, paymentMethodID uuid.UUID, _ entities.PluginProperties) (entities.PaymentMethodDetail, error) {
	return entities.PaymentMethodDetail{PaymentMethodID: paymentMethodID}, nil
}

func (u *PaymentPluginUseCase) SetDefaultPaymentMethod(_ context.Context, _ entities.CallContext, _, _ uuid.UUID, _ entities.PluginProperties) error {
	return nil
}

func (u *PaymentPluginUseCase) GetPaymentMethods(_ context.Context, _ entities.CallContext, _ uuid.UUID, _ bool, _ entities.PluginProperties) ([]entities.PaymentMethodInfo, error) {
	return []entities.PaymentMethodInfo{}, nil
}

func (u *PaymentPluginUseCase) SearchPaymentMethods(_ context.Context, _ entities.CallContext, _ string, offset, _ int64, _ entities.PluginProperties) (entities.Page[entities.PaymentMethodDetail], error) {
	return emptyPage[entities.PaymentMethodDetail](offset), nil
}

func (u *PaymentPluginUseCase) ResetPaymentMethods(_ context.Context, _ entities.CallContext, _ uuid.UUID, _ []entities.PaymentMethodInfo, _ entities.PluginProperties) error {
	return nil
}

func (u *PaymentPluginUseCase) BuildFormDescriptor(_ context.Context, _ entities.CallContext, accountID uuid.UUID, _, _ entities.PluginProperties) (entities.FormDescriptor, error) {
	return entities.FormDescriptor{AccountID: accountID}, nil
}

func (u *PaymentPluginUseCase) ProcessNotification(_ context.Context, _ entities.CallContext, _ string, _ entities.PluginProperties) (entities.NotificationResult, error) {
	return entities.NotificationResult{Status: entities.PaymentPluginStatusUndefined}, nil
}

func unsupportedTransaction(op string, paymentID, transactionID uuid.UUID) entities.PaymentTransactionInfo {
	log.Printf("[plugin][usecase] %s not supported payment_id=%s transaction_id=%s", op, paymentID, transactionID)
	return entities.CanceledTransaction(paymentID, transactionID)
}

func emptyPage[T any](offset int64) entities.Page[T] {
	return entities.Page[T]{CurrentOffset: offset, NextOffset: offset, Items: []T{}}
}
