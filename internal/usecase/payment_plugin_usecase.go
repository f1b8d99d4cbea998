package usecase

//go:generate mockgen -source=payment_plugin_usecase.go -destination=../adapter/http/handlers/mocks/payment_plugin_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"killbill_bluepay/internal/domain/entities"
	"killbill_bluepay/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	opRegisterPaymentMethod = "register-payment-method"
	opExecuteSale           = "execute-sale"

	defaultSaleDescription = "Kill Bill payment."
)

// IPaymentPluginUseCase is the operation set the payment orchestrator invokes on the plugin.
//
// Only RegisterPaymentMethod and ExecuteSale reach the gateway. Every other
// operation is a neutral stub (see payment_plugin_stubs.go).

type IPaymentPluginUseCase interface {
	RegisterPaymentMethod(ctx context.Context, call entities.CallContext, accountID, paymentMethodID uuid.UUID, paymentMethodProps entities.PluginProperties, setDefault bool, props entities.PluginProperties) error
	ExecuteSale(ctx context.Context, call entities.CallContext, accountID, paymentID, transactionID, paymentMethodID uuid.UUID, amount decimal.Decimal, currency entities.Currency, props entities.PluginProperties) (entities.PaymentTransactionInfo, error)

	AuthorizePayment(ctx context.Context, call entities.CallContext, accountID, paymentID, transactionID, paymentMethodID uuid.UUID, amount decimal.Decimal, currency entities.Currency, props entities.PluginProperties) (entities.PaymentTransactionInfo, error)
	CapturePayment(ctx context.Context, call entities.CallContext, accountID, paymentID, transactionID, paymentMethodID uuid.UUID, amount decimal.Decimal, currency entities.Currency, props entities.PluginProperties) (entities.PaymentTransactionInfo, error)
	VoidPayment(ctx context.Context, call entities.CallContext, accountID, paymentID, transactionID, paymentMethodID uuid.UUID, props entities.PluginProperties) (entities.PaymentTransactionInfo, error)
	CreditPayment(ctx context.Context, call entities.CallContext, accountID, paymentID, transactionID, paymentMethodID uuid.UUID, amount decimal.Decimal, currency entities.Currency, props entities.PluginProperties) (entities.PaymentTransactionInfo, error)
	RefundPayment(ctx context.Context, call entities.CallContext, accountID, paymentID, transactionID, paymentMethodID uuid.UUID, amount decimal.Decimal, currency entities.Currency, props entities.PluginProperties) (entities.PaymentTransactionInfo, error)
	GetPaymentInfo(ctx context.Context, call entities.CallContext, accountID, paymentID uuid.UUID, props entities.PluginProperties) ([]entities.PaymentTransactionInfo, error)
	SearchPayments(ctx context.Context, call entities.CallContext, searchKey string, offset, limit int64, props entities.PluginProperties) (entities.Page[entities.PaymentTransactionInfo], error)

	DeletePaymentMethod(ctx context.Context, call entities.CallContext, accountID, paymentMethodID uuid.UUID, props entities.PluginProperties) error
	GetPaymentMethodDetail(ctx context.Context, call entities.CallContext, accountID, paymentMethodID uuid.UUID, props entities.PluginProperties) (entities.PaymentMethodDetail, error)
	SetDefaultPaymentMethod(ctx context.Context, call entities.CallContext, accountID, paymentMethodID uuid.UUID, props entities.PluginProperties) error
	GetPaymentMethods(ctx context.Context, call entities.CallContext, accountID uuid.UUID, refreshFromGateway bool, props entities.PluginProperties) ([]entities.PaymentMethodInfo, error)
	SearchPaymentMethods(ctx context.Context, call entities.CallContext, searchKey string, offset, limit int64, props entities.PluginProperties) (entities.Page[entities.PaymentMethodDetail], error)
	ResetPaymentMethods(ctx context.Context, call entities.CallContext, accountID uuid.UUID, methods []entities.PaymentMethodInfo, props entities.PluginProperties) error

	BuildFormDescriptor(ctx context.Context, call entities.CallContext, accountID uuid.UUID, customFields, props entities.PluginProperties) (entities.FormDescriptor, error)
	ProcessNotification(ctx context.Context, call entities.CallContext, notification string, props entities.PluginProperties) (entities.NotificationResult, error)
}

type PaymentPluginUseCase struct {
	credentials interfaces.ICredentialsRepository
	tokens      interfaces.ITokenRepository
	accounts    interfaces.IAccountService
	gateway     interfaces.IPaymentGateway
	now         func() time.Time
}

var _ IPaymentPluginUseCase = (*PaymentPluginUseCase)(nil)

func NewPaymentPluginUseCase(credentials interfaces.ICredentialsRepository, tokens interfaces.ITokenRepository, accounts interfaces.IAccountService, gateway interfaces.IPaymentGateway) *PaymentPluginUseCase {
	return &PaymentPluginUseCase{
		credentials: credentials,
		tokens:      tokens,
		accounts:    accounts,
		gateway:     gateway,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// RegisterPaymentMethod tokenizes the card or bank account described by
// paymentMethodProps and stores the gateway token under paymentMethodID.
//
// A declined or failed tokenization is an error. A token store failure after a
// successful gateway call is also an error; the gateway side is not reversed.
func (u *PaymentPluginUseCase) RegisterPaymentMethod(ctx context.Context, call entities.CallContext, accountID, paymentMethodID uuid.UUID, paymentMethodProps entities.PluginProperties, setDefault bool, props entities.PluginProperties) error {
	log.Printf("[plugin][usecase] register start tenant_id=%s account_id=%s payment_method_id=%s set_default=%t props=%d", call.TenantID, accountID, paymentMethodID, setDefault, len(paymentMethodProps))
	if u.gateway == nil {
		log.Printf("[plugin][usecase] gateway not configured payment_method_id=%s", paymentMethodID)
		return newPluginError(opRegisterPaymentMethod, "could not request token", ErrGatewayNotConfigured, nil)
	}

	creds, err := u.resolveCredentials(ctx, opRegisterPaymentMethod, call.TenantID)
	if err != nil {
		return err
	}

	req, err := ParsePaymentMethodRequest(paymentMethodProps)
	if err != nil {
		log.Printf("[plugin][usecase] invalid payment method properties payment_method_id=%s err=%v", paymentMethodID, err)
		return err
	}

	account, err := u.accounts.GetAccountByID(ctx, accountID, call)
	if err != nil {
		log.Printf("[plugin][usecase] could not retrieve account account_id=%s err=%v", accountID, err)
		return newPluginError(opRegisterPaymentMethod, "could not retrieve account", ErrAccountLookup, err)
	}
	customer, err := account.CustomerProfile()
	if err != nil {
		log.Printf("[plugin][usecase] could not split account name account_id=%s first_name_length=%d err=%v", accountID, account.FirstNameLength, err)
		return newPluginError(opRegisterPaymentMethod, "could not build customer profile", ErrNameSplit, err)
	}

	log.Printf("[plugin][usecase] requesting token payment_method_id=%s payment_type=%s gateway_account=%s mode=%s", paymentMethodID, req.Instrument.PaymentType(), creds.MaskedAccountID(), creds.Mode())
	resp := u.gateway.RegisterPaymentMethod(ctx, creds, customer, req.Instrument, paymentMethodID.String(), req.CustomerIP)
	logGatewayResponse("token request", paymentMethodID.String(), resp)
	if resp.Err != nil {
		return newPluginError(opRegisterPaymentMethod, "could not request token", ErrGatewayTransport, resp.Err)
	}
	if !resp.Success {
		return &PaymentPluginError{
			Op:             opRegisterPaymentMethod,
			Message:        "token request unsuccessful",
			GatewayMessage: resp.Message,
			Err:            fmt.Errorf("%w: status=%s", ErrGatewayDeclined, resp.Status),
		}
	}

	token := entities.PaymentMethodToken{
		PaymentMethodID: paymentMethodID,
		TransactionID:   resp.TransactionID,
		UpdatedAt:       u.now(),
	}
	if err := u.tokens.Upsert(ctx, token); err != nil {
		log.Printf("[plugin][usecase] could not save transaction id payment_method_id=%s transaction_id=%s err=%v", paymentMethodID, resp.TransactionID, err)
		return newPluginError(opRegisterPaymentMethod, "could not save transaction ID", ErrStore, err)
	}
	log.Printf("[plugin][usecase] register success payment_method_id=%s transaction_id=%s", paymentMethodID, resp.TransactionID)
	return nil
}

// ExecuteSale charges amount against the token registered for paymentMethodID.
//
// Once credentials, account and token are resolved the call always returns a
// transaction record; a declined or unreachable gateway yields Status=ERROR
// instead of an error.
func (u *PaymentPluginUseCase) ExecuteSale(ctx context.Context, call entities.CallContext, accountID, paymentID, transactionID, paymentMethodID uuid.UUID, amount decimal.Decimal, currency entities.Currency, props entities.PluginProperties) (entities.PaymentTransactionInfo, error) {
	log.Printf("[plugin][usecase] sale start tenant_id=%s account_id=%s payment_id=%s transaction_id=%s payment_method_id=%s amount=%s currency=%s", call.TenantID, accountID, paymentID, transactionID, paymentMethodID, amount.String(), currency)
	if amount.IsNegative() {
		return entities.PaymentTransactionInfo{}, invalidInput(opExecuteSale, "negative amount: %s", amount.String())
	}
	if u.gateway == nil {
		log.Printf("[plugin][usecase] gateway not configured payment_id=%s", paymentID)
		return entities.PaymentTransactionInfo{}, newPluginError(opExecuteSale, "could not make payment", ErrGatewayNotConfigured, nil)
	}

	creds, err := u.resolveCredentials(ctx, opExecuteSale, call.TenantID)
	if err != nil {
		return entities.PaymentTransactionInfo{}, err
	}

	if _, err := u.accounts.GetAccountByID(ctx, accountID, call); err != nil {
		log.Printf("[plugin][usecase] could not retrieve account account_id=%s err=%v", accountID, err)
		return entities.PaymentTransactionInfo{}, fmt.Errorf("%w: %w", ErrAccountLookup, err)
	}

	token, err := u.tokens.GetByPaymentMethodID(ctx, paymentMethodID)
	if err != nil {
		log.Printf("[plugin][usecase] could not retrieve transaction id payment_method_id=%s err=%v", paymentMethodID, err)
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return entities.PaymentTransactionInfo{}, newPluginError(opExecuteSale, "could not retrieve transaction ID", ErrTokenResolution, err)
		}
		return entities.PaymentTransactionInfo{}, newPluginError(opExecuteSale, "could not retrieve transaction ID", ErrStore, err)
	}

	description := saleDescription(props)
	resp := u.gateway.ExecuteSale(ctx, creds, amount, token.TransactionID, description, transactionID.String())
	logGatewayResponse("payment", transactionID.String(), resp)

	status := entities.PaymentPluginStatusError
	if resp.Success {
		status = entities.PaymentPluginStatusProcessed
	}
	now := u.now()
	echoed := amount
	return entities.PaymentTransactionInfo{
		PaymentID:                paymentID,
		TransactionID:            transactionID,
		Type:                     entities.TransactionTypePurchase,
		Amount:                   &echoed,
		Currency:                 currency,
		CreatedDate:              &now,
		EffectiveDate:            &now,
		Status:                   status,
		GatewayError:             resp.Message,
		GatewayErrorCode:         resp.Status,
		FirstPaymentReferenceID:  resp.TransactionID,
		SecondPaymentReferenceID: resp.AuthCode,
	}, nil
}

func (u *PaymentPluginUseCase) resolveCredentials(ctx context.Context, op string, tenantID uuid.UUID) (entities.TenantCredentials, error) {
	creds, err := u.credentials.GetByTenantID(ctx, tenantID)
	if err != nil {
		log.Printf("[plugin][usecase] could not retrieve credentials tenant_id=%s err=%v", tenantID, err)
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return entities.TenantCredentials{}, newPluginError(op, "could not retrieve credentials", ErrCredentialResolution, err)
		}
		return entities.TenantCredentials{}, newPluginError(op, "could not retrieve credentials", ErrStore, err)
	}
	if strings.TrimSpace(creds.AccountID) == "" {
		log.Printf("[plugin][usecase] missing gateway account id tenant_id=%s", tenantID)
		return entities.TenantCredentials{}, newPluginError(op, "missing accountId", ErrCredentialResolution, nil)
	}
	if strings.TrimSpace(creds.SecretKey) == "" {
		log.Printf("[plugin][usecase] missing gateway secret key tenant_id=%s", tenantID)
		return entities.TenantCredentials{}, newPluginError(op, "missing secretKey", ErrCredentialResolution, nil)
	}
	return creds, nil
}

func logGatewayResponse(what, orderID string, resp entities.GatewayResponse) {
	outcome := "successful"
	if !resp.Success {
		outcome = "unsuccessful"
	}
	log.Printf("[plugin][usecase] gateway %s %s order_id=%s success=%t status=%s trans_id=%s message=%q avs=%s cvv2=%s masked_account=%s card_type=%s auth_code=%s",
		what, outcome, orderID, resp.Success, resp.Status, resp.TransactionID, resp.Message, resp.AVS, resp.CVV2, resp.MaskedAccount, resp.CardType, resp.AuthCode)
}
