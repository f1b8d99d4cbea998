package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	request "killbill_bluepay/internal/adapter/http/dto/request"
	response "killbill_bluepay/internal/adapter/http/dto/response"
	"killbill_bluepay/internal/domain/entities"
	"killbill_bluepay/internal/usecase"
	"killbill_bluepay/internal/usecase/interfaces"
	"killbill_bluepay/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	HeaderTenantID  = "X-Killbill-Tenant-Id"
	HeaderCreatedBy = "X-Killbill-CreatedBy"
	HeaderReason    = "X-Killbill-Reason"
	HeaderComment   = "X-Killbill-Comment"
	HeaderRequestID = "X-Request-Id"

	defaultSearchLimit = 100
)

var (
	errMissingTenant  = pkg.NewDomainErrorSimple("MISSING_TENANT", "Missing or invalid "+HeaderTenantID+" header", http.StatusBadRequest)
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// PaymentPluginHandler exposes the payment plugin operations over HTTP.

type PaymentPluginHandler struct {
	usecase usecase.IPaymentPluginUseCase
}

func NewPaymentPluginHandler(uc usecase.IPaymentPluginUseCase) *PaymentPluginHandler {
	return &PaymentPluginHandler{usecase: uc}
}

// RegisterPaymentMethod godoc
// @Summary      Register a payment method
// @Description  Tokenizes a card or bank account at the gateway and stores the token for the payment method.
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        X-Killbill-Tenant-Id  header  string  true  "Tenant id"
// @Param        account_id         path  string  true  "Account id"
// @Param        payment_method_id  path  string  true  "Payment method id"
// @Param        body  body  request.RegisterPaymentMethodRequest  true  "Payment method properties"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Failure      402  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /accounts/{account_id}/payment-methods/{payment_method_id} [post]
func (h *PaymentPluginHandler) RegisterPaymentMethod(c *gin.Context) {
	call, ok := callContext(c)
	if !ok {
		return
	}
	accountID, ok := uuidParam(c, "account_id")
	if !ok {
		return
	}
	paymentMethodID, ok := uuidParam(c, "payment_method_id")
	if !ok {
		return
	}
	var payload request.RegisterPaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[plugin][handler] invalid register payload payment_method_id=%s err=%v", paymentMethodID, err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	err := h.usecase.RegisterPaymentMethod(c.Request.Context(), call, accountID, paymentMethodID,
		request.ToPluginProperties(payload.PaymentMethodProperties), payload.IsDefault, request.ToPluginProperties(payload.Properties))
	if err != nil {
		log.Printf("[plugin][handler] register failed payment_method_id=%s err=%v", paymentMethodID, err)
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Purchase godoc
// @Summary      Purchase
// @Description  Charges the amount against the registered payment method. A declined sale is reported in the body with status ERROR.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Killbill-Tenant-Id  header  string  true  "Tenant id"
// @Param        account_id  path  string  true  "Account id"
// @Param        payment_id  path  string  true  "Payment id"
// @Param        body  body  request.TransactionRequest  true  "Transaction"
// @Success      200  {object}  response.PaymentTransactionInfoResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /accounts/{account_id}/payments/{payment_id}/purchase [post]
func (h *PaymentPluginHandler) Purchase(c *gin.Context) {
	h.transaction(c, "purchase", h.usecase.ExecuteSale)
}

// Authorize godoc
// @Summary      Authorize (not supported)
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Killbill-Tenant-Id  header  string  true  "Tenant id"
// @Param        account_id  path  string  true  "Account id"
// @Param        payment_id  path  string  true  "Payment id"
// @Param        body  body  request.TransactionRequest  true  "Transaction"
// @Success      200  {object}  response.PaymentTransactionInfoResponse
// @Router       /accounts/{account_id}/payments/{payment_id}/authorize [post]
func (h *PaymentPluginHandler) Authorize(c *gin.Context) {
	h.transaction(c, "authorize", h.usecase.AuthorizePayment)
}

// Capture godoc
// @Summary      Capture (not supported)
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Killbill-Tenant-Id  header  string  true  "Tenant id"
// @Param        account_id  path  string  true  "Account id"
// @Param        payment_id  path  string  true  "Payment id"
// @Param        body  body  request.TransactionRequest  true  "Transaction"
// @Success      200  {object}  response.PaymentTransactionInfoResponse
// @Router       /accounts/{account_id}/payments/{payment_id}/capture [post]
func (h *PaymentPluginHandler) Capture(c *gin.Context) {
	h.transaction(c, "capture", h.usecase.CapturePayment)
}

// Credit godoc
// @Summary      Credit (not supported)
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Killbill-Tenant-Id  header  string  true  "Tenant id"
// @Param        account_id  path  string  true  "Account id"
// @Param        payment_id  path  string  true  "Payment id"
// @Param        body  body  request.TransactionRequest  true  "Transaction"
// @Success      200  {object}  response.PaymentTransactionInfoResponse
// @Router       /accounts/{account_id}/payments/{payment_id}/credit [post]
func (h *PaymentPluginHandler) Credit(c *gin.Context) {
	h.transaction(c, "credit", h.usecase.CreditPayment)
}

// Refund godoc
// @Summary      Refund (not supported)
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Killbill-Tenant-Id  header  string  true  "Tenant id"
// @Param        account_id  path  string  true  "Account id"
// @Param        payment_id  path  string  true  "Payment id"
// @Param        body  body  request.TransactionRequest  true  "Transaction"
// @Success      200  {object}  response.PaymentTransactionInfoResponse
// @Router       /accounts/{account_id}/payments/{payment_id}/refund [post]
func (h *PaymentPluginHandler) Refund(c *gin.Context) {
	h.transaction(c, "refund", h.usecase.RefundPayment)
}

// Void godoc
// @Summary      Void (not supported)
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Killbill-Tenant-Id  header  string  true  "Tenant id"
// @Param        account_id  path  string  true  "Account id"
// @Param        payment_id  path  string  true  "Payment id"
// @Param        body  body  request.TransactionRequest  true  "Transaction"
// @Success      200  {object}  response.PaymentTransactionInfoResponse
// @Router       /accounts/{account_id}/payments/{payment_id}/void [post]
func (h *PaymentPluginHandler) Void(c *gin.Context) {
	h.transaction(c, "void", func(ctx context.Context, call entities.CallContext, accountID, paymentID, transactionID, paymentMethodID uuid.UUID, _ decimal.Decimal, _ entities.Currency, props entities.PluginProperties) (entities.PaymentTransactionInfo, error) {
		return h.usecase.VoidPayment(ctx, call, accountID, paymentID, transactionID, paymentMethodID, props)
	})
}

type transactionFunc func(ctx context.Context, call entities.CallContext, accountID, paymentID, transactionID, paymentMethodID uuid.UUID, amount decimal.Decimal, currency entities.Currency, props entities.PluginProperties) (entities.PaymentTransactionInfo, error)

func (h *PaymentPluginHandler) transaction(c *gin.Context, op string, fn transactionFunc) {
	call, ok := callContext(c)
	if !ok {
		return
	}
	accountID, ok := uuidParam(c, "account_id")
	if !ok {
		return
	}
	paymentID, ok := uuidParam(c, "payment_id")
	if !ok {
		return
	}
	var payload request.TransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[plugin][handler] invalid %s payload payment_id=%s err=%v", op, paymentID, err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	transactionID := payload.ResolveTransactionID()

	log.Printf("[plugin][handler] %s start payment_id=%s transaction_id=%s", op, paymentID, transactionID)
	info, err := fn(c.Request.Context(), call, accountID, paymentID, transactionID, payload.PaymentMethodID,
		payload.Amount, entities.Currency(payload.Currency), request.ToPluginProperties(payload.Properties))
	if err != nil {
		log.Printf("[plugin][handler] %s failed payment_id=%s err=%v", op, paymentID, err)
		writeError(c, err)
		return
	}
	log.Printf("[plugin][handler] %s done payment_id=%s status=%s", op, paymentID, info.Status)
	c.JSON(http.StatusOK, response.FromPaymentTransactionInfo(info))
}

// GetPaymentInfo godoc
// @Summary      Payment transactions
// @Tags         payments
// @Produce      json
// @Param        X-Killbill-Tenant-Id  header  string  true  "Tenant id"
// @Param        account_id  path  string  true  "Account id"
// @Param        payment_id  path  string  true  "Payment id"
// @Success      200  {array}  response.PaymentTransactionInfoResponse
// @Router       /accounts/{account_id}/payments/{payment_id} [get]
func (h *PaymentPluginHandler) GetPaymentInfo(c *gin.Context) {
	call, ok := callContext(c)
	if !ok {
		return
	}
	accountID, ok := uuidParam(c, "account_id")
	if !ok {
		return
	}
	paymentID, ok := uuidParam(c, "payment_id")
	if !ok {
		return
	}
	infos, err := h.usecase.GetPaymentInfo(c.Request.Context(), call, accountID, paymentID, nil)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentTransactionInfos(infos))
}

// SearchPayments godoc
// @Summary      Search payments
// @Tags         payments
// @Produce      json
// @Param        X-Killbill-Tenant-Id  header  string  true  "Tenant id"
// @Param        search_key  query  string  false  "Search key"
// @Param        offset      query  int     false  "Offset"
// @Param        limit       query  int     false  "Limit"
// @Success      200  {object}  response.PageResponse[response.PaymentTransactionInfoResponse]
// @Router       /payments/search [get]
func (h *PaymentPluginHandler) SearchPayments(c *gin.Context) {
	call, ok := callContext(c)
	if !ok {
		return
	}
	offset, limit, ok := pagination(c)
	if !ok {
		return
	}
	page, err := h.usecase.SearchPayments(c.Request.Context(), call, c.Query("search_key"), offset, limit, nil)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPage(page, response.FromPaymentTransactionInfo))
}

// DeletePaymentMethod godoc
// @Summary      Delete a payment method
// @Tags         payment-methods
// @Param        X-Killbill-Tenant-Id  header  string  true  "Tenant id"
// @Param        account_id         path  string  true  "Account id"
// @Param        payment_method_id  path  string  true  "Payment method id"
// @Success      204
// @Router       /accounts/{account_id}/payment-methods/{payment_method_id} [delete]
func (h *PaymentPluginHandler) DeletePaymentMethod(c *gin.Context) {
	h.paymentMethodCommand(c, h.usecase.DeletePaymentMethod)
}

// SetDefaultPaymentMethod godoc
// @Summary      Mark a payment method as default
// @Tags         payment-methods
// @Param        X-Killbill-Tenant-Id  header  string  true  "Tenant id"
// @Param        account_id         path  string  true  "Account id"
// @Param        payment_method_id  path  string  true  "Payment method id"
// @Success      204
// @Router       /accounts/{account_id}/payment-methods/{payment_method_id}/default [put]
func (h *PaymentPluginHandler) SetDefaultPaymentMethod(c *gin.Context) {
	h.paymentMethodCommand(c, h.usecase.SetDefaultPaymentMethod)
}

func (h *PaymentPluginHandler) paymentMethodCommand(c *gin.Context, fn func(ctx context.Context, call entities.CallContext, accountID, paymentMethodID uuid.UUID, props entities.PluginProperties) error) {
	call, ok := callContext(c)
	if !ok {
		return
	}
	accountID, ok := uuidParam(c, "account_id")
	if !ok {
		return
	}
	paymentMethodID, ok := uuidParam(c, "payment_method_id")
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), call, accountID, paymentMethodID, nil); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPaymentMethodDetail godoc
// @Summary      Payment method detail
// @Tags         payment-methods
// @Produce      json
// @Param        X-Killbill-Tenant-Id  header  string  true  "Tenant id"
// @Param        account_id         path  string  true  "Account id"
// @Param        payment_method_id  path  string  true  "Payment method id"
// @Success      200  {object}  response.PaymentMethodDetailResponse
// @Router       /accounts/{account_id}/payment-methods/{payment_method_id} [get]
func (h *PaymentPluginHandler) GetPaymentMethodDetail(c *gin.Context) {
	call, ok := callContext(c)
	if !ok {
		return
	}
	accountID, ok := uuidParam(c, "account_id")
	if !ok {
		return
	}
	paymentMethodID, ok := uuidParam(c, "payment_method_id")
	if !ok {
		return
	}
	detail, err := h.usecase.GetPaymentMethodDetail(c.Request.Context(), call, accountID, paymentMethodID, nil)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethodDetail(detail))
}

// GetPaymentMethods godoc
// @Summary      Payment methods of an account
// @Tags         payment-methods
// @Produce      json
// @Param        X-Killbill-Tenant-Id  header  string  true   "Tenant id"
// @Param        account_id            path    string  true   "Account id"
// @Param        refresh_from_gateway  query   bool    false  "Refresh from gateway"
// @Success      200  {array}  response.PaymentMethodInfoResponse
// @Router       /accounts/{account_id}/payment-methods [get]
func (h *PaymentPluginHandler) GetPaymentMethods(c *gin.Context) {
	call, ok := callContext(c)
	if !ok {
		return
	}
	accountID, ok := uuidParam(c, "account_id")
	if !ok {
		return
	}
	refresh, _ := strconv.ParseBool(c.DefaultQuery("refresh_from_gateway", "false"))
	methods, err := h.usecase.GetPaymentMethods(c.Request.Context(), call, accountID, refresh, nil)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethodInfos(methods))
}

// SearchPaymentMethods godoc
// @Summary      Search payment methods
// @Tags         payment-methods
// @Produce      json
// @Param        X-Killbill-Tenant-Id  header  string  true  "Tenant id"
// @Param        search_key  query  string  false  "Search key"
// @Param        offset      query  int     false  "Offset"
// @Param        limit       query  int     false  "Limit"
// @Success      200  {object}  response.PageResponse[response.PaymentMethodDetailResponse]
// @Router       /payment-methods/search [get]
func (h *PaymentPluginHandler) SearchPaymentMethods(c *gin.Context) {
	call, ok := callContext(c)
	if !ok {
		return
	}
	offset, limit, ok := pagination(c)
	if !ok {
		return
	}
	page, err := h.usecase.SearchPaymentMethods(c.Request.Context(), call, c.Query("search_key"), offset, limit, nil)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPage(page, response.FromPaymentMethodDetail))
}

// ResetPaymentMethods godoc
// @Summary      Reset the payment methods of an account
// @Tags         payment-methods
// @Accept       json
// @Param        X-Killbill-Tenant-Id  header  string  true  "Tenant id"
// @Param        account_id  path  string  true  "Account id"
// @Param        body  body  request.ResetPaymentMethodsRequest  true  "Payment methods"
// @Success      204
// @Router       /accounts/{account_id}/payment-methods/reset [post]
func (h *PaymentPluginHandler) ResetPaymentMethods(c *gin.Context) {
	call, ok := callContext(c)
	if !ok {
		return
	}
	accountID, ok := uuidParam(c, "account_id")
	if !ok {
		return
	}
	var payload request.ResetPaymentMethodsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	if err := h.usecase.ResetPaymentMethods(c.Request.Context(), call, accountID, payload.ToPaymentMethodInfos(accountID), request.ToPluginProperties(payload.Properties)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BuildFormDescriptor godoc
// @Summary      Hosted payment page descriptor
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        X-Killbill-Tenant-Id  header  string  true  "Tenant id"
// @Param        account_id  path  string  true  "Account id"
// @Param        body  body  request.FormDescriptorRequest  false  "Form fields"
// @Success      200  {object}  response.FormDescriptorResponse
// @Router       /accounts/{account_id}/form-descriptor [post]
func (h *PaymentPluginHandler) BuildFormDescriptor(c *gin.Context) {
	call, ok := callContext(c)
	if !ok {
		return
	}
	accountID, ok := uuidParam(c, "account_id")
	if !ok {
		return
	}
	var payload request.FormDescriptorRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}
	form, err := h.usecase.BuildFormDescriptor(c.Request.Context(), call, accountID, request.ToPluginProperties(payload.CustomFields), request.ToPluginProperties(payload.Properties))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFormDescriptor(form))
}

// ProcessNotification godoc
// @Summary      Gateway notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        X-Killbill-Tenant-Id  header  string  true  "Tenant id"
// @Param        body  body  request.NotificationRequest  true  "Notification"
// @Success      200  {object}  response.NotificationResponse
// @Router       /notifications [post]
func (h *PaymentPluginHandler) ProcessNotification(c *gin.Context) {
	call, ok := callContext(c)
	if !ok {
		return
	}
	var payload request.NotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	result, err := h.usecase.ProcessNotification(c.Request.Context(), call, payload.Notification, request.ToPluginProperties(payload.Properties))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNotificationResult(result))
}

func callContext(c *gin.Context) (entities.CallContext, bool) {
	tenantID, err := uuid.Parse(c.GetHeader(HeaderTenantID))
	if err != nil {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return entities.CallContext{}, false
	}
	return entities.CallContext{
		TenantID:  tenantID,
		UserName:  c.GetHeader(HeaderCreatedBy),
		Reason:    c.GetHeader(HeaderReason),
		Comment:   c.GetHeader(HeaderComment),
		RequestID: c.GetHeader(HeaderRequestID),
	}, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		appErr := errInvalidRequest.WithDetails("invalid " + name)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return uuid.Nil, false
	}
	return id, true
}

func pagination(c *gin.Context) (offset, limit int64, ok bool) {
	offset, errOffset := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	limit, errLimit := strconv.ParseInt(c.DefaultQuery("limit", strconv.Itoa(defaultSearchLimit)), 10, 64)
	if errOffset != nil || errLimit != nil || offset < 0 || limit < 0 {
		appErr := errInvalidRequest.WithDetails("invalid offset or limit")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, 0, false
	}
	return offset, limit, true
}

func writeError(c *gin.Context, err error) {
	appErr := mapPluginError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPluginError(err error) *pkg.AppError {
	var pErr *usecase.PaymentPluginError
	details := ""
	if errors.As(err, &pErr) {
		details = pErr.Message
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).WithDetails(details)
	case errors.Is(err, usecase.ErrCredentialResolution):
		return pkg.NewDomainErrorSimple("CREDENTIALS_NOT_CONFIGURED", "Gateway credentials not configured for tenant", http.StatusUnprocessableEntity).WithDetails(details)
	case errors.Is(err, usecase.ErrTokenResolution):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_REGISTERED", "Payment method not registered", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNameSplit):
		return pkg.NewDomainErrorSimple("INVALID_ACCOUNT_NAME", "Account name cannot be split", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrAccountNotFound):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_FOUND", "Account not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAccountLookup):
		return pkg.NewDomainError("ACCOUNT_SERVICE_UNAVAILABLE", "Account service unavailable", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayDeclined):
		appErr := pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment provider declined the request", http.StatusPaymentRequired)
		if pErr != nil && pErr.GatewayMessage != "" {
			return appErr.WithDetails(pErr.GatewayMessage)
		}
		return appErr
	case errors.Is(err, usecase.ErrGatewayTransport):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrStore):
		return pkg.NewDomainError("STORE_ERROR", "Storage unavailable", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
