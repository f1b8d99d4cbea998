package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"killbill_bluepay/internal/domain/entities"
	"killbill_bluepay/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	DefaultBluePayURL     = "https://secure.bluepay.com/interfaces/bp20post"
	DefaultBluePayTimeout = 30 * time.Second

	bluePayTransAuth = "AUTH"
	bluePayTransSale = "SALE"

	bluePayPaymentCredit = "CREDIT"
	bluePayPaymentACH    = "ACH"

	bluePayStatusApproved   = "1"
	bluePayMessageDuplicate = "DUPLICATE"

	registrationAmount = "0.00"
	registrationMemo   = "authorization"

	maxResponseBytes = 64 << 10
)

// BluePayGateway talks to the BluePay 2.0 post interface (bp20post).
//
// Every request is a form POST signed with a tamper proof seal; the answer is a
// URL-encoded body. Transport and protocol faults come back as a failed
// GatewayResponse with Err set.

type BluePayGateway struct {
	httpClient *http.Client
	url        string
}

var _ interfaces.IPaymentGateway = (*BluePayGateway)(nil)

func NewBluePayGateway(endpoint string, timeout time.Duration) *BluePayGateway {
	if endpoint == "" {
		endpoint = DefaultBluePayURL
	}
	if timeout <= 0 {
		timeout = DefaultBluePayTimeout
	}
	log.Printf("[plugin][gateway] BluePay client initialized url=%s timeout=%s", endpoint, timeout)
	return &BluePayGateway{httpClient: &http.Client{Timeout: timeout}, url: endpoint}
}

func (g *BluePayGateway) RegisterPaymentMethod(ctx context.Context, creds entities.TenantCredentials, customer entities.CustomerProfile, instrument entities.PaymentInstrument, clientOrderID, customerIP string) entities.GatewayResponse {
	form := url.Values{}
	form.Set("TRANS_TYPE", bluePayTransAuth)
	form.Set("AMOUNT", registrationAmount)
	form.Set("MEMO", registrationMemo)
	form.Set("ORDER_ID", clientOrderID)
	if customerIP != "" {
		form.Set("CUSTOMER_IP", customerIP)
	}
	setCustomer(form, customer)

	switch in := instrument.(type) {
	case entities.CardInstrument:
		form.Set("PAYMENT_TYPE", bluePayPaymentCredit)
		form.Set("PAYMENT_ACCOUNT", in.Number)
		form.Set("CARD_EXPIRE", in.ExpirationDate())
		form.Set("CARD_CVV2", in.CVV2)
	case entities.ACHInstrument:
		form.Set("PAYMENT_TYPE", bluePayPaymentACH)
		form.Set("PAYMENT_ACCOUNT", "C:"+in.RoutingNumber+":"+in.AccountNumber)
	default:
		err := fmt.Errorf("bluepay: unsupported instrument %T", instrument)
		log.Printf("[plugin][gateway] %v", err)
		return entities.FailedGatewayResponse(err)
	}

	return g.process(ctx, creds, form)
}

func (g *BluePayGateway) ExecuteSale(ctx context.Context, creds entities.TenantCredentials, amount decimal.Decimal, token, description, clientOrderID string) entities.GatewayResponse {
	form := url.Values{}
	form.Set("TRANS_TYPE", bluePayTransSale)
	form.Set("AMOUNT", amount.StringFixed(2))
	form.Set("MASTER_ID", token)
	form.Set("MEMO", description)
	form.Set("ORDER_ID", clientOrderID)
	return g.process(ctx, creds, form)
}

func (g *BluePayGateway) process(ctx context.Context, creds entities.TenantCredentials, form url.Values) entities.GatewayResponse {
	form.Set("ACCOUNT_ID", creds.AccountID)
	form.Set("MODE", creds.Mode())
	form.Set("RESPONSEVERSION", "3")
	form.Set("TPS_HASH_TYPE", "HMAC_SHA512")
	form.Set("TAMPER_PROOF_SEAL", tamperProofSeal(creds.SecretKey, form))

	transType := form.Get("TRANS_TYPE")
	log.Printf("[plugin][gateway] bluepay %s start order_id=%s mode=%s", transType, form.Get("ORDER_ID"), creds.Mode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, strings.NewReader(form.Encode()))
	if err != nil {
		return entities.FailedGatewayResponse(fmt.Errorf("bluepay: build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[plugin][gateway] bluepay %s request failed err=%v", transType, err)
		return entities.FailedGatewayResponse(fmt.Errorf("bluepay: %w", err))
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		log.Printf("[plugin][gateway] bluepay %s read failed err=%v", transType, err)
		return entities.FailedGatewayResponse(fmt.Errorf("bluepay: read response: %w", err))
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Printf("[plugin][gateway] bluepay %s unexpected http status=%d", transType, res.StatusCode)
		return entities.FailedGatewayResponse(fmt.Errorf("bluepay: unexpected http status %d", res.StatusCode))
	}

	resp, err := parseBluePayResponse(body)
	if err != nil {
		log.Printf("[plugin][gateway] bluepay %s decode failed err=%v", transType, err)
		return entities.FailedGatewayResponse(err)
	}
	return resp
}

func setCustomer(form url.Values, c entities.CustomerProfile) {
	fields := map[string]string{
		"NAME1":   c.FirstName,
		"NAME2":   c.LastName,
		"ADDR1":   c.Address1,
		"ADDR2":   c.Address2,
		"CITY":    c.City,
		"STATE":   c.State,
		"ZIP":     c.Zip,
		"COUNTRY": c.Country,
		"PHONE":   c.Phone,
		"EMAIL":   c.Email,
	}
	for k, v := range fields {
		if v != "" {
			form.Set(k, v)
		}
	}
}

// tamperProofSeal signs ACCOUNT_ID+TRANS_TYPE+AMOUNT+MASTER_ID+NAME1+PAYMENT_ACCOUNT.
func tamperProofSeal(secretKey string, form url.Values) string {
	var b strings.Builder
	for _, k := range []string{"ACCOUNT_ID", "TRANS_TYPE", "AMOUNT", "MASTER_ID", "NAME1", "PAYMENT_ACCOUNT"} {
		b.WriteString(form.Get(k))
	}
	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write([]byte(b.String()))
	return hex.EncodeToString(mac.Sum(nil))
}

func parseBluePayResponse(body []byte) (entities.GatewayResponse, error) {
	values, err := url.ParseQuery(strings.TrimSpace(string(body)))
	if err != nil {
		return entities.GatewayResponse{}, fmt.Errorf("bluepay: decode response: %w", err)
	}
	status := values.Get("STATUS")
	if status == "" {
		return entities.GatewayResponse{}, fmt.Errorf("bluepay: response without STATUS")
	}
	message := values.Get("MESSAGE")
	return entities.GatewayResponse{
		Success:       status == bluePayStatusApproved && message != bluePayMessageDuplicate,
		Status:        status,
		Message:       message,
		TransactionID: values.Get("TRANS_ID"),
		AVS:           values.Get("AVS"),
		CVV2:          values.Get("CVV2"),
		MaskedAccount: values.Get("PAYMENT_ACCOUNT"),
		CardType:      values.Get("CARD_TYPE"),
		AuthCode:      values.Get("AUTH_CODE"),
	}, nil
}
