package payments

import (
	"context"
	"log"
	"strconv"
	"time"

	"killbill_bluepay/internal/domain/entities"
	"killbill_bluepay/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// MockGateway approves every request without leaving the process.
type MockGateway struct{}

var _ interfaces.IPaymentGateway = MockGateway{}

func (MockGateway) RegisterPaymentMethod(_ context.Context, _ entities.TenantCredentials, _ entities.CustomerProfile, instrument entities.PaymentInstrument, clientOrderID, _ string) entities.GatewayResponse {
	id := mockTransactionID()
	log.Printf("[plugin][gateway] mock token success order_id=%s payment_type=%s trans_id=%s", clientOrderID, instrument.PaymentType(), id)
	return entities.GatewayResponse{Success: true, Status: bluePayStatusApproved, Message: "APPROVED", TransactionID: id}
}

func (MockGateway) ExecuteSale(_ context.Context, _ entities.TenantCredentials, amount decimal.Decimal, token, _ string, clientOrderID string) entities.GatewayResponse {
	id := mockTransactionID()
	log.Printf("[plugin][gateway] mock sale success order_id=%s master_id=%s amount=%s trans_id=%s", clientOrderID, token, amount.StringFixed(2), id)
	return entities.GatewayResponse{Success: true, Status: bluePayStatusApproved, Message: "APPROVED", TransactionID: id, AuthCode: "MOCK"}
}

func mockTransactionID() string {
	return strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
}
