package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"killbill_bluepay/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var testCreds = entities.TenantCredentials{AccountID: "100012345678", SecretKey: "SECRET", Test: true}

// bluePayServer records the last form it received and answers with reply.
func bluePayServer(t *testing.T, status int, reply url.Values) (*httptest.Server, *url.Values) {
	t.Helper()
	got := &url.Values{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("unexpected content type %s", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		*got = r.PostForm
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply.Encode()))
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func expectedSeal(secret, data string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestBluePayGateway_RegisterPaymentMethod(t *testing.T) {
	customer := entities.CustomerProfile{FirstName: "Jane", LastName: "Doe", City: "Springfield", Email: "jane@example.com"}

	t.Run("card", func(t *testing.T) {
		srv, got := bluePayServer(t, http.StatusOK, url.Values{
			"STATUS":          {"1"},
			"MESSAGE":         {"Approved Auth"},
			"TRANS_ID":        {"100200300400"},
			"AVS":             {"Y"},
			"CVV2":            {"M"},
			"AUTH_CODE":       {"AB12"},
			"PAYMENT_ACCOUNT": {"xxxxxxxxxxxx1111"},
			"CARD_TYPE":       {"VISA"},
		})
		gw := NewBluePayGateway(srv.URL, time.Second)

		card := entities.CardInstrument{Number: "4111111111111111", ExpirationMonth: "7", ExpirationYear: "25", CVV2: "123"}
		resp := gw.RegisterPaymentMethod(context.Background(), testCreds, customer, card, "pm-1", "10.0.0.1")

		if !resp.Success || resp.Err != nil {
			t.Fatalf("expected success, got %+v", resp)
		}
		if resp.TransactionID != "100200300400" || resp.AuthCode != "AB12" || resp.CardType != "VISA" || resp.MaskedAccount != "xxxxxxxxxxxx1111" || resp.AVS != "Y" || resp.CVV2 != "M" {
			t.Fatalf("unexpected response: %+v", resp)
		}

		want := map[string]string{
			"ACCOUNT_ID":      "100012345678",
			"MODE":            "TEST",
			"TRANS_TYPE":      "AUTH",
			"PAYMENT_TYPE":    "CREDIT",
			"PAYMENT_ACCOUNT": "4111111111111111",
			"CARD_EXPIRE":     "0725",
			"CARD_CVV2":       "123",
			"AMOUNT":          "0.00",
			"MEMO":            "authorization",
			"ORDER_ID":        "pm-1",
			"CUSTOMER_IP":     "10.0.0.1",
			"NAME1":           "Jane",
			"NAME2":           "Doe",
			"CITY":            "Springfield",
			"EMAIL":           "jane@example.com",
			"RESPONSEVERSION": "3",
			"TPS_HASH_TYPE":   "HMAC_SHA512",
		}
		for k, v := range want {
			if got.Get(k) != v {
				t.Errorf("%s: expected %q, got %q", k, v, got.Get(k))
			}
		}
		if got.Has("ADDR1") || got.Has("MASTER_ID") {
			t.Errorf("empty fields must not be sent: %v", *got)
		}
		seal := expectedSeal("SECRET", "100012345678"+"AUTH"+"0.00"+""+"Jane"+"4111111111111111")
		if got.Get("TAMPER_PROOF_SEAL") != seal {
			t.Errorf("unexpected seal %s", got.Get("TAMPER_PROOF_SEAL"))
		}
	})

	t.Run("ach", func(t *testing.T) {
		srv, got := bluePayServer(t, http.StatusOK, url.Values{"STATUS": {"1"}, "MESSAGE": {"App ACH Auth"}, "TRANS_ID": {"555"}})
		gw := NewBluePayGateway(srv.URL, time.Second)

		ach := entities.ACHInstrument{RoutingNumber: "021000021", AccountNumber: "123456789"}
		resp := gw.RegisterPaymentMethod(context.Background(), testCreds, customer, ach, "pm-2", "")
		if !resp.Success {
			t.Fatalf("expected success, got %+v", resp)
		}
		if got.Get("PAYMENT_TYPE") != "ACH" || got.Get("PAYMENT_ACCOUNT") != "C:021000021:123456789" {
			t.Fatalf("unexpected ach fields: %v", *got)
		}
		if got.Has("CARD_EXPIRE") || got.Has("CUSTOMER_IP") {
			t.Fatalf("unexpected card fields on ach request: %v", *got)
		}
	})

	t.Run("declined", func(t *testing.T) {
		srv, _ := bluePayServer(t, http.StatusOK, url.Values{"STATUS": {"0"}, "MESSAGE": {"CARD DECLINED"}})
		gw := NewBluePayGateway(srv.URL, time.Second)

		resp := gw.RegisterPaymentMethod(context.Background(), testCreds, customer, entities.CardInstrument{Number: "4"}, "pm-3", "")
		if resp.Success || resp.Err != nil || resp.Status != "0" || resp.Message != "CARD DECLINED" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestBluePayGateway_ExecuteSale(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		srv, got := bluePayServer(t, http.StatusOK, url.Values{"STATUS": {"1"}, "MESSAGE": {"Approved Sale"}, "TRANS_ID": {"T999"}, "AUTH_CODE": {"A1"}})
		gw := NewBluePayGateway(srv.URL, time.Second)

		resp := gw.ExecuteSale(context.Background(), testCreds, decimal.RequireFromString("10.5"), "T123", "Kill Bill payment.", "tx-1")
		if !resp.Success || resp.TransactionID != "T999" || resp.AuthCode != "A1" {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if got.Get("TRANS_TYPE") != "SALE" || got.Get("AMOUNT") != "10.50" || got.Get("MASTER_ID") != "T123" || got.Get("ORDER_ID") != "tx-1" || got.Get("MEMO") != "Kill Bill payment." {
			t.Fatalf("unexpected sale fields: %v", *got)
		}
		seal := expectedSeal("SECRET", "100012345678"+"SALE"+"10.50"+"T123")
		if got.Get("TAMPER_PROOF_SEAL") != seal {
			t.Fatalf("unexpected seal %s", got.Get("TAMPER_PROOF_SEAL"))
		}
	})

	t.Run("duplicate is not a success", func(t *testing.T) {
		srv, _ := bluePayServer(t, http.StatusOK, url.Values{"STATUS": {"1"}, "MESSAGE": {"DUPLICATE"}, "TRANS_ID": {"T1"}})
		gw := NewBluePayGateway(srv.URL, time.Second)

		resp := gw.ExecuteSale(context.Background(), testCreds, decimal.NewFromInt(1), "T123", "", "tx-2")
		if resp.Success || resp.Message != "DUPLICATE" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("live mode", func(t *testing.T) {
		srv, got := bluePayServer(t, http.StatusOK, url.Values{"STATUS": {"1"}})
		gw := NewBluePayGateway(srv.URL, time.Second)

		live := testCreds
		live.Test = false
		gw.ExecuteSale(context.Background(), live, decimal.NewFromInt(1), "T123", "", "tx-3")
		if got.Get("MODE") != "LIVE" {
			t.Fatalf("expected LIVE, got %s", got.Get("MODE"))
		}
	})

	t.Run("http error status", func(t *testing.T) {
		srv, _ := bluePayServer(t, http.StatusInternalServerError, url.Values{})
		gw := NewBluePayGateway(srv.URL, time.Second)

		resp := gw.ExecuteSale(context.Background(), testCreds, decimal.NewFromInt(1), "T123", "", "tx-4")
		if resp.Success || resp.Err == nil {
			t.Fatalf("expected transport failure, got %+v", resp)
		}
	})

	t.Run("unreachable gateway", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		endpoint := srv.URL
		srv.Close()
		gw := NewBluePayGateway(endpoint, time.Second)

		resp := gw.ExecuteSale(context.Background(), testCreds, decimal.NewFromInt(1), "T123", "", "tx-5")
		if resp.Success || resp.Err == nil || resp.Message == "" {
			t.Fatalf("expected transport failure, got %+v", resp)
		}
	})

	t.Run("body without status", func(t *testing.T) {
		srv, _ := bluePayServer(t, http.StatusOK, url.Values{"MESSAGE": {"?"}})
		gw := NewBluePayGateway(srv.URL, time.Second)

		resp := gw.ExecuteSale(context.Background(), testCreds, decimal.NewFromInt(1), "T123", "", "tx-6")
		if resp.Success || resp.Err == nil {
			t.Fatalf("expected protocol failure, got %+v", resp)
		}
	})
}

func TestNewBluePayGateway_Defaults(t *testing.T) {
	gw := NewBluePayGateway("", 0)
	if gw.url != DefaultBluePayURL || gw.httpClient.Timeout != DefaultBluePayTimeout {
		t.Fatalf("unexpected defaults url=%s timeout=%s", gw.url, gw.httpClient.Timeout)
	}
}
