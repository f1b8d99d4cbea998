package accounts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"killbill_bluepay/internal/domain/entities"

	"github.com/google/uuid"
)

func TestKillBillAccountClient_GetAccountByID(t *testing.T) {
	accountID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/1.0/kb/accounts/"+accountID.String() {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.Header.Get("X-Killbill-ApiKey") != "bob" || r.Header.Get("X-Killbill-ApiSecret") != "lazar" {
				t.Errorf("missing tenant headers: %v", r.Header)
			}
			if r.Header.Get("X-Request-Id") != "req-1" {
				t.Errorf("missing request id")
			}
			user, pass, ok := r.BasicAuth()
			if !ok || user != "admin" || pass != "password" {
				t.Errorf("unexpected basic auth %s/%s", user, pass)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"accountId":"22222222-2222-2222-2222-222222222222","name":"JaneDoe","firstNameLength":4,"email":"jane@example.com","address1":"1 Main St","city":"Springfield","state":"IL","postalCode":"62701","country":"US","phone":"555-0100","currency":"USD"}`))
		}))
		defer srv.Close()

		c := NewKillBillAccountClient(Settings{BaseURL: srv.URL + "/", APIKey: "bob", APISecret: "lazar", Username: "admin", Password: "password"})
		account, err := c.GetAccountByID(context.Background(), accountID, entities.CallContext{RequestID: "req-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if account.ID != accountID || account.Name != "JaneDoe" || account.FirstNameLength != 4 || account.StateOrProvince != "IL" || account.PostalCode != "62701" {
			t.Fatalf("unexpected account: %+v", account)
		}
	})

	t.Run("not found", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		c := NewKillBillAccountClient(Settings{BaseURL: srv.URL})
		_, err := c.GetAccountByID(context.Background(), accountID, entities.CallContext{})
		if !errors.Is(err, ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c := NewKillBillAccountClient(Settings{BaseURL: srv.URL})
		_, err := c.GetAccountByID(context.Background(), accountID, entities.CallContext{})
		if !errors.Is(err, ErrAccountAccess) {
			t.Fatalf("expected ErrAccountAccess, got %v", err)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{`))
		}))
		defer srv.Close()

		c := NewKillBillAccountClient(Settings{BaseURL: srv.URL})
		_, err := c.GetAccountByID(context.Background(), accountID, entities.CallContext{})
		if !errors.Is(err, ErrAccountAccess) {
			t.Fatalf("expected ErrAccountAccess, got %v", err)
		}
	})
}
