package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"killbill_bluepay/internal/adapter/http/handlers"
	"killbill_bluepay/internal/adapter/http/handlers/mocks"
	"killbill_bluepay/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

const (
	testTenant  = "11111111-1111-1111-1111-111111111111"
	testAccount = "22222222-2222-2222-2222-222222222222"
	testMethod  = "33333333-3333-3333-3333-333333333333"
)

func TestAddPingRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	addPingRoutes(r.Group("/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestAddPluginRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentPluginUseCase(ctrl)

	r := gin.New()
	addPluginRoutes(r.Group("/v1"), handlers.NewPaymentPluginHandler(uc))

	t.Run("reset is not taken as a payment method id", func(t *testing.T) {
		accountID := uuid.MustParse(testAccount)
		want := []entities.PaymentMethodInfo{{AccountID: accountID, PaymentMethodID: uuid.MustParse(testMethod), IsDefault: true}}
		uc.EXPECT().ResetPaymentMethods(gomock.Any(), gomock.Any(), accountID, want, gomock.Any()).Return(nil)

		body := `{"payment_methods":[{"payment_method_id":"` + testMethod + `","is_default":true}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/accounts/"+testAccount+"/payment-methods/reset", strings.NewReader(body))
		req.Header.Set(handlers.HeaderTenantID, testTenant)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("set default", func(t *testing.T) {
		uc.EXPECT().SetDefaultPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/accounts/"+testAccount+"/payment-methods/"+testMethod+"/default", nil)
		req.Header.Set(handlers.HeaderTenantID, testTenant)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
