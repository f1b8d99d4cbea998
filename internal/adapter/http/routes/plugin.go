package routes

import (
	"killbill_bluepay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAccounts       = "/accounts/:account_id"
	PathPaymentMethods = "/payment-methods"
	PathPayments       = "/payments"
	PathNotifications  = "/notifications"
)

func addPluginRoutes(rg *gin.RouterGroup, h *handlers.PaymentPluginHandler) {
	account := rg.Group(PathAccounts)
	{
		methods := account.Group(PathPaymentMethods)
		methods.GET("", h.GetPaymentMethods)
		methods.POST("/reset", h.ResetPaymentMethods)
		methods.POST("/:payment_method_id", h.RegisterPaymentMethod)
		methods.GET("/:payment_method_id", h.GetPaymentMethodDetail)
		methods.DELETE("/:payment_method_id", h.DeletePaymentMethod)
		methods.PUT("/:payment_method_id/default", h.SetDefaultPaymentMethod)

		payments := account.Group(PathPayments + "/:payment_id")
		payments.GET("", h.GetPaymentInfo)
		payments.POST("/authorize", h.Authorize)
		payments.POST("/capture", h.Capture)
		payments.POST("/purchase", h.Purchase)
		payments.POST("/void", h.Void)
		payments.POST("/credit", h.Credit)
		payments.POST("/refund", h.Refund)

		account.POST("/form-descriptor", h.BuildFormDescriptor)
	}

	rg.GET(PathPaymentMethods+"/search", h.SearchPaymentMethods)
	rg.GET(PathPayments+"/search", h.SearchPayments)
	rg.POST(PathNotifications, h.ProcessNotification)
}
