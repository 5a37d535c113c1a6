package app

import (
	"net/http"

	handlers "github.com/fintechlabs/payment-service/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.PaymentHandler) {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "payment-service"})
	})
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := a.Router.Group("/api/payments")
	api.POST("", h.CreatePayment)
	api.GET("", h.GetAllPayments)
	api.GET("/:id", h.GetPayment)
	api.PUT("/:id", h.UpdatePayment)
}
