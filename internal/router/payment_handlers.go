package router

import (
	"net/http"

	"skyhi-pos/internal/middleware"
	"skyhi-pos/internal/payment"
	"skyhi-pos/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Payment bodies keep the camelCase field names the payment widget already
// sends; everything else on this API is snake_case.

func createPaymentIntent(svc *service.PaymentService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			OrderID uint `json:"orderId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		user, _ := middleware.CurrentUser(c)
		intent, err := svc.CreateIntent(c.Request.Context(), user, req.OrderID)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		respondOK(c, gin.H{
			"clientSecret":    intent.ClientSecret,
			"paymentIntentId": intent.ID,
		})
	}
}

func confirmPayment(svc *service.PaymentService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			OrderID         uint   `json:"orderId" binding:"required"`
			PaymentIntentID string `json:"paymentIntentId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		user, _ := middleware.CurrentUser(c)
		order, gatewayStatus, err := svc.Confirm(c.Request.Context(), user, req.OrderID, req.PaymentIntentID)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		if gatewayStatus != payment.StatusSucceeded {
			c.JSON(http.StatusBadRequest, gin.H{
				"code": 400,
				"msg":  "payment failed",
				"data": gin.H{"gateway_status": gatewayStatus, "order": order},
			})
			return
		}
		respondOK(c, gin.H{"order": order})
	}
}

func paymentStatus(svc *service.PaymentService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "orderId")
		if !ok {
			return
		}
		user, _ := middleware.CurrentUser(c)
		status, err := svc.Status(c.Request.Context(), user, id)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		respondOK(c, gin.H{
			"orderId":       id,
			"paymentStatus": status,
		})
	}
}
