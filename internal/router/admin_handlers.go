package router

import (
	"skyhi-pos/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func makeAdmin(svc *service.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		user, err := svc.MakeAdmin(c.Request.Context(), req.Email)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		respondOK(c, gin.H{"user": user})
	}
}

func listUsers(svc *service.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.ListUsers(c.Request.Context())
		if err != nil {
			respondErr(c, log, err)
			return
		}
		respondOK(c, gin.H{"users": users})
	}
}

func profitReport(svc *service.ReportService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.Profit(c.Request.Context())
		if err != nil {
			respondErr(c, log, err)
			return
		}
		respondOK(c, gin.H{"report": report})
	}
}
