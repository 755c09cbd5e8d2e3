package router

import (
	"skyhi-pos/internal/middleware"
	"skyhi-pos/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func register(svc *service.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name     string `json:"name" binding:"required"`
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
			Phone    string `json:"phone"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		user, token, err := svc.Register(c.Request.Context(), service.RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Phone:    req.Phone,
		})
		if err != nil {
			respondErr(c, log, err)
			return
		}
		respondCreated(c, gin.H{"user": user, "token": token})
	}
}

func login(svc *service.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		user, token, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		respondOK(c, gin.H{"user": user, "token": token})
	}
}

func me() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		respondOK(c, gin.H{"user": user})
	}
}
