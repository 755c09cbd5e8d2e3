package router

import (
	"errors"
	"net/http"

	"skyhi-pos/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondErr maps the service error set onto HTTP statuses at the one request
// boundary. Upstream gateway detail never reaches the client.
func respondErr(c *gin.Context, log *zap.Logger, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": ve.Error()})
	case errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "msg": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"code": 403, "msg": "access denied"})
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 404, "msg": err.Error()})
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyPaid),
		errors.Is(err, service.ErrIntentMismatch),
		errors.Is(err, service.ErrNotDeletable),
		errors.Is(err, service.ErrTransitionDenied):
		c.JSON(http.StatusConflict, gin.H{"code": 409, "msg": err.Error()})
	case errors.Is(err, service.ErrGateway):
		log.Error("payment gateway error", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "msg": "payment gateway failure"})
	default:
		log.Error("internal error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": "internal server error"})
	}
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "data": data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"code": 0, "data": data})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": msg})
}
