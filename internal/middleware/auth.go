package middleware

import (
	"net/http"
	"strings"

	"skyhi-pos/internal/auth"
	"skyhi-pos/internal/model"
	"skyhi-pos/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CtxUser is the gin context key holding the authenticated *model.User.
const CtxUser = "current_user"

// Authenticate validates the bearer token and resolves the account, applying
// allow-list role promotion on the way (the promotion runs on every
// authentication event so list changes take effect without manual edits).
func Authenticate(verifier auth.TokenVerifier, accounts *service.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 401, "msg": "missing or malformed Authorization header"})
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 401, "msg": "invalid or expired token"})
			return
		}

		user, err := accounts.Authenticate(c.Request.Context(), claims.UserID)
		if err != nil {
			log.Warn("token resolved to no account", zap.Uint("user_id", claims.UserID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 401, "msg": "authentication failed"})
			return
		}

		c.Set(CtxUser, user)
		c.Next()
	}
}

// OptionalAuthenticate resolves the account when a valid bearer token is
// present and stays silent otherwise. Used on public routes whose response
// shape differs for staff (the menu listing exposes cost to admins only).
func OptionalAuthenticate(verifier auth.TokenVerifier, accounts *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}
		claims, err := verifier.Verify(token)
		if err != nil {
			c.Next()
			return
		}
		if user, err := accounts.Authenticate(c.Request.Context(), claims.UserID); err == nil {
			c.Set(CtxUser, user)
		}
		c.Next()
	}
}

// RequireAdmin gates staff-only routes. Mount after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 401, "msg": "authentication required"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"code": 403, "msg": "admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the account stashed by Authenticate.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}

func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
