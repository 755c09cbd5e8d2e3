package router

import (
	"net/http"
	"time"

	"skyhi-pos/internal/auth"
	"skyhi-pos/internal/middleware"
	"skyhi-pos/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	rd "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Deps bundles everything the HTTP layer needs.
type Deps struct {
	Auth     *service.AuthService
	Menu     *service.MenuService
	Orders   *service.OrderService
	Payments *service.PaymentService
	Reports  *service.ReportService

	Verifier auth.TokenVerifier
	Redis    *rd.Client
	Log      *zap.Logger

	RateLimit  int
	RateWindow time.Duration
}

// Setup registers all HTTP routes.
func Setup(r *gin.Engine, d Deps) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := middleware.Authenticate(d.Verifier, d.Auth, d.Log)
	admin := middleware.RequireAdmin()
	limited := middleware.RedisRateLimit(d.Redis, d.RateLimit, d.RateWindow, d.Log)

	// Auth
	r.POST("/api/auth/register", register(d.Auth, d.Log))
	r.POST("/api/auth/login", login(d.Auth, d.Log))
	r.GET("/api/auth/me", authed, me())

	// Menu; listing is public, cost shows only to authenticated admins.
	r.GET("/api/menu", middleware.OptionalAuthenticate(d.Verifier, d.Auth), listMenu(d.Menu, d.Log))
	r.POST("/api/menu", authed, admin, createMenuItem(d.Menu, d.Log))
	r.PATCH("/api/menu/:id", authed, admin, updateMenuItem(d.Menu, d.Log))
	r.DELETE("/api/menu/:id", authed, admin, deleteMenuItem(d.Menu, d.Log))

	// Orders
	r.POST("/api/orders", authed, limited, createOrder(d.Orders, d.Log))
	r.GET("/api/orders/mine", authed, myOrders(d.Orders, d.Log))
	r.GET("/api/orders", authed, admin, allOrders(d.Orders, d.Log))
	r.GET("/api/orders/:id", authed, getOrder(d.Orders, d.Log))
	r.PATCH("/api/orders/:id/status", authed, admin, updateOrderStatus(d.Orders, d.Log))
	r.DELETE("/api/orders/:id", authed, deleteOrder(d.Orders, d.Log))

	// Payments
	r.POST("/api/payments/create-intent", authed, limited, createPaymentIntent(d.Payments, d.Log))
	r.POST("/api/payments/confirm", authed, limited, confirmPayment(d.Payments, d.Log))
	r.GET("/api/payments/status/:orderId", authed, paymentStatus(d.Payments, d.Log))

	// Admin
	r.POST("/api/admin/make-admin", authed, admin, makeAdmin(d.Auth, d.Log))
	r.GET("/api/admin/users", authed, admin, listUsers(d.Auth, d.Log))
	r.GET("/api/admin/reports/profit", authed, admin, profitReport(d.Reports, d.Log))
}
