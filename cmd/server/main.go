package main

import (
	"log"

	"skyhi-pos/internal/auth"
	"skyhi-pos/internal/config"
	"skyhi-pos/internal/model"
	"skyhi-pos/internal/payment"
	"skyhi-pos/internal/qr"
	"skyhi-pos/internal/repository"
	"skyhi-pos/internal/router"
	"skyhi-pos/internal/service"
	rediscache "skyhi-pos/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	rd "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		logger.Fatal("db open", zap.Error(err))
	}
	if err := db.AutoMigrate(&model.User{}, &model.MenuItem{}, &model.Order{}, &model.OrderItem{}); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	rdb := rd.NewClient(&rd.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	repos := repository.New(db)
	tokens := auth.NewHSProvider(cfg.JWTSecret, "skyhi-pos", cfg.JWTTTL)
	hasher := auth.NewHasher(cfg.BcryptCost)
	admins := auth.NewAdminList(cfg.AdminEmails)
	gateway := payment.NewStripeGateway(cfg.StripeSecretKey)
	encoder := qr.NewEncoder()
	menuCache := rediscache.NewMenuCache(rdb, cfg.MenuCacheTTL)

	var transitions service.TransitionTable
	if cfg.StrictStatusFlow {
		transitions = service.StrictTransitions()
	}

	authSvc := service.NewAuthService(repos.Users, hasher, tokens, admins, logger)
	menuSvc := service.NewMenuService(repos.Menu, menuCache, logger)
	orderSvc := service.NewOrderService(repos.Orders, repos.Menu, encoder, transitions, cfg.AllowUnavailableItems, logger)
	paymentSvc := service.NewPaymentService(repos.Orders, gateway, cfg.Currency, logger)
	reportSvc := service.NewReportService(repos.Orders, repos.Menu)

	r := gin.Default()
	router.Setup(r, router.Deps{
		Auth:       authSvc,
		Menu:       menuSvc,
		Orders:     orderSvc,
		Payments:   paymentSvc,
		Reports:    reportSvc,
		Verifier:   tokens,
		Redis:      rdb,
		Log:        logger,
		RateLimit:  cfg.OrderRateLimit,
		RateWindow: cfg.OrderRateWindow,
	})

	logger.Info("server starting",
		zap.String("addr", cfg.HTTPAddr),
		zap.Bool("strict_status_flow", cfg.StrictStatusFlow))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
