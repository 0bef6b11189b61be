package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/example/geprek/internal/cart"
	"github.com/example/geprek/internal/config"
	"github.com/example/geprek/internal/database"
	"github.com/example/geprek/internal/handlers"
	"github.com/example/geprek/internal/middleware"
	"github.com/example/geprek/internal/routes"
	"github.com/example/geprek/internal/services"
	"github.com/example/geprek/internal/store"
	"github.com/example/geprek/internal/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.SyncLogger()

	logger := utils.GetLogger()
	logger.Info("starting geprek backend", zap.String("env", cfg.AppEnv))

	tp, err := utils.InitTracer(cfg.JaegerEndpoint)
	if err != nil {
		logger.Fatal("failed to initialize tracer", zap.Error(err))
	}
	if tp != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				logger.Warn("error shutting down tracer", zap.Error(err))
			}
		}()
	}

	db, err := database.Connect(cfg.DatabaseURL, cfg.IsProduction())
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	st := store.New(db)
	defer st.Close()

	rdb, err := cart.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	telegram := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	if !telegram.Enabled() {
		logger.Info("telegram notifications disabled")
	}
	notifiers := services.Notifiers{telegram}

	if len(cfg.KafkaBrokers) > 0 {
		publisher := services.NewEventPublisher(cfg.KafkaBrokers, cfg.KafkaOrdersTopic)
		defer publisher.Close()
		notifiers = append(notifiers, publisher)
		logger.Info("kafka publisher initialized", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	authSvc := services.NewAuthService(st, cfg.JWTSecret, cfg.TokenExpires)
	userSvc := services.NewUserService(st)
	productSvc := services.NewProductService(st)
	profileSvc := services.NewStoreProfileService(st)
	orderSvc := services.NewOrderService(st, notifiers).WithNotifyTimeout(cfg.NotifyTimeout)
	cartSvc := services.NewCartService(cart.NewRedisStore(rdb, cfg.CartTTL), st, orderSvc, profileSvc, cfg.StoreWhatsAppPhone)
	adminSvc := services.NewAdminService(st)

	app := fiber.New(fiber.Config{
		AppName:      "Ayam Geprek Sambal Ijo",
		ErrorHandler: handlers.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger(logger))
	app.Use(middleware.Metrics())

	routes.Register(app, routes.Handlers{
		Auth:         handlers.NewAuthHandler(authSvc),
		Product:      handlers.NewProductHandler(productSvc),
		Order:        handlers.NewOrderHandler(orderSvc, profileSvc),
		User:         handlers.NewUserHandler(userSvc),
		StoreProfile: handlers.NewStoreProfileHandler(profileSvc),
		Cart:         handlers.NewCartHandler(cartSvc),
		Admin:        handlers.NewAdminHandler(adminSvc),
		Health:       handlers.NewHealthHandler(st, logger),
	}, cfg.JWTSecret)

	go func() {
		logger.Info("starting HTTP server", zap.String("port", cfg.AppPort))
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			logger.Fatal("fiber.Listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Warn("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
