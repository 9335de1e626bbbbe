package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	adminControllers "github.com/lukwagoraymond/duzol-pharma/controllers/admin"
	cartControllers "github.com/lukwagoraymond/duzol-pharma/controllers/cart"
	customerControllers "github.com/lukwagoraymond/duzol-pharma/controllers/customer"
	deliveryControllers "github.com/lukwagoraymond/duzol-pharma/controllers/delivery"
	orderControllers "github.com/lukwagoraymond/duzol-pharma/controllers/order"
	paymentControllers "github.com/lukwagoraymond/duzol-pharma/controllers/payment"
	shoppingControllers "github.com/lukwagoraymond/duzol-pharma/controllers/shopping"
	vendorControllers "github.com/lukwagoraymond/duzol-pharma/controllers/vendor"

	"github.com/lukwagoraymond/duzol-pharma/config"
	"github.com/lukwagoraymond/duzol-pharma/middleware"
	"github.com/lukwagoraymond/duzol-pharma/notify"
	"github.com/lukwagoraymond/duzol-pharma/repository"
	"github.com/lukwagoraymond/duzol-pharma/routes"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	client, err := repository.Connect(ctx, &cfg.Mongo)
	if err != nil {
		logger.Fatal("mongo connection failed", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logger.Warn("mongo disconnect failed", zap.Error(err))
		}
	}()
	stores := repository.New(client.Database(cfg.Mongo.Database))
	logger.Info("connected to mongo", zap.String("database", cfg.Mongo.Database))

	notifier := &notify.LogNotifier{Logger: logger}

	cart := &cartControllers.Engine{
		Products:  stores.Products,
		Customers: stores.Customers,
	}
	ledger := &paymentControllers.Ledger{
		Offers:       stores.Offers,
		Transactions: stores.Transactions,
		ClampAtZero:  cfg.Offers.ClampAtZero,
	}
	feed := orderControllers.NewFeed(logger)
	orders := &orderControllers.Engine{
		Products:     stores.Products,
		Customers:    stores.Customers,
		Orders:       stores.Orders,
		Transactions: stores.Transactions,
		Ledger:       ledger,
		Assigner: &orderControllers.FirstAvailableInArea{
			Vendors: stores.Vendors,
			Agents:  stores.DeliveryUsers,
			Orders:  stores.Orders,
		},
		Logger:  logger,
		Publish: feed.Broadcast,
	}

	deps := routes.Deps{
		Cart:   cart,
		Ledger: ledger,
		Orders: orders,
		Feed:   feed,
		Customer: customerControllers.Deps{
			Customers: stores.Customers,
			Notifier:  notifier,
			Secret:    cfg.Auth.JWTSecret,
			Logger:    logger,
		},
		Vendor: vendorControllers.Deps{
			Vendors:  stores.Vendors,
			Products: stores.Products,
			Offers:   stores.Offers,
			Orders:   stores.Orders,
			Engine:   orders,
			Secret:   cfg.Auth.JWTSecret,
			Logger:   logger,
		},
		Delivery: deliveryControllers.Deps{
			DeliveryUsers: stores.DeliveryUsers,
			Secret:        cfg.Auth.JWTSecret,
			Logger:        logger,
		},
		Admin: adminControllers.Deps{
			Vendors:       stores.Vendors,
			Transactions:  stores.Transactions,
			DeliveryUsers: stores.DeliveryUsers,
			Logger:        logger,
		},
		Shopping: shoppingControllers.Deps{
			Vendors:  stores.Vendors,
			Products: stores.Products,
			Offers:   stores.Offers,
		},
		JWTSecret:   cfg.Auth.JWTSecret,
		AdminAPIKey: cfg.Auth.AdminAPIKey,
		Logger:      logger,
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, deps)

	logger.Info("server starting", zap.String("addr", cfg.Server.Addr()))
	if err := r.Run(cfg.Server.Addr()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	return zapCfg.Build()
}
