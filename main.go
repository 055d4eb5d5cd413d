// main.go
package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/franzhentze92/botanic-care-backend/checkout"
	"github.com/franzhentze92/botanic-care-backend/controllers"
	"github.com/franzhentze92/botanic-care-backend/pricing"
	"github.com/franzhentze92/botanic-care-backend/routes"
	"github.com/franzhentze92/botanic-care-backend/services"
	"github.com/franzhentze92/botanic-care-backend/store"
	"github.com/franzhentze92/botanic-care-backend/utils"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, proceeding with environment variables")
	}

	cfg, err := utils.LoadConfig()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)

	// Connect to MongoDB
	client, err := utils.ConnectDB(cfg.MongoURI)
	if err != nil {
		logger.Fatal("mongodb connection failed", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("mongodb disconnect failed", zap.Error(err))
		}
	}()

	// Cart persistence: Redis when configured, in-memory otherwise
	var cartStorage store.Storage = store.NewMemoryStorage()
	if cfg.RedisAddr != "" {
		redisClient, err := utils.ConnectRedis(cfg.RedisAddr)
		if err != nil {
			logger.Fatal("redis connection failed", zap.Error(err))
		}
		defer redisClient.Close()
		cartStorage = store.NewRedisStorage(redisClient)
	} else {
		logger.Warn("REDIS_ADDR not set, carts will not survive restarts")
	}
	carts := store.NewManager(cartStorage, logger)
	defer carts.Close()

	// Collaborator services
	catalog := services.NewCatalogGateway(client)
	addresses := services.NewAddressService(client)
	payments := services.NewPaymentMethodService(client)
	orders := services.NewOrderRepository(client)
	formulations := services.NewFormulationService(client)

	// Pricing
	engine := pricing.NewEngine(pricing.Config{
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		FlatShippingFee:       cfg.FlatShippingFee,
		VATRate:               cfg.VATRate,
	})
	composer := pricing.NewComposer(catalog)

	// Checkout
	emailService := utils.NewEmailService(cfg.SendgridAPIKey, cfg.EmailSender, logger)
	orchestrator := checkout.NewOrchestrator(addresses, payments, orders, formulations, emailService, engine, logger)

	// Initialize controllers
	userController := controllers.NewUserController(client)
	productController := controllers.NewProductController(catalog)
	cartController := controllers.NewCartController(carts, catalog)
	formulationController := controllers.NewFormulationController(formulations, composer, carts, cfg.BaseFormulationPrice)
	checkoutController := controllers.NewCheckoutController(orchestrator, carts, orders)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, productController, cartController, formulationController, checkoutController)

	logger.Info("server listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
