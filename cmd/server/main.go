package main

import (
	"context"
	"log"
	"strings"

	"dan_assistant/internal/config"
	"dan_assistant/internal/events"
	"dan_assistant/internal/handlers"
	"dan_assistant/internal/logger"
	"dan_assistant/internal/repository"
	"dan_assistant/internal/services"
	"dan_assistant/internal/store"
	"dan_assistant/pkg/genai"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	slogger := logger.New()
	ctx := context.Background()

	// Initialize the persistent store
	st, err := newStore(cfg)
	if err != nil {
		log.Fatal("Failed to initialize store:", err)
	}

	// Optional order event publisher
	var publisher services.OrderPublisher
	if cfg.KafkaBrokers != "" {
		producer, err := events.NewProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic, cfg.KafkaUsername, cfg.KafkaPassword, slogger)
		if err != nil {
			log.Fatal("Failed to connect to Kafka:", err)
		}
		defer producer.Close()
		publisher = producer
	}

	// Initialize repositories
	orderRepo, err := repository.NewOrderRepository(ctx, st, slogger)
	if err != nil {
		log.Fatal("Failed to load orders:", err)
	}

	// Initialize the Gemini client
	genaiClient := genai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)

	// Initialize services
	authService := services.NewAuthService(ctx, st, slogger, cfg.AuthBcrypt)
	agentService := services.NewAgentService(ctx, st, slogger)
	intakeService := services.NewIntakeService(ctx, orderRepo, st, publisher, slogger)
	chatService := services.NewChatService(genaiClient, agentService, intakeService, slogger)

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(chatService, slogger)
	adminHandler := handlers.NewAdminHandler(authService, agentService, orderRepo, slogger)

	// Setup routes
	router := gin.Default()
	router.Use(handlers.RequestLogger(slogger))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.POST("/api/chat", chatHandler.HandleTurn)
	router.POST("/api/admin/login", adminHandler.Login)
	router.POST("/api/admin/logout", adminHandler.Logout)

	admin := router.Group("/api/admin")
	admin.Use(adminHandler.RequireAuth)
	{
		admin.GET("/orders", adminHandler.ListOrders)
		admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
		admin.GET("/orders/:id/invoice", adminHandler.GetInvoice)
		admin.GET("/agent-config", adminHandler.GetAgentConfig)
		admin.PUT("/agent-config", adminHandler.UpdateAgentConfig)
		admin.GET("/price-list", adminHandler.GetPriceList)
		admin.PUT("/price-list", adminHandler.UpdatePriceList)
		admin.PUT("/account", adminHandler.UpdateAccount)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "postgres":
		return store.NewPostgresStore(cfg.DatabaseURL)
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return store.NewRedisStore(cfg.RedisURL)
	}
}
