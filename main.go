package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-canteen-api/src/config"
	"go-canteen-api/src/controllers"
	"go-canteen-api/src/infrastructure/log"
	"go-canteen-api/src/infrastructure/mongo"
	"go-canteen-api/src/infrastructure/rabbitmq"
	"go-canteen-api/src/services/auth"
	"go-canteen-api/src/services/kitchen"
	"go-canteen-api/src/services/menu"
	"go-canteen-api/src/services/order/domain"
	"go-canteen-api/src/services/order/domain/persistence"

	_ "go-canteen-api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := log.NewLogger()

	configs, err := config.LoadConfig()
	if err != nil {
		logger.Fatal(ctx, "Failed to load configuration", err)
	}
	logger.Info(ctx, "Configuration loaded successfully")

	// Pick the storage backend. Both sides implement the same store contract,
	// so everything above this point is backend-agnostic.
	var (
		mongoClient *mongodriver.Client
		orderStore  domain.OrderStore
		menuRepo    menu.MenuRepository
	)
	switch configs.StoreBackend {
	case config.StoreBackendMongo:
		mongoClient, err = mongo.GetMongoClient(configs)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to MongoDB", err)
		}
		if err := mongoClient.Ping(ctx, nil); err != nil {
			logger.Fatal(ctx, "MongoDB ping failed", err)
		}
		logger.Info(ctx, "MongoDB connection successful")
		orderStore = persistence.NewMongoOrderStore(configs, mongoClient)
		menuRepo = menu.NewMongoMenuRepository(configs, mongoClient)
	case config.StoreBackendMemory:
		logger.Info(ctx, "Using in-memory storage backend")
		orderStore = persistence.NewMemoryOrderStore()
		menuRepo = menu.NewMemoryMenuRepository()
	}

	if err := menu.SeedMenu(ctx, logger, menuRepo, menu.DefaultMenu()); err != nil {
		logger.Fatal(ctx, "Failed to seed menu", err)
	}

	// Kitchen notifications are optional; without a broker the notifier is a no-op.
	var notifier domain.KitchenNotifier = kitchen.NoopNotifier{}
	var publisher *rabbitmq.Publisher
	if configs.RabbitMQHostName != "" {
		publisher, err = rabbitmq.NewPublisher(configs.RabbitMQHostName, configs.RabbitMQExchange)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to RabbitMQ", err)
		}
		defer publisher.Close()
		logger.Info(ctx, "RabbitMQ connection successful")
		notifier = kitchen.NewRabbitNotifier(logger, publisher)
	}

	orderService := domain.NewOrderService(logger, orderStore, notifier)
	menuService := menu.NewMenuService(logger, menuRepo)
	verifier := auth.NewStaticVerifier(configs.AuthUsername, configs.AuthPassword)

	orderController := controllers.NewOrderController(orderService)
	menuController := controllers.NewMenuController(menuService)
	authController := controllers.NewAuthController(verifier)

	app := fiber.New(fiber.Config{
		ServerHeader: "Smart-Canteen-Service",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			logger.Exception(c.Context(), "HTTP request error", err)
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOriginsFunc: func(_ string) bool { return true },
	}))
	app.Use(recover.New())
	app.Use(controllers.RequestLogging(logger))

	app.Get("/api/swagger/*", fiberSwagger.WrapHandler)
	app.Get("/api/healthCheck", func(c *fiber.Ctx) error {
		if mongoClient != nil {
			if err := mongoClient.Ping(c.Context(), nil); err != nil {
				logger.Exception(c.Context(), "Health check: MongoDB ping failed", err)
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "unhealthy",
					"error":  "database connection failed",
				})
			}
		}
		if publisher != nil && !publisher.IsHealthy() {
			logger.Warn(c.Context(), "Health check: RabbitMQ connection is unhealthy")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  "message queue connection failed",
			})
		}
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"backend":   configs.StoreBackend,
			"timestamp": time.Now().UTC(),
		})
	})

	orderController.Route(app)
	menuController.Route(app)
	authController.Route(app)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	serverShutdown := make(chan error, 1)
	go func() {
		logger.Info(ctx, "Starting server on port "+configs.HTTPPort)
		if err := app.Listen(":" + configs.HTTPPort); err != nil {
			serverShutdown <- err
		}
	}()

	select {
	case <-c:
		logger.Info(ctx, "Shutdown signal received, shutting down gracefully...")
	case err := <-serverShutdown:
		logger.Exception(ctx, "Server error occurred", err)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Exception(ctx, "Server shutdown error", err)
	}

	logger.Info(ctx, "Server shutdown complete")
}
