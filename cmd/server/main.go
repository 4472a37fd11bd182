package main

import (
	"context" // Redis connectivity check
	"log"     // Startup logging

	"simpleshop/internal/api"        // HTTP handlers
	"simpleshop/internal/config"     // Configuration
	"simpleshop/internal/middleware" // Auth middleware
	"simpleshop/internal/service"    // Business services
	"simpleshop/internal/store"      // GORM repositories

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client for the catalog read cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire repositories and services
	users := store.NewUserStore(gormDB)
	products := store.NewProductStore(gormDB)
	orderLedger := store.NewOrderStore(gormDB)
	catalog := service.NewCatalogService(products)
	orders := service.NewOrderService(orderLedger, products)

	// Setup Gin
	r := gin.Default()
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	authn := middleware.JWTAuthMiddleware(cfg.JWTSecret) // Token gate
	adminOnly := middleware.AdminOnlyMiddleware(gormDB)  // Role gate

	// Auth routes
	r.POST("/auth/register", api.RegisterHandler(gormDB))
	r.POST("/auth/login", api.LoginHandler(gormDB, cfg.JWTSecret))
	r.GET("/auth/me", authn, api.MeHandler(users))

	// Catalog routes (reads public, mutations admin only)
	r.GET("/products", api.ListProductsHandler(catalog, redisClient))
	r.GET("/products/search", api.SearchProductsHandler(catalog))
	r.GET("/products/category/:category", api.ListByCategoryHandler(catalog))
	r.GET("/products/:id", api.GetProductHandler(catalog, redisClient))
	r.POST("/products", authn, adminOnly, api.CreateProductHandler(catalog, users, redisClient))
	r.PUT("/products/:id", authn, adminOnly, api.UpdateProductHandler(catalog, users, redisClient))
	r.DELETE("/products/:id", authn, adminOnly, api.DeleteProductHandler(catalog, users, redisClient))

	// Order routes
	r.POST("/orders", authn, api.PlaceOrderHandler(orders, users, redisClient))
	r.GET("/orders/user", authn, api.ListUserOrdersHandler(orders, users))
	r.GET("/orders/:id", authn, api.GetOrderHandler(orders, users))
	r.GET("/orders", authn, adminOnly, api.ListAllOrdersHandler(orders, users))
	r.PUT("/orders/:id/status", authn, adminOnly, api.UpdateOrderStatusHandler(orders, users))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server
}
