package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boxmarket/pkg/config"
	"boxmarket/pkg/jwt"
	"boxmarket/pkg/logger"
	"boxmarket/pkg/middleware"
	notificationHTTP "boxmarket/services/notification/internal/controller/http"
	"boxmarket/services/notification/internal/repo/persistent"
	"boxmarket/services/notification/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "boxmarket/services/notification/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize Repositories
	notificationRepo := persistent.NewNotificationRepository(db)
	changeRequestRepo := persistent.NewChangeRequestRepository(db)

	// Initialize UseCases
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, redisClient, log)
	changeRequestUseCase := usecase.NewChangeRequestUseCase(changeRequestRepo, redisClient, log)

	// Initialize HTTP handlers
	notificationHandler := notificationHTTP.NewNotificationHandler(notificationUseCase, log)
	changeRequestHandler := notificationHTTP.NewChangeRequestHandler(changeRequestUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	writeLimit := middleware.RateLimitMiddleware(
		redisClient,
		cfg.RateLimitRequests,
		time.Duration(cfg.RateLimitWindow)*time.Second,
	)

	api := r.Group("/api/v1")
	notifications := api.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware(jwtService))
	{
		notifications.POST("/create", writeLimit, notificationHandler.CreateNotification)
		notifications.GET("/user", notificationHandler.GetUserNotifications)
		notifications.GET("/shop", notificationHandler.GetShopNotifications)
		notifications.GET("/admin", notificationHandler.GetAdminNotifications)
		notifications.GET("/all", notificationHandler.GetAllNotifications)
		notifications.PATCH("/:id/read", notificationHandler.MarkNotificationAsRead)
		notifications.PATCH("/:id/change_type", notificationHandler.ChangeNotificationType)
		notifications.POST("/change-request", writeLimit, changeRequestHandler.CreateChangeRequest)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Notification service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down notification service...")

	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close Redis connection
	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis: %v", err)
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Notification service exited")
}
