package main

import (
	"boxmarket/pkg/cache"
	"boxmarket/pkg/config"
	"boxmarket/pkg/database"
	"boxmarket/pkg/logger"
	internal "boxmarket/services/notification/internal/app"
)

// @title           Boxmarket Notification Service
// @version         1.0
// @description     Notifications and item-change requests for the boxmarket marketplace
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	internal.Run(cfg, log, db, redisClient)
}
