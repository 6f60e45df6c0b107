package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"recipe-site-backend/internal/config"
	"recipe-site-backend/pkg/logger"
)

func main() {
	// ========================================
	// LOAD ENVIRONMENT VARIABLES
	// ========================================
	// .env is optional; production uses the process environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// ========================================
	// LOAD CONFIG
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	// ========================================
	// SET GIN MODE
	// ========================================
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting "+cfg.App.Name, map[string]interface{}{
		"environment": cfg.App.Environment,
		"version":     cfg.App.Version,
	})

	// ========================================
	// START SERVER
	// ========================================
	if err := Serve(cfg); err != nil {
		logger.Fatal("Server stopped with error", err)
	}
}
