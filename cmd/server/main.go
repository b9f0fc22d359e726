package main

import (
	"log"

	"bank_statement_gen_go/config"
	"bank_statement_gen_go/db"
	"bank_statement_gen_go/handlers"
	"bank_statement_gen_go/middleware"
	"bank_statement_gen_go/models"
	"bank_statement_gen_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	handlers.Cfg = cfg

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.GeneratedStatement{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize statement archive (local filesystem or R2)
	services.InitializeArchive(cfg)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Routes
	e.GET("/", handlers.HomeHandler)
	e.POST("/generate", handlers.GenerateStatementHandler, middleware.GenerateRateLimiter.Middleware())
	e.GET("/statements", handlers.ListStatementsHandler)
	e.GET("/statements/:id/download", handlers.DownloadStatementHandler)
	e.GET("/statements/:id/export", handlers.ExportStatementHandler, middleware.ExportRateLimiter.Middleware())
	e.GET("/api/logs", handlers.GetLogsHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
