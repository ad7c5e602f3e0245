package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/josedguti/contract-guard-ai-app/config"
	"github.com/josedguti/contract-guard-ai-app/handler"
	"github.com/josedguti/contract-guard-ai-app/middleware"
	"github.com/josedguti/contract-guard-ai-app/pkg/logger"
	"github.com/josedguti/contract-guard-ai-app/ruleset"
	"github.com/josedguti/contract-guard-ai-app/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Load rule and template configuration
	rules, err := ruleset.Load(cfg.Analysis.RulesPath, cfg.Analysis.TemplatesPath)
	if err != nil {
		slog.Error("failed to load rule configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("rule configuration loaded",
		"rules", len(rules.Rules),
		"templates", len(rules.Templates),
	)

	// Initialize services
	aiSvc := service.NewAIService(&cfg.OpenAI)
	if !aiSvc.Enabled() {
		slog.Warn("no OpenAI API key configured, AI insights disabled")
	}

	// Report archive is optional
	var reportSvc *service.ReportService
	if cfg.Minio.Endpoint != "" {
		reportSvc, err = service.NewReportService(&cfg.Minio)
		if err != nil {
			slog.Error("failed to initialize report archive", "error", err)
			os.Exit(1)
		}
		if err := reportSvc.EnsureBucket(context.Background()); err != nil {
			slog.Error("failed to ensure report bucket", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Info("report archive disabled, no minio endpoint configured")
	}

	// Initialize analysis store with config
	service.InitAnalysisStore(&cfg.Store)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(cfg)
	analyzeHandler := handler.NewAnalyzeHandler(aiSvc, reportSvc, rules)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())                 // Request ID for tracing
	router.Use(middleware.Recovery())                  // Panic recovery
	router.Use(middleware.RequestLogger())             // Access logging
	router.Use(corsMiddleware())                       // CORS
	router.Use(middleware.RateLimit(100, time.Minute)) // Rate limiting: 100 requests per minute

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)
		protected.POST("/analyze", analyzeHandler.Analyze)
		protected.GET("/analyses", analyzeHandler.List)
		protected.GET("/analyses/:id", analyzeHandler.Get)
		protected.DELETE("/analyses/:id", analyzeHandler.Delete)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second, // the AI round trip happens in-request
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
