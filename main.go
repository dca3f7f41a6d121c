package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	dbmigrate "github.com/tkachuk2291/planetarium-api-service/internal/database"
	"github.com/tkachuk2291/planetarium-api-service/internal/di"
	"github.com/tkachuk2291/planetarium-api-service/internal/middleware"
	"github.com/tkachuk2291/planetarium-api-service/pkg/config"
	"github.com/tkachuk2291/planetarium-api-service/pkg/database"
	"github.com/tkachuk2291/planetarium-api-service/pkg/logger"
	"github.com/tkachuk2291/planetarium-api-service/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.App.Debug {
		logLevel = "debug"
	}
	logCfg := &logger.Config{
		Level:       logLevel,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting Planetarium API...")

	ctx := context.Background()

	// Initialize database connection
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   time.Second,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

	if err := dbmigrate.RunMigrations(ctx, db); err != nil {
		appLog.Fatal(fmt.Sprintf("Migrations failed: %v", err))
	}

	// Initialize Redis connection (optional - caching is disabled without it)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisCfg := &redis.Config{
			Host:          cfg.Redis.Host,
			Port:          cfg.Redis.Port,
			Password:      cfg.Redis.Password,
			DB:            cfg.Redis.DB,
			PoolSize:      cfg.Redis.PoolSize,
			MinIdleConns:  cfg.Redis.MinIdleConns,
			DialTimeout:   cfg.Redis.DialTimeout,
			ReadTimeout:   cfg.Redis.ReadTimeout,
			WriteTimeout:  cfg.Redis.WriteTimeout,
			MaxRetries:    3,
			RetryInterval: time.Second,
		}
		redisClient, err = redis.NewClient(ctx, redisCfg)
		if err != nil {
			appLog.Warn(fmt.Sprintf("Redis connection failed (caching disabled): %v", err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			appLog.Info(fmt.Sprintf("Redis connected (%s)", redisCfg.Addr()))
		}
	}

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
	})

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(appLog))
	router.Use(middleware.CORS())

	// Health check endpoints
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	registerRoutes(router, container, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("Planetarium API listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	appLog.Info("Server exited gracefully")
}

// registerRoutes mounts the API surface. All resource routes require
// authentication; catalog and scheduling writes additionally require the
// admin role, while ticket routes are always scoped to the caller.
func registerRoutes(router *gin.Engine, container *di.Container, cfg *config.Config) {
	api := router.Group("/api/v1")

	// Public endpoints
	api.POST("/register/", container.UserHandler.Register)
	api.POST("/login/", container.UserHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(cfg.JWT.Secret))
	{
		// Profile
		authed.GET("/me/", container.UserHandler.Me)
		authed.PUT("/me/", container.UserHandler.UpdateMe)
		authed.PATCH("/me/", container.UserHandler.UpdateMe)
		authed.POST("/me/upload-image/", container.UserHandler.UploadImage)

		// Catalog reads
		authed.GET("/show_theme/", container.ThemeHandler.List)
		authed.GET("/show_theme/:id/", container.ThemeHandler.Get)
		authed.GET("/astronomy_show/", container.ShowHandler.List)
		authed.GET("/astronomy_show/:id/", container.ShowHandler.Get)
		authed.GET("/planetarium_dome/", container.DomeHandler.List)
		authed.GET("/planetarium_dome/:id/", container.DomeHandler.Get)
		authed.GET("/show_session/", container.SessionHandler.List)
		authed.GET("/show_session/:id/", container.SessionHandler.Get)

		// Tickets, owner-scoped
		authed.GET("/tickets/", container.TicketHandler.List)
		authed.GET("/tickets/:id/", container.TicketHandler.Get)
		authed.POST("/tickets/", container.TicketHandler.Create)

		// Catalog and scheduling writes
		admin := authed.Group("")
		admin.Use(middleware.AdminOnly())
		{
			admin.POST("/show_theme/", container.ThemeHandler.Create)
			admin.PUT("/show_theme/:id/", container.ThemeHandler.Update)
			admin.PATCH("/show_theme/:id/", container.ThemeHandler.Update)
			admin.DELETE("/show_theme/:id/", container.ThemeHandler.Delete)

			admin.POST("/astronomy_show/", container.ShowHandler.Create)
			admin.PUT("/astronomy_show/:id/", container.ShowHandler.Update)
			admin.PATCH("/astronomy_show/:id/", container.ShowHandler.Update)
			admin.DELETE("/astronomy_show/:id/", container.ShowHandler.Delete)
			admin.POST("/astronomy_show/:id/upload-image/", container.ShowHandler.UploadImage)

			admin.POST("/planetarium_dome/", container.DomeHandler.Create)
			admin.PUT("/planetarium_dome/:id/", container.DomeHandler.Update)
			admin.PATCH("/planetarium_dome/:id/", container.DomeHandler.Update)
			admin.DELETE("/planetarium_dome/:id/", container.DomeHandler.Delete)
			admin.POST("/planetarium_dome/:id/upload-image/", container.DomeHandler.UploadImage)

			admin.POST("/show_session/", container.SessionHandler.Create)
			admin.PUT("/show_session/:id/", container.SessionHandler.Update)
			admin.PATCH("/show_session/:id/", container.SessionHandler.Update)
			admin.DELETE("/show_session/:id/", container.SessionHandler.Delete)
		}
	}
}
