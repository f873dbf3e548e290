package main

import (
	"context"
	"log"
	"os"

	"github.com/gamepulse/api/internal/cache"
	"github.com/gamepulse/api/internal/config"
	"github.com/gamepulse/api/internal/database"
	"github.com/gamepulse/api/internal/handler"
	"github.com/gamepulse/api/internal/middleware"
	"github.com/gamepulse/api/internal/scheduler"
	"github.com/gamepulse/api/internal/stats"
	"github.com/gamepulse/api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize Redis cache
	var redisCache *cache.RedisCache
	redisCache, err = cache.NewRedisCache(cfg.RedisURL, cfg.StatsCacheTTL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		redisCache = nil
		// Continue without Redis cache (fail-open)
	}

	rowStore := store.New(db)
	statsService := stats.NewService(rowStore)

	// Initialize handlers
	playerHandler := handler.NewPlayerHandler(rowStore, redisCache)
	surveyHandler := handler.NewSurveyHandler(rowStore, statsService, redisCache)
	sessionHandler := handler.NewSessionHandler(rowStore, redisCache)
	statsHandler := handler.NewStatsHandler(statsService, redisCache)
	adminHandler := handler.NewAdminHandler(rowStore, redisCache)
	actionHandler := handler.NewActionHandler(playerHandler, surveyHandler, sessionHandler, statsHandler)

	// Initialize and start snapshot scheduler if enabled
	var snapshotScheduler *scheduler.SnapshotScheduler
	if cfg.SnapshotEnabled {
		snapshotScheduler = scheduler.NewSnapshotScheduler(db, statsService, redisCache, scheduler.Config{
			Interval: cfg.SnapshotInterval,
		})
		go snapshotScheduler.Start(context.Background())
		log.Println("Background snapshot scheduler started")
	}

	// Setup router
	r := gin.Default()
	r.Use(middleware.MetricsMiddleware())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", cfg.AllowedOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Scheduler status
	r.GET("/scheduler/status", func(c *gin.Context) {
		if snapshotScheduler != nil {
			c.JSON(200, snapshotScheduler.GetStatus())
		} else {
			c.JSON(200, gin.H{"enabled": false, "message": "Scheduler is disabled"})
		}
	})

	// Legacy single-endpoint dispatch (Unity client / dashboard)
	r.GET("/exec", actionHandler.Dispatch)
	r.POST("/exec", actionHandler.Dispatch)

	// API routes
	api := r.Group("/api")
	{
		// Players
		api.POST("/players", playerHandler.Register)
		api.GET("/players", playerHandler.List)
		api.GET("/players/:id", playerHandler.Get)
		api.GET("/players/:id/sessions", playerHandler.Sessions)

		// Surveys
		api.POST("/surveys/pre", surveyHandler.SubmitPre)
		api.POST("/surveys/post", surveyHandler.SubmitPost)

		// Sessions & scores
		api.POST("/sessions", sessionHandler.Start)
		api.GET("/sessions/:id", sessionHandler.Get)
		api.POST("/scores", sessionHandler.SubmitScore)

		// Statistics
		api.GET("/stats", statsHandler.GetStats)
		api.GET("/stats/changes", statsHandler.GetChanges)
		api.GET("/leaderboard", statsHandler.GetLeaderboard)

		// Admin
		api.POST("/admin/seed", adminHandler.Seed)
		api.POST("/admin/clear", adminHandler.Clear)
		api.GET("/admin/snapshots", adminHandler.Snapshots)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	log.Printf("API server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
