package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jcanovas/vivenda/internal/config"
	"github.com/jcanovas/vivenda/internal/database"
	"github.com/jcanovas/vivenda/internal/geocode"
	"github.com/jcanovas/vivenda/internal/handlers"
	"github.com/jcanovas/vivenda/internal/logger"
	"github.com/jcanovas/vivenda/internal/media"
	"github.com/jcanovas/vivenda/internal/middleware"
	"github.com/jcanovas/vivenda/internal/repository"
	"github.com/jcanovas/vivenda/internal/services"
	"github.com/joho/godotenv"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Optional .env for local development; real deployments use the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Server.Env)
	log.Info("Starting Vivenda API", map[string]interface{}{
		"version":     handlers.APIVersion,
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Drafts live in Redis; without it the wizard still works, with drafts
	// surviving only as long as the process.
	var draftStore repository.DraftStore
	redisClient, err := database.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, drafts will not survive restarts", map[string]interface{}{
			"addr":  cfg.Redis.Addr,
			"error": err.Error(),
		})
		draftStore = repository.NewMemoryDraftStore()
	} else {
		defer redisClient.Close()
		ttl := time.Duration(cfg.Redis.DraftTTLHours) * time.Hour
		draftStore = repository.NewResilientDraftStore(
			repository.NewRedisDraftStore(redisClient, ttl), log)
		log.Info("Draft store connected", map[string]interface{}{
			"addr": cfg.Redis.Addr,
			"ttl":  ttl.String(),
		})
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Middleware order: RequestID -> Session -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Session())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	healthHandler := handlers.NewHealthHandler(db, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	listingRepo := repository.NewListingRepository(db)
	wizardService := services.NewWizardService(draftStore, listingRepo, log)
	listingService := services.NewListingService(listingRepo, log)

	wizardHandler := handlers.NewWizardHandler(wizardService)
	listingHandler := handlers.NewListingHandler(listingService)
	mediaHandler := handlers.NewMediaHandler(media.NewClient(cfg.Media))
	geocodeHandler := handlers.NewGeocodeHandler(geocode.NewClient(cfg.Geocode))

	v1 := router.Group("/api/v1")
	{
		wizard := v1.Group("/wizard")
		{
			wizard.GET("", wizardHandler.GetState)
			wizard.PUT("/draft", wizardHandler.UpdateDraft)
			wizard.POST("/next", wizardHandler.Next)
			wizard.POST("/back", wizardHandler.Back)
			wizard.POST("/jump", wizardHandler.Jump)
			wizard.POST("/publish", wizardHandler.Publish)
		}

		listings := v1.Group("/listings")
		{
			listings.GET("", listingHandler.Search)
			listings.GET("/:id", listingHandler.Get)
			listings.DELETE("/:id", listingHandler.Delete)
		}

		v1.POST("/media", mediaHandler.Upload)
		v1.GET("/geocode", geocodeHandler.Forward)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
