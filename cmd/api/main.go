package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Karaoke-Roulette/karaoke-roulette-be/internal/auth"
	"github.com/Karaoke-Roulette/karaoke-roulette-be/internal/favorites"
	"github.com/Karaoke-Roulette/karaoke-roulette-be/internal/names"
	"github.com/Karaoke-Roulette/karaoke-roulette-be/internal/videos"
	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/common"
	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/config"
	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/database"
	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/logger"
	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/middleware"
	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const serviceName = "karaoke-api"
const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load(serviceName)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Server.Environment); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	// Optional Sentry
	if cfg.Sentry.Enabled && cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Server.Environment,
		}); err != nil {
			logger.Warn("Failed to init Sentry", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Connect to PostgreSQL
	pool, err := database.NewPostgresPool(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(pool)

	// database/sql handle for migrations and the names repository
	sqlDB, err := database.NewSQLDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to open database handle", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	logger.Info("Connected to PostgreSQL database")

	// Build repositories, services, handlers
	authHandler := auth.NewHandler(auth.NewService(auth.NewRepository(pool), &cfg.JWT))
	favoritesHandler := favorites.NewHandler(favorites.NewService(favorites.NewRepository(pool)))
	videosHandler := videos.NewHandler(videos.NewService(videos.NewClient(&cfg.YouTube)))
	namesHandler := names.NewHandler(names.NewService(names.NewRepository(sqlDB)))

	// Set up Gin router
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics(serviceName))
	if cfg.Sentry.Enabled && cfg.Sentry.DSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.CORSOrigins, ",")
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check and metrics (no auth required)
	router.GET("/healthz", common.HealthCheckWithDeps(serviceName, version, map[string]func() error{
		"postgres": func() error { return pool.Ping(context.Background()) },
	}))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Token issuance routes
	authGroup := router.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	// Deliberately public routes
	namesHandler.RegisterPublicRoutes(router)

	// Everything under /api requires a verified token
	api := router.Group("/api")
	api.Use(requestTimeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))
	api.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		authHandler.RegisterProtectedRoutes(api)
		favoritesHandler.RegisterRoutes(api)
		videosHandler.RegisterRoutes(api)
		namesHandler.RegisterRoutes(api)
	}

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("Karaoke API starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
}

// requestTimeout bounds each API request; the response contract stays JSON
// even on a deadline
func requestTimeout(d time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(d),
		timeout.WithHandler(func(c *gin.Context) { c.Next() }),
		timeout.WithResponse(func(c *gin.Context) {
			c.JSON(http.StatusGatewayTimeout, common.ErrorBody{Error: "request timed out"})
		}),
	)
}
