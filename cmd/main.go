package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/larkbridge-io/options-api/internal/api"
	"github.com/larkbridge-io/options-api/internal/config"
	"github.com/larkbridge-io/options-api/internal/handlers"
	"github.com/larkbridge-io/options-api/internal/lark"
	"github.com/larkbridge-io/options-api/internal/logger"
	"github.com/larkbridge-io/options-api/internal/middleware"
	"github.com/larkbridge-io/options-api/internal/options"
	"github.com/larkbridge-io/options-api/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	flag.Parse()

	appLogger := logger.New(cfg.DebugMode)
	defer func() {
		_ = appLogger.Sync() // Ignore sync errors on close, as per zap documentation
	}()

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid configuration",
			"error", err,
		)
	}

	// The server still starts without credentials so the liveness route stays
	// reachable; option requests will fail until they are provided.
	if missing := cfg.MissingSecrets(); len(missing) > 0 {
		appLogger.Warn("Credentials not fully configured",
			"missing", missing,
		)
	}

	gin.SetMode(gin.ReleaseMode) // Explicitly set release mode
	if cfg.DebugMode {
		gin.SetMode(gin.DebugMode)
	}

	ctx, cancel := context.WithCancel(context.Background())

	tel, err := telemetry.Setup(ctx, cfg.OTel)
	if err != nil {
		appLogger.Fatal("Failed to set up trace export",
			"error", err,
		)
	}

	router := setupRouter(cfg, appLogger)

	srv, err := newServer(cfg, router)
	if err != nil {
		appLogger.Fatal("Failed to configure server",
			"error", err,
		)
	}

	go func() {
		appLogger.Info("Server starting",
			"port", cfg.Port,
			"debug_mode", cfg.DebugMode,
			"tls", cfg.TLS.Enabled(),
			"upstream", cfg.Upstream.BaseURL,
		)
		if err := listenAndServe(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Server failed to start",
				"error", err,
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutdown signal received, shutting down server...")

	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown",
			"error", err,
		)
	}

	if err := tel.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Failed to flush traces",
			"error", err,
		)
	}

	appLogger.Info("Server exited gracefully")
}

// setupRouter builds the two catch-all routes the form host talks to: GET
// anywhere answers the liveness probe, POST anywhere serves options.
func setupRouter(cfg *config.Config, appLogger *logger.Logger) *gin.Engine {
	router := gin.New()

	// Order matters: OTel opens the span, Recovery catches panics from
	// everything after it, the request logger records the final status.
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery(appLogger))
	router.Use(middleware.RequestLogger(appLogger))

	if cfg.DebugMode {
		router.Use(cors.New(cors.Config{
			AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Authorization", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Type"},
			AllowOriginFunc: func(origin string) bool {
				return true
			},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	client := lark.NewClient(appLogger, cfg.Upstream.BaseURL, lark.Credentials{
		AppID:     cfg.AppID,
		AppSecret: cfg.AppSecret,
	})
	svc := options.NewService(appLogger, client)
	optionsHandler := options.NewHandler(appLogger, cfg.AuthToken, svc)

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, api.Error(api.MsgMethodNotAllowed))
	})

	router.GET("/*path", handlers.NewHealthHandler().HealthCheck)
	router.POST("/*path", optionsHandler.ProvideOptions)

	return router
}
