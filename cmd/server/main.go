package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"webintake-backend-go/internal/api"
	"webintake-backend-go/internal/auth"
	"webintake-backend-go/internal/config"
	"webintake-backend-go/internal/core"
	"webintake-backend-go/internal/db"
	"webintake-backend-go/internal/middleware"
	"webintake-backend-go/internal/notify"
	"webintake-backend-go/pkg/cache"
	"webintake-backend-go/pkg/mailer"
	"webintake-backend-go/pkg/messagequeue"
)

func main() {
	// --- 1. Initialize Logger (Zap) ---
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Zap logger initialized successfully.")

	// --- 2. Load Application Configuration ---
	// A local .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		zapLogger.Info("Loaded environment from .env file.")
	}
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.")

	// --- 3. Initialize Record Store and Repositories ---
	store, err := db.NewStore(appConfig.DataDir)
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize record store", zap.Error(err))
	}
	userRepo := db.NewFileUserRepository(store)
	projectRepo := db.NewFileProjectRepository(store)
	zapLogger.Info("Record store initialized", zap.String("dataDir", appConfig.DataDir))

	// --- 4. Initialize Session Token Manager and Denylist ---
	tokens := auth.NewManager(appConfig.JWTSecret, appConfig.TokenTTL)
	var denylist cache.Cache
	if appConfig.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(cache.RedisOptions{
			Address:  appConfig.RedisAddr,
			Password: appConfig.RedisPassword,
			DB:       appConfig.RedisDB,
		})
		if err != nil {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to connect to Redis for the session denylist", zap.Error(err))
		}
		denylist = redisCache
		zapLogger.Info("Session denylist backed by Redis", zap.String("addr", appConfig.RedisAddr))
	} else {
		denylist = cache.NewMemoryCache()
		zapLogger.Info("Session denylist is in-memory (REDIS_ADDR not set).")
	}

	// --- 5. Initialize Notification Dispatcher ---
	var transport notify.Transport
	var queue messagequeue.MessageQueue
	switch {
	case appConfig.AMQPURL != "":
		queue, err = messagequeue.NewRabbitMQService(appConfig.AMQPURL)
		if err != nil {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to connect to RabbitMQ for notifications", zap.Error(err))
		}
		transport = &notify.QueueTransport{Queue: queue, QueueName: appConfig.NotifyQueue}
		zapLogger.Info("Notifications routed through RabbitMQ", zap.String("queue", appConfig.NotifyQueue))
	case appConfig.SMTPHost != "":
		transport = &notify.SMTPTransport{
			Mailer: mailer.New(appConfig.SMTPHost, appConfig.SMTPPort, appConfig.SMTPUsername, appConfig.SMTPPassword),
			From:   appConfig.NotifyEmail,
			To:     appConfig.NotifyEmail,
		}
		zapLogger.Info("Notifications routed through SMTP", zap.String("host", appConfig.SMTPHost))
	default:
		zapLogger.Warn("Notification transport not configured; submissions will only be logged.")
	}
	dispatcher := notify.NewDispatcher(transport, zapLogger)
	defer dispatcher.Close()
	if queue != nil {
		defer queue.Close()
	}

	// --- 6. Initialize Services ---
	userService := core.NewUserService(userRepo, core.UserServiceConfig{
		AllowedEmailDomain:  appConfig.AllowedEmailDomain,
		MaxAccountsPerEmail: appConfig.MaxAccountsPerEmail,
		AdminUsername:       appConfig.AdminUsername,
		AdminPassword:       appConfig.AdminPassword,
	})
	projectService := core.NewProjectService(projectRepo, dispatcher, core.ProjectServiceConfig{
		AdvanceRate: appConfig.AdvanceRate,
		IDPolicy:    appConfig.IDPolicy,
	})
	zapLogger.Info("Core services initialized successfully.",
		zap.Float64("advanceRate", appConfig.AdvanceRate),
		zap.String("idPolicy", appConfig.IDPolicy))

	// --- 7. Setup Gin HTTP Engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	// --- 8. Apply Global Middleware (order matters) ---
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured.")
	}

	// --- 9. Setup API Routes ---
	api.SetupRoutes(router, zapLogger, tokens, denylist, appConfig.TokenTTL, userService, projectService)

	// --- 10. Configure and Start HTTP Server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 11. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}
	zapLogger.Info("Server exiting gracefully.")
}
