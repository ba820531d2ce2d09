package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"

	"kopikita/internal/handler"
	"kopikita/internal/jobs"
	"kopikita/internal/repositories"
	"kopikita/internal/router"
	"kopikita/internal/service"
	"kopikita/pkg/envconfig"
	"kopikita/pkg/flags"
	"kopikita/pkg/localstore"
	"kopikita/pkg/logger"
	"kopikita/pkg/shutdownsetup"
)

func main() {
	// Parse command-line flags
	flagConfig := flags.Parse()

	// Validate flag configuration
	if err := flagConfig.Validate(); err != nil {
		fmt.Printf("Configuration error: %v\n", err)
		return
	}

	envErr := envconfig.LoadEnvFile(".env")

	loggerConfig := logger.Config{
		Level:        envconfig.GetLogLevel(),
		Format:       envconfig.GetEnv("LOG_FORMAT", "json"),
		Output:       envconfig.GetEnv("LOG_OUTPUT", "stdout"),
		EnableCaller: envconfig.GetEnv("LOG_ENABLE_CALLER", "true") == "true",
		Environment:  envconfig.GetEnv("ENVIRONMENT", "development"),
	}

	appLogger := logger.New(loggerConfig)

	if envErr != nil {
		appLogger.Warn("Failed to load .env file", "error", envErr)
	} else {
		appLogger.Debug(".env file loaded successfully")
	}

	appLogger.Info("Starting Kopikita application",
		"environment", loggerConfig.Environment,
		"log_level", loggerConfig.Level)

	storeConfig := envconfig.LoadStoreConfig()
	if flagConfig.StorePath != "" {
		storeConfig.Path = flagConfig.StorePath
	}

	// Open the local store
	store, err := localstore.Open(storeConfig, appLogger)
	if err != nil {
		appLogger.Error("Failed to open local store", "error", err, "path", storeConfig.Path)
		return
	}
	appLogger.Info("Local store opened", "path", store.Path())

	if err := store.HealthCheck(); err != nil {
		appLogger.Error("Local store health check failed", "error", err)
	} else {
		appLogger.Info("Local store health check passed")
	}

	defer func() {
		if err := store.Close(); err != nil {
			appLogger.Error("Failed to close local store", "error", err)
		}
	}()

	bus := EventBus.New()

	// Initialize repositories with logger and local store
	catalogRepo := repositories.NewCatalogRepository(appLogger)
	voucherRepo := repositories.NewVoucherRepository(appLogger)
	orderRepo := repositories.NewOrderRepository(appLogger, store)
	favoriteRepo := repositories.NewFavoriteRepository(appLogger, store)
	notificationRepo := repositories.NewNotificationRepository(appLogger, store)
	profileRepo := repositories.NewProfileRepository(appLogger, store)

	// Initialize services with logger
	menuService := service.NewMenuService(catalogRepo, appLogger)
	cartService := service.NewCartService(catalogRepo, voucherRepo, appLogger)
	gateway := service.NewPaymentGateway(appLogger)
	orderService := service.NewOrderService(orderRepo, bus, appLogger)
	checkoutService := service.NewCheckoutService(cartService, orderRepo, gateway, bus, appLogger)
	notificationService := service.NewNotificationService(notificationRepo, bus, appLogger)
	favoriteService := service.NewFavoriteService(favoriteRepo, catalogRepo, cartService, appLogger)
	profileService := service.NewProfileService(profileRepo, appLogger)

	// Background jobs: kitchen simulation and notification retention
	scheduler := jobs.NewScheduler(orderService, notificationService, appLogger)
	if err := scheduler.Start(); err != nil {
		appLogger.Error("Failed to start scheduler", "error", err)
		return
	}
	defer scheduler.Stop()

	// Initialize handlers with logger
	mux := router.NewRouter(router.Handlers{
		Menu:         handler.NewMenuHandler(menuService, appLogger),
		Cart:         handler.NewCartHandler(cartService, appLogger),
		Order:        handler.NewOrderHandler(orderService, checkoutService, appLogger),
		Favorite:     handler.NewFavoriteHandler(favoriteService, appLogger),
		Notification: handler.NewNotificationHandler(notificationService, appLogger),
		Profile:      handler.NewProfileHandler(profileService, appLogger),
	})

	httpHandler := appLogger.HTTPMiddleware(mux)

	initialPort := flagConfig.Port
	if initialPort == "" {
		initialPort = envconfig.GetEnv("PORT", "8080")
	}
	host := envconfig.GetEnv("HOST", "localhost")

	port := initialPort

	server := &http.Server{
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		server.Addr = host + ":" + port

		go func() {
			appLogger.Info("Starting HTTP server",
				"host", host,
				"port", port,
				"address", server.Addr)

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLogger.Error("Server error", "error", err)
				serverErrors <- err
			}
		}()

		select {
		case err := <-serverErrors:
			if strings.Contains(err.Error(), "address already in use") && i < maxRetries-1 {
				portNum := 8080 + i + 1
				port = fmt.Sprintf("%d", portNum)
				appLogger.Warn("Port already in use, trying alternative port",
					"current_port", server.Addr,
					"next_port", port)
				continue
			} else {
				appLogger.Error("Failed to start server after retries", "error", err)
				return
			}
		case <-time.After(200 * time.Millisecond):
			appLogger.Info("Server started successfully", "port", port)
		}

		break
	}

	select {
	case err := <-serverErrors:
		appLogger.Error("Could not start server", "error", err)
		return
	default:
		shutdownsetup.SetupGracefulShutdown(server, appLogger)
	}
}
