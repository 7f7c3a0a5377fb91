// File: movelink/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movelink/config"
	"movelink/handlers"
	"movelink/middleware"
	"movelink/routes"
	"movelink/services/geocode"
	"movelink/services/quote"
	"movelink/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	sessionStore := quote.NewRedisSessionStore(utils.GetCacheClient(), config.SessionTTL())
	quoteService := quote.NewSessionService(sessionStore, config.ResetDelay(), logger)

	geocoder := geocode.NewOpenCageClient(config.AppConfig.OpenCageAPIKey, logger)
	suggestor := geocode.NewDebouncer(geocoder, config.GeocodeDebounce(), logger)
	defer suggestor.Close()

	quoteHandler := handlers.NewQuoteHandler(quoteService, suggestor, logger)

	// Register routes.
	routes.RegisterRoutes(router, quoteHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
