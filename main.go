// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"bookline/config"
	"bookline/database"
	providerRepo "bookline/database/repository/provider"
	recordsRepo "bookline/database/repository/records"
	slotRepo "bookline/database/repository/slot"
	"bookline/handlers"
	"bookline/middleware"
	"bookline/routes"
	"bookline/services/booking"
	"bookline/services/intent"
	provider "bookline/services/provider"
	"bookline/services/validation"
	"bookline/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	provRepo := providerRepo.NewMongoProviderRepo()
	slots := slotRepo.NewMongoSlotRepo()
	records := recordsRepo.NewMongoRecordRepo()

	// Services.
	providerService := &provider.DefaultService{
		Repo:  provRepo,
		Slots: slots,
		Cache: utils.GetCacheClient(),
	}
	validator := &validation.DefaultIntentValidator{
		Catalog:        providerService,
		Slots:          slots,
		MaxAdvanceDays: config.AppConfig.MaxAdvanceDays,
	}
	bookingEngine := &booking.DefaultEngine{
		Providers: provRepo,
		Slots:     slots,
		Records:   records,
	}

	var extractor intent.Extractor
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		ex, err := intent.NewGeminiExtractor(context.Background(), key)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize intent extractor: %v", err)
		}
		extractor = ex
	} else {
		logger.Sugar().Warn("main: GEMINI_API_KEY not set, intent extraction disabled")
	}

	// Handlers.
	hb := &routes.HandlerBundle{
		ProviderRepo: provRepo,
		Validation:   handlers.NewValidationHandler(validator, logger),
		Booking:      handlers.NewBookingHandler(bookingEngine, records, logger),
		Provider:     handlers.NewProviderHandler(providerService, logger),
		Intent:       handlers.NewIntentHandler(extractor, validator, logger),
		Speech:       handlers.NewSpeechHandler(logger),
	}
	routes.RegisterRoutes(router, hb)

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
