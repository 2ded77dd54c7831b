// File: brewvoice/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brewvoice/config"
	"brewvoice/database"
	menuRepo "brewvoice/database/repository/menu"
	orderRepo "brewvoice/database/repository/order"
	"brewvoice/handlers"
	"brewvoice/middleware"
	"brewvoice/models"
	"brewvoice/routes"
	"brewvoice/services/assistant"
	orderSvc "brewvoice/services/order"
	"brewvoice/services/payment"
	"brewvoice/services/speech"
	"brewvoice/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Repositories.
	menu := menuRepo.NewMongoMenuRepo()
	orders := orderRepo.NewMongoOrderRepo()

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelSeed()
	if err := menu.Seed(seedCtx, models.DefaultMenu()); err != nil {
		logger.Sugar().Fatalf("main: failed to seed menu: %v", err)
	}
	items, err := menu.GetAll(seedCtx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load menu: %v", err)
	}
	catalog := models.NewCatalog(items)

	// Order placement service and its HTTP client collaborator.
	orderService := &orderSvc.DefaultOrderService{
		Menu:   menu,
		Orders: orders,
		Logger: logger,
	}
	placer := assistant.NewHTTPOrderClient(config.AppConfig.OrderAPIBase)

	// Voice assistant core.
	artifact := payment.NewUPIGenerator(config.AppConfig.UPIID, config.AppConfig.PayeeName, logger)
	reducer := &assistant.Reducer{
		Catalog:     catalog,
		Placer:      placer,
		Artifact:    artifact,
		TableNumber: config.AppConfig.TableNumber,
		Logger:      logger,
	}
	sessionStore := assistant.NewRedisSessionStore(utils.GetSessionCacheClient(), 30*time.Minute)
	assistantService := assistant.NewDefaultAssistantService(
		assistant.NewParser(catalog),
		reducer,
		sessionStore,
		logger,
	)
	recognizer := speech.NewGoogleRecognizer(config.AppConfig.SpeechCredentialsFile)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &routes.HandlerBundle{
		Assistant: handlers.NewAssistantHandler(assistantService, recognizer, logger),
		Order:     handlers.NewOrderHandler(orderService, logger),
		Menu:      handlers.NewMenuHandler(menu, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

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
