package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"realtorbot/config"
	"realtorbot/database"
	listingRepoPkg "realtorbot/database/repository/listing"
	tourRepoPkg "realtorbot/database/repository/tour"
	"realtorbot/handlers"
	"realtorbot/routes"
	"realtorbot/services/convo"
	"realtorbot/services/engine"
	"realtorbot/services/listing"
	"realtorbot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitConvoStateCache()

	// Dialogue engine backend, selected by configuration.
	var eng engine.Engine
	switch config.AppConfig.EngineKind {
	case "gemini":
		geminiEngine, err := engine.NewGeminiEngine(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize gemini engine: %v", err)
		}
		eng = geminiEngine
	default:
		eng = engine.NewAssistantClient(
			config.AppConfig.AssistantURL,
			config.AppConfig.AssistantAPIKey,
			config.AppConfig.AssistantEnvID,
			config.AppConfig.AssistantAPIVersion,
		)
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Repositories.
	listingRepo := listingRepoPkg.NewMongoListingRepo()
	tourRepo := tourRepoPkg.NewMongoTourRepo()

	// Services.
	listingService := &listing.DefaultService{Repo: listingRepo}
	stateStore := convo.NewRedisStateStore(utils.GetConvoStateClient(), utils.ConvoStateTTL)

	handlerBundle := handlers.NewHandlerBundle(eng, stateStore, listingService, tourRepo)
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetConvoStateClient(), database.MongoClient)

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
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Sugar().Info("Server exited cleanly")
}
