package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codekeeper/codekeeper/internal/handlers"
	"github.com/codekeeper/codekeeper/internal/middleware"
	"github.com/codekeeper/codekeeper/internal/repositories"
	"github.com/codekeeper/codekeeper/internal/services"
	"github.com/codekeeper/codekeeper/pkg/config"
	"github.com/codekeeper/codekeeper/pkg/database"
	"github.com/codekeeper/codekeeper/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	logger.Init()

	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize database
	if err := database.Init(config.AppConfig.Database.Path); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	personRepo := repositories.NewPersonRepository(database.DB)
	personService := services.NewPersonService(personRepo)
	exportService := services.NewExportService(personService)
	personHandler := handlers.NewPersonHandler(personService, exportService)
	notFoundHandler := handlers.NewNotFoundHandler()

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	setupRoutes(router, personHandler, notFoundHandler)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

func setupRoutes(router *gin.Engine, personHandler *handlers.PersonHandler, notFoundHandler *handlers.NotFoundHandler) {
	api := router.Group("/api")
	{
		api.POST("/people", personHandler.CreatePerson)
		api.GET("/people", personHandler.ListPeople)
		api.GET("/people/export", personHandler.ExportPeople)
		api.GET("/people/:id", personHandler.GetPerson)
		api.PUT("/people/:id", personHandler.UpdatePerson)
		api.DELETE("/people/:id", personHandler.DeletePerson)
	}

	router.NoRoute(notFoundHandler.NotFound)
}
