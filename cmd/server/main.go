package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pdf-summarizer/internal/config"
	"pdf-summarizer/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// Wiring. Fails before the listener starts when the Vertex AI
	// credential is missing.
	container, err := config.NewContainer()
	if err != nil {
		log.Fatalf("Startup failed: %v", err)
	}

	cfg := container.GetConfig()
	appLogger := container.GetLogger()

	// Handlers
	summaryHandler := handler.NewSummaryHandler(
		container.GetSummaryService(),
		cfg.GetMaxRequestBody(),
		appLogger,
	)

	// Router
	router := handler.NewRouter(summaryHandler)

	// start server
	server := &http.Server{
		Addr:    ":" + cfg.GetServerPort(),
		Handler: router,
	}

	// Run server
	go func() {
		appLogger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	_ = server.Close()

	appLogger.Info("Server exited")
}
