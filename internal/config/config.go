package config

import (
	"os"
	"strconv"

	"pdf-summarizer/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort         string
	LogLevel           string
	GCPProjectID       string
	GCPLocation        string
	GeminiModel        string
	MaxRequestBody     int64
	MaxDocumentSize    int64
	FetchTimeoutSec    int
	GenerateTimeoutSec int
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:         getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		GCPProjectID:       getEnvOrDefault("GCP_PROJECT_ID", ""),
		GCPLocation:        getEnvOrDefault("GCP_LOCATION", "us-central1"),
		GeminiModel:        getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash-001"),
		MaxRequestBody:     getEnvInt64OrDefault("MAX_REQUEST_BODY", 10*1024*1024),  // 10MB default
		MaxDocumentSize:    getEnvInt64OrDefault("MAX_DOCUMENT_SIZE", 25*1024*1024), // 25MB default
		FetchTimeoutSec:    getEnvIntOrDefault("FETCH_TIMEOUT_SEC", 30),
		GenerateTimeoutSec: getEnvIntOrDefault("GENERATE_TIMEOUT_SEC", 60),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetGCPProjectID returns the Google Cloud project used for Vertex AI
func (c *AppConfig) GetGCPProjectID() string {
	return c.GCPProjectID
}

// GetGCPLocation returns the Vertex AI region
func (c *AppConfig) GetGCPLocation() string {
	return c.GCPLocation
}

// GetGeminiModel returns the generative model identifier
func (c *AppConfig) GetGeminiModel() string {
	return c.GeminiModel
}

// GetMaxRequestBody returns the inbound request body cap in bytes
func (c *AppConfig) GetMaxRequestBody() int64 {
	return c.MaxRequestBody
}

// GetMaxDocumentSize returns the maximum downloadable document size in bytes
func (c *AppConfig) GetMaxDocumentSize() int64 {
	return c.MaxDocumentSize
}

// GetFetchTimeoutSec returns the document download timeout in seconds
func (c *AppConfig) GetFetchTimeoutSec() int {
	return c.FetchTimeoutSec
}

// GetGenerateTimeoutSec returns the model call timeout in seconds
func (c *AppConfig) GetGenerateTimeoutSec() int {
	return c.GenerateTimeoutSec
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
