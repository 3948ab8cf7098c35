package config

import (
	"fmt"

	"pdf-summarizer/internal/domain"
	"pdf-summarizer/internal/service"
	"pdf-summarizer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config         domain.Config
	Logger         domain.Logger
	Fetcher        domain.DocumentFetcher
	Extractor      domain.TextExtractor
	Generator      domain.SummaryGenerator
	SummaryService domain.SummaryService
}

// NewContainer creates a new dependency injection container. It fails when
// the Vertex AI credential is missing so the process never serves traffic
// without a working generator.
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	if config.GetGCPProjectID() == "" {
		return nil, fmt.Errorf("GCP_PROJECT_ID is required but not set")
	}

	generator, err := service.NewGeminiGenerator(config, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generator: %w", err)
	}

	fetcher := service.NewDocumentFetcher(config, appLogger)
	extractor := service.NewPDFExtractor(appLogger)
	summaryService := service.NewSummaryService(fetcher, extractor, generator, appLogger)

	return &Container{
		Config:         config,
		Logger:         appLogger,
		Fetcher:        fetcher,
		Extractor:      extractor,
		Generator:      generator,
		SummaryService: summaryService,
	}, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetSummaryService returns the summary pipeline instance
func (c *Container) GetSummaryService() domain.SummaryService {
	return c.SummaryService
}
