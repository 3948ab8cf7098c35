package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pdf-summarizer/internal/domain"
	"pdf-summarizer/pkg/errors"

	"cloud.google.com/go/vertexai/genai"
)

// GeminiGenerator produces summaries via Vertex AI with JSON-mode output.
type GeminiGenerator struct {
	genaiClient *genai.Client
	modelName   string
	timeout     time.Duration
	logger      domain.Logger
}

// NewGeminiGenerator creates the Vertex AI client. Called once at startup;
// a client construction failure (missing project, bad credentials) is fatal.
func NewGeminiGenerator(config domain.Config, logger domain.Logger) (*GeminiGenerator, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, config.GetGCPProjectID(), config.GetGCPLocation())
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	return &GeminiGenerator{
		genaiClient: client,
		modelName:   config.GetGeminiModel(),
		timeout:     time.Duration(config.GetGenerateTimeoutSec()) * time.Second,
		logger:      logger,
	}, nil
}

// Generate sends the prompt as a single user message and returns the model's
// raw text response. One billed outbound call per invocation, no caching.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	model := g.genaiClient.GenerativeModel(g.modelName)
	model.SetTemperature(0.2)
	model.GenerationConfig.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.NewGenerationError("gemini call failed", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.NewGenerationError("empty response from model", nil)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}

	if resp.UsageMetadata != nil {
		g.logger.Debug("Generation complete", "model", g.modelName, "total_tokens", resp.UsageMetadata.TotalTokenCount)
	}
	return sb.String(), nil
}
