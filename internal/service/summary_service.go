package service

import (
	"context"
	"encoding/json"

	"pdf-summarizer/internal/domain"
)

// SummaryService runs the request pipeline: fetch -> extract -> prompt ->
// generate -> normalize. Stages are strictly sequential; the first failure
// short-circuits the rest and is returned with the stage tag it was created
// with. No stage is retried and no state survives a call.
type SummaryService struct {
	fetcher   domain.DocumentFetcher
	extractor domain.TextExtractor
	generator domain.SummaryGenerator
	logger    domain.Logger
}

// NewSummaryService creates a new summary pipeline instance
func NewSummaryService(
	fetcher domain.DocumentFetcher,
	extractor domain.TextExtractor,
	generator domain.SummaryGenerator,
	logger domain.Logger,
) *SummaryService {
	return &SummaryService{
		fetcher:   fetcher,
		extractor: extractor,
		generator: generator,
		logger:    logger,
	}
}

// Summarize processes one document end to end and returns the model's
// summary object as raw JSON.
func (s *SummaryService) Summarize(ctx context.Context, req domain.SummaryRequest) (json.RawMessage, error) {
	s.logger.Debug("Pipeline fetching", "url", req.URL)
	pdf, err := s.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Pipeline extracting", "bytes", len(pdf))
	text, err := s.extractor.Extract(pdf)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(req.Title, text)

	s.logger.Debug("Pipeline generating", "prompt_chars", len(prompt))
	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Pipeline normalizing", "response_chars", len(raw))
	result, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	return result, nil
}
