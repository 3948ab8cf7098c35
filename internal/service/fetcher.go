package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"pdf-summarizer/internal/domain"
	"pdf-summarizer/pkg/errors"
)

// DocumentFetcher downloads remote documents over HTTP. One outbound GET per
// call, no retries; every failure mode (network, TLS, timeout, non-2xx,
// oversized body) collapses into a single fetch-stage error.
type DocumentFetcher struct {
	client  *http.Client
	maxSize int64
	logger  domain.Logger
}

// NewDocumentFetcher creates a new fetcher with a bounded timeout and
// response-size cap taken from config.
func NewDocumentFetcher(config domain.Config, logger domain.Logger) *DocumentFetcher {
	return &DocumentFetcher{
		client: &http.Client{
			Timeout: time.Duration(config.GetFetchTimeoutSec()) * time.Second,
		},
		maxSize: config.GetMaxDocumentSize(),
		logger:  logger,
	}
}

// Fetch retrieves the raw bytes at url.
func (f *DocumentFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewFetchError("invalid document URL", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.NewFetchError("failed to download document", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewFetchError("document request failed", fmt.Errorf("unexpected status: %d", resp.StatusCode))
	}

	// Read one byte past the cap so an exactly-at-limit body still succeeds.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, errors.NewFetchError("failed to read document body", err)
	}
	if int64(len(body)) > f.maxSize {
		return nil, errors.NewFetchError("document exceeds size limit", fmt.Errorf("body larger than %d bytes", f.maxSize))
	}

	f.logger.Debug("Document downloaded", "url", url, "bytes", len(body))
	return body, nil
}
