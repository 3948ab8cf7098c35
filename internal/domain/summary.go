package domain

import (
	"context"
	"encoding/json"
)

// SummaryRequest is the body of POST /summarize.
type SummaryRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// SummaryResult is the normalized model output. The model is asked for exactly
// these fields, but they are trusted verbatim; handlers pass the raw JSON
// through without re-marshaling so extra or missing fields survive untouched.
type SummaryResult struct {
	Gist      string `json:"gist"`
	KeyPoints string `json:"keyPoints"`
	Relevance string `json:"relevance"`
}

// DocumentFetcher downloads the raw bytes of a remote document.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// TextExtractor converts PDF bytes into plain text. An empty result is valid
// (scanned-image PDFs have no text layer).
type TextExtractor interface {
	Extract(pdf []byte) (string, error)
}

// SummaryGenerator invokes the external generative model and returns its raw
// text response.
type SummaryGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SummaryService runs the full pipeline: fetch -> extract -> prompt ->
// generate -> normalize. The returned JSON is the model's summary object.
type SummaryService interface {
	Summarize(ctx context.Context, req SummaryRequest) (json.RawMessage, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetGCPProjectID() string
	GetGCPLocation() string
	GetGeminiModel() string
	GetMaxRequestBody() int64
	GetMaxDocumentSize() int64
	GetFetchTimeoutSec() int
	GetGenerateTimeoutSec() int
}
