package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"pdf-summarizer/internal/domain"
	"pdf-summarizer/pkg/errors"
)

const (
	missingFieldsMessage   = "Missing 'url' or 'title' in request body."
	pipelineFailureMessage = "Failed to process document or generate summary."
	parseFailureDetail     = "AI structure error or malformed response."
	fetchFailureDetail     = "External PDF access failure."
)

// SummaryHandler handles HTTP requests for document summarization
type SummaryHandler struct {
	summaryService domain.SummaryService
	maxRequestBody int64
	logger         domain.Logger
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewSummaryHandler creates a new summary handler instance
func NewSummaryHandler(summaryService domain.SummaryService, maxRequestBody int64, logger domain.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		maxRequestBody: maxRequestBody,
		logger:         logger,
	}
}

// Summarize handles POST /summarize: validates the request, runs the
// pipeline, and maps failures to the two fixed client-facing responses. The
// underlying error is logged in full but never returned to the client.
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestBody)

	var req domain.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}

	// Validation gate: nothing reaches the pipeline without both fields.
	if strings.TrimSpace(req.URL) == "" || strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}

	result, err := h.summaryService.Summarize(r.Context(), req)
	if err != nil {
		h.logger.Error("Summarization failed", err, "url", req.URL, "stage", errors.GetType(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   pipelineFailureMessage,
			Details: failureDetail(err),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result)
}

// failureDetail picks the coarse client-facing detail string from the error's
// stage tag. Only normalization failures are reported as a model-output
// problem; everything else reads as a document access problem.
func failureDetail(err error) string {
	if errors.IsType(err, errors.ErrorTypeParse) {
		return parseFailureDetail
	}
	return fetchFailureDetail
}
