package service

import (
	"strings"

	"pdf-summarizer/internal/domain"
	"pdf-summarizer/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// PDFExtractor converts PDF bytes into plain text using MuPDF. Pure
// text-stream concatenation: no OCR, no layout or table reconstruction.
type PDFExtractor struct {
	logger domain.Logger
}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor(logger domain.Logger) *PDFExtractor {
	return &PDFExtractor{logger: logger}
}

// Extract returns the concatenated text of all pages. A PDF with no text
// layer (e.g. scanned images) yields an empty string, which is valid; only
// a document that cannot be opened at all is an error.
func (e *PDFExtractor) Extract(pdf []byte) (string, error) {
	doc, err := fitz.NewFromMemory(pdf)
	if err != nil {
		return "", errors.NewExtractionError("failed to open PDF", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	var sb strings.Builder
	for pageNum := 0; pageNum < numPages; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			e.logger.Warn("Failed to extract text from page", "page_num", pageNum+1, "total", numPages, "error", err)
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(text)
	}

	e.logger.Debug("PDF text extracted", "pages", numPages, "chars", sb.Len())
	return sb.String(), nil
}
