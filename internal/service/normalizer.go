package service

import (
	"encoding/json"
	"strings"

	"pdf-summarizer/pkg/errors"
)

// Normalize strips whitespace and a markdown ```json code-fence pair from the
// model's raw output, then validates the remainder as JSON. The parsed bytes
// are returned verbatim; fields are not schema-checked. Fences without the
// json tag, or prose around the fence, are deliberately not handled.
func Normalize(raw string) (json.RawMessage, error) {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```json") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	var result json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, errors.NewParseError("model output is not valid JSON", err)
	}
	return result, nil
}
