package service

import "strings"

// maxDocumentChars bounds how much extracted text is sent to the model.
// Anything past this offset is silently discarded.
const maxDocumentChars = 15000

const promptTemplate = `You are an expert analyst. Read the document below and respond with a JSON object containing exactly these fields:
- "gist": a concise summary of the document in about 2 sentences, written in a positive tone.
- "keyPoints": the 5 most important points as an HTML unordered list ("<ul><li>...</li></ul>").
- "relevance": a short statement of who this document is relevant to and why.
Respond with JSON only. Do not include any other text or formatting.`

// BuildPrompt combines the fixed instruction template with the document title
// and the extracted text truncated to its first 15,000 characters. Pure
// function: same inputs always produce the same prompt.
func BuildPrompt(title, text string) string {
	runes := []rune(text)
	if len(runes) > maxDocumentChars {
		runes = runes[:maxDocumentChars]
	}

	var sb strings.Builder
	sb.WriteString(promptTemplate)
	sb.WriteString("\n\nDocument title: ")
	sb.WriteString(title)
	sb.WriteString("\n\nDocument text:\n")
	sb.WriteString(string(runes))
	return sb.String()
}
