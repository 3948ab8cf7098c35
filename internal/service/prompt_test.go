package service

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBuildPrompt_ContainsInstructionsAndTitle(t *testing.T) {
	prompt := BuildPrompt("Annual Report", "Revenue grew this year.")

	if !strings.Contains(prompt, "expert analyst") {
		t.Fatalf("expected role framing in prompt, got: %s", prompt)
	}
	for _, field := range []string{`"gist"`, `"keyPoints"`, `"relevance"`} {
		if !strings.Contains(prompt, field) {
			t.Fatalf("expected prompt to require field %s", field)
		}
	}
	if !strings.Contains(prompt, "Respond with JSON only") {
		t.Fatal("expected JSON-only directive in prompt")
	}
	if !strings.Contains(prompt, "Document title: Annual Report") {
		t.Fatal("expected title to be interpolated into prompt")
	}
	if !strings.Contains(prompt, "Revenue grew this year.") {
		t.Fatal("expected document text in prompt")
	}
}

func TestBuildPrompt_TruncatesLongText(t *testing.T) {
	// "z" does not occur in the instruction template, so counting it counts
	// only document characters.
	text := strings.Repeat("z", maxDocumentChars+5000)
	prompt := BuildPrompt("Title", text)

	if strings.Count(prompt, "z") != maxDocumentChars {
		t.Fatalf("expected exactly %d document characters, got %d", maxDocumentChars, strings.Count(prompt, "z"))
	}

	// Prompt never exceeds template + title + truncated text.
	bound := len(promptTemplate) + len("Title") + maxDocumentChars + 100
	if len(prompt) > bound {
		t.Fatalf("prompt length %d exceeds bound %d", len(prompt), bound)
	}
}

func TestBuildPrompt_TruncationIsRuneSafe(t *testing.T) {
	text := strings.Repeat("€", maxDocumentChars+10)
	prompt := BuildPrompt("Title", text)

	if !utf8.ValidString(prompt) {
		t.Fatal("truncation produced invalid UTF-8")
	}
	if got := strings.Count(prompt, "€"); got != maxDocumentChars {
		t.Fatalf("expected %d runes kept, got %d", maxDocumentChars, got)
	}
}

func TestBuildPrompt_ShortTextUntouched(t *testing.T) {
	prompt := BuildPrompt("Title", "short")
	if !strings.HasSuffix(prompt, "short") {
		t.Fatalf("expected short text to pass through unmodified, got suffix of: %s", prompt)
	}
}

func TestBuildPrompt_Pure(t *testing.T) {
	a := BuildPrompt("T", "same input")
	b := BuildPrompt("T", "same input")
	if a != b {
		t.Fatal("expected identical prompts for identical inputs")
	}
}
