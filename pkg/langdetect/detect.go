// Package langdetect detects the language of raw bodies: freeform fenced
// blocks and raw directive content that carry no info string. Detection is
// go-enry's classifier with a few cheap pattern checks in front of it.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const langText = "text"

// candidates are the languages offered to the classifier. Raw bodies in
// documents are overwhelmingly config or code snippets.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// Detect returns a lowercase language tag for raw content, or "text" when
// detection fails or confidence is low.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return langText
	}

	// A shebang is authoritative.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}
	return langText
}

// detectByPattern handles shapes the statistical classifier gets wrong on
// short snippets.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return "go"
	case bytes.HasPrefix(trimmed, []byte("<!doctype html")),
		bytes.HasPrefix(trimmed, []byte("<!DOCTYPE html")),
		bytes.HasPrefix(trimmed, []byte("<html")):
		return "html"
	case bytes.HasPrefix(trimmed, []byte("FROM ")) && bytes.Contains(content, []byte("RUN ")):
		return "dockerfile"
	case (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)):
		return "json"
	case sqlLead(trimmed):
		return "sql"
	}
	return ""
}

func sqlLead(trimmed []byte) bool {
	upper := strings.ToUpper(string(trimmed))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE TABLE"} {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}

// normalize converts go-enry language names to fence-style tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
