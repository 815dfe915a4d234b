package services

import (
	"fmt"
	"strings"

	"github.com/helektron-labs/lectern/internal/core/domain"
)

// Tolerant parsers for the generation provider's free-text output.
// A malformed line becomes a warning and is skipped; the caller returns a
// partial result rather than failing the request.

// parseKeyTerms parses "Term: definition" lines.
func parseKeyTerms(raw string) ([]domain.KeyTerm, []string) {
	var terms []domain.KeyTerm
	var warnings []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isSectionHeader(line) {
			continue
		}

		item := stripListPrefix(line)
		term, definition, found := strings.Cut(item, ":")
		if !found {
			warnings = append(warnings, fmt.Sprintf("skipped line with no term separator: %q", truncate(line)))
			continue
		}

		term = strings.Trim(strings.TrimSpace(term), "*_")
		definition = strings.TrimSpace(definition)
		if term == "" || definition == "" {
			warnings = append(warnings, fmt.Sprintf("skipped incomplete term: %q", truncate(line)))
			continue
		}

		terms = append(terms, domain.KeyTerm{Term: term, Definition: definition})
	}

	return terms, warnings
}

// parseQuestions parses one question per line. A short line ending with a
// colon is treated as a category header for the questions that follow.
func parseQuestions(raw string) ([]domain.Question, []string) {
	var questions []domain.Question
	var warnings []string
	category := ""

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isSectionHeader(line) {
			category = strings.Trim(strings.TrimSuffix(line, ":"), "*_# ")
			continue
		}

		prompt := stripListPrefix(line)
		if prompt == "" {
			warnings = append(warnings, fmt.Sprintf("skipped empty list item: %q", truncate(line)))
			continue
		}

		questions = append(questions, domain.Question{Prompt: prompt, Category: category})
	}

	return questions, warnings
}

// parseResources parses "Title | type | source | reason" lines.
// The reason field is optional; fewer than three fields is malformed.
func parseResources(raw string) ([]domain.Resource, []string) {
	var resources []domain.Resource
	var warnings []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isSectionHeader(line) {
			continue
		}

		item := stripListPrefix(line)
		fields := strings.Split(item, "|")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		if len(fields) < 3 || fields[0] == "" {
			warnings = append(warnings, fmt.Sprintf("skipped malformed resource: %q", truncate(line)))
			continue
		}

		resource := domain.Resource{
			Title:  strings.Trim(fields[0], "*_"),
			Type:   fields[1],
			Source: fields[2],
		}
		if len(fields) > 3 {
			resource.Reason = fields[3]
		}
		resources = append(resources, resource)
	}

	return resources, warnings
}

// stripListPrefix removes a leading bullet or "1." / "1)" style number.
func stripListPrefix(line string) string {
	line = strings.TrimLeft(line, "-*• \t")

	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(line) && (line[digits] == '.' || line[digits] == ')') {
		line = line[digits+1:]
	}

	return strings.TrimSpace(line)
}

// isSectionHeader reports whether the line looks like a heading rather
// than a list item: short, ends with a colon, and carries no body after it.
func isSectionHeader(line string) bool {
	if strings.HasPrefix(line, "#") {
		return true
	}
	if !strings.HasSuffix(line, ":") {
		return false
	}
	body := strings.TrimSuffix(line, ":")
	if strings.Contains(body, ":") {
		return false
	}
	if stripListPrefix(body) != body {
		return false
	}
	return len(strings.Fields(body)) <= 5
}

// truncate bounds a warning's quoted line.
func truncate(s string) string {
	if len(s) > 80 {
		return s[:80] + "..."
	}
	return s
}
