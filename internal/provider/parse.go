package provider

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/svadhyaya/padaccheda-backend/internal/domain"
)

// Parse failure categories. Each wraps domain.ErrModelService and carries a
// distinct stable message fragment so callers can discriminate failure
// classes with errors.Is or by pattern.
var (
	// ErrEmptyResponse: the model returned no content blocks, or none with text.
	ErrEmptyResponse = fmt.Errorf("%w: empty response from model", domain.ErrModelService)
	// ErrParse: the extracted payload is not JSON at all.
	ErrParse = fmt.Errorf("%w: model output is not valid JSON", domain.ErrModelService)
	// ErrInvalidStructure: valid JSON, wrong shape.
	ErrInvalidStructure = fmt.Errorf("%w: missing words array in model output", domain.ErrModelService)
	// ErrInvalidEntry: a words element lacks a required key.
	ErrInvalidEntry = fmt.Errorf("%w: invalid word entry in model output", domain.ErrModelService)
)

// fencedBlock matches a triple-backtick code fence, optionally tagged "json",
// capturing the inner content. Models often wrap structured output in
// markdown prose; the fence, when present, wins over the surrounding text.
var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ParseAnalysis validates the model's reply. The input is the textual content
// blocks of the response, untrusted free text. Every rejection is one of the
// named failure categories above; ParseAnalysis never panics on malformed
// input.
//
// Stages, short-circuiting on the first failure:
//  1. presence: at least one non-blank text block
//  2. extraction: fenced JSON if present, otherwise the whole trimmed text
//  3. JSON parsing
//  4. shape: an object with a "words" array
//  5. per-entry validation, fail-fast on the first bad element
func ParseAnalysis(blocks []string) (*AnalysisResult, error) {
	text := firstText(blocks)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	payload := extractPayload(text)

	var v any
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrInvalidStructure
	}
	rawWords, ok := obj["words"].([]any)
	if !ok {
		return nil, ErrInvalidStructure
	}

	words := make([]domain.WordEntry, 0, len(rawWords))
	for i, raw := range rawWords {
		entry, err := parseEntry(i, raw)
		if err != nil {
			return nil, err
		}
		words = append(words, entry)
	}

	result := &AnalysisResult{Words: words}

	if alts, ok := obj["alternativeTranslations"].([]any); ok {
		for _, a := range alts {
			result.AlternativeTranslations = append(result.AlternativeTranslations, coerceString(a))
		}
	}

	return result, nil
}

// parseEntry validates one element of the words array. A malformed element
// fails the whole parse: silently dropping entries would hide data-quality
// regressions from the model.
func parseEntry(i int, raw any) (domain.WordEntry, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return domain.WordEntry{}, fmt.Errorf("%w: words[%d] is not an object", ErrInvalidEntry, i)
	}

	for _, key := range []string{"word", "grammaticalForm", "meanings"} {
		if _, ok := obj[key]; !ok {
			return domain.WordEntry{}, fmt.Errorf("%w: words[%d] missing %q", ErrInvalidEntry, i, key)
		}
	}

	entry := domain.WordEntry{
		Word:            coerceString(obj["word"]),
		GrammaticalForm: coerceString(obj["grammaticalForm"]),
		Meanings:        coerceStringList(obj["meanings"]),
	}

	if note, ok := obj["contextualNote"]; ok {
		s := coerceString(note)
		entry.ContextualNote = &s
	}

	return entry, nil
}

// firstText returns the first block with non-blank content, trimmed.
func firstText(blocks []string) string {
	for _, b := range blocks {
		if t := strings.TrimSpace(b); t != "" {
			return t
		}
	}
	return ""
}

// extractPayload returns the inner content of the first fenced code block,
// or the whole text when no fence is present.
func extractPayload(text string) string {
	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return text
}

func coerceString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// coerceStringList stringifies each element of a list value; a scalar is
// wrapped into a single-element list.
func coerceStringList(v any) []string {
	if list, ok := v.([]any); ok {
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, coerceString(item))
		}
		return out
	}
	return []string{coerceString(v)}
}
