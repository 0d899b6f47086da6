package translation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/svadhyaya/padaccheda-backend/internal/domain"
)

// Translate produces the word-by-word breakdown of a passage.
//
// Stages:
//  1. Normalize the script. On failure the call stops here; no collaborator
//     is ever invoked for mixed-script input.
//  2. Semantic analysis (mandatory). A model failure propagates unmodified —
//     without the model's word and compound segmentation there is nothing
//     meaningful to return.
//  3. Lexical enrichment (optional). Must not start before stage 2 resolves:
//     the lookup keys are the model's segmentation of the passage. A
//     dictionary failure degrades the result instead of failing it.
//  4. Assembly of the result record.
func (s *Service) Translate(ctx context.Context, rawText string) (*domain.TranslationResult, error) {
	norm, err := s.Normalize(rawText)
	if err != nil {
		return nil, err
	}

	analysis, err := s.model.Analyze(ctx, norm.IAST)
	if err != nil {
		return nil, err
	}

	words, warnings := s.enrichWords(ctx, analysis.Words)

	result := &domain.TranslationResult{
		OriginalText:            splitLines(rawText),
		IASTText:                splitLines(norm.IAST),
		Words:                   words,
		AlternativeTranslations: analysis.AlternativeTranslations,
	}
	// Warnings is present only when degradation occurred: empty means absent.
	if len(warnings) > 0 {
		result.Warnings = warnings
	}

	s.log.InfoContext(ctx, "passage translated",
		slog.String("script", string(norm.OriginalScript)),
		slog.Int("words", len(result.Words)),
		slog.Bool("degraded", result.Degraded()),
	)

	return result, nil
}

// splitLines splits text on line breaks and discards lines that are empty
// after trimming. Single-line input still yields a one-element slice.
func splitLines(text string) []string {
	parts := strings.Split(text, "\n")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if line := strings.TrimSpace(p); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
