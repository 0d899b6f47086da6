// Package provider holds the shared result types exchanged with external
// collaborators and the parser that validates semantic-analysis output.
package provider

import "github.com/svadhyaya/padaccheda-backend/internal/domain"

// AnalysisResult is the structured result from a model provider: the
// word-by-word decomposition of a passage plus optional whole-sentence
// alternative translations.
type AnalysisResult struct {
	Words                   []domain.WordEntry
	AlternativeTranslations []string
}
