package translation

import (
	"context"
	"log/slog"

	"github.com/svadhyaya/padaccheda-backend/internal/domain"
)

// dictionaryDegradedWarning is the fixed message recorded when the lexical
// collaborator is unavailable and the result carries semantic analysis only.
const dictionaryDegradedWarning = "dictionary service unavailable: lexical definitions omitted, operating in analysis-only (LLM-only) mode"

// enrichWords attaches dictionary definitions to every entry, or to none.
//
// The lookup keys are the surface forms the model produced, duplicates and
// order preserved — the dictionary must see the model's word and compound
// boundary decisions, not the raw passage. On success every entry gets its
// definition list (empty when the word is unknown) and no warning is
// recorded. On any dictionary failure no partial merge happens: the entries
// are returned untouched with a single-element warning list.
func (s *Service) enrichWords(ctx context.Context, words []domain.WordEntry) ([]domain.WordEntry, []string) {
	keys := make([]string, len(words))
	for i, w := range words {
		keys[i] = w.Word
	}

	defsByWord, err := s.dict.LookupMany(ctx, keys)
	if err != nil {
		s.log.WarnContext(ctx, "dictionary lookup failed, degrading to analysis-only mode",
			slog.Int("words", len(keys)),
			slog.String("error", err.Error()),
		)
		return words, []string{dictionaryDegradedWarning}
	}

	enriched := make([]domain.WordEntry, len(words))
	for i, w := range words {
		defs, ok := defsByWord[w.Word]
		if !ok {
			defs = []domain.DictionaryDefinition{}
		}
		w.DictionaryDefinitions = defs
		enriched[i] = w
	}
	return enriched, nil
}
