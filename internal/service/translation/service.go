// Package translation orchestrates the word-by-word analysis of a Sanskrit
// passage: script normalization, semantic analysis through the model
// collaborator, and lexical enrichment through the dictionary collaborator.
package translation

import (
	"context"
	"log/slog"

	"github.com/svadhyaya/padaccheda-backend/internal/domain"
	"github.com/svadhyaya/padaccheda-backend/internal/provider"
)

// modelProvider defines what the service needs from the semantic analysis
// collaborator. Failures are fatal and propagate to the caller.
type modelProvider interface {
	Analyze(ctx context.Context, text string) (*provider.AnalysisResult, error)
}

// dictionaryProvider defines what the service needs from the lexical
// collaborator. Failures are recoverable and degrade the result.
type dictionaryProvider interface {
	LookupMany(ctx context.Context, words []string) (map[string][]domain.DictionaryDefinition, error)
}

// ConvertFunc converts well-formed Devanagari text to IAST. It is assumed
// total and deterministic for valid input.
type ConvertFunc func(devanagari string) string

// Service implements the translation pipeline. Each call is independent and
// stateless; the service holds no mutable state across calls.
type Service struct {
	log     *slog.Logger
	convert ConvertFunc
	model   modelProvider
	dict    dictionaryProvider
}

// NewService creates a translation Service.
func NewService(logger *slog.Logger, convert ConvertFunc, model modelProvider, dict dictionaryProvider) *Service {
	return &Service{
		log:     logger.With("service", "translation"),
		convert: convert,
		model:   model,
		dict:    dict,
	}
}
