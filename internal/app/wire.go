package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/svadhyaya/padaccheda-backend/internal/adapter/provider/claude"
	"github.com/svadhyaya/padaccheda-backend/internal/adapter/provider/cologne"
	"github.com/svadhyaya/padaccheda-backend/internal/adapter/provider/openai"
	"github.com/svadhyaya/padaccheda-backend/internal/config"
	"github.com/svadhyaya/padaccheda-backend/internal/provider"
	"github.com/svadhyaya/padaccheda-backend/internal/service/translation"
	"github.com/svadhyaya/padaccheda-backend/internal/translit"
)

// BuildTranslator wires the translation service from configuration: the
// configured model backend, the Cologne dictionary client, and the
// Devanagari transliterator. The returned cologne.Provider is also exposed
// separately so the health endpoint can report its breaker state.
func BuildTranslator(cfg *config.Config, logger *slog.Logger) (*translation.Service, *cologne.Provider, error) {
	template, err := loadPromptTemplate(cfg.Model.PromptPath)
	if err != nil {
		return nil, nil, err
	}

	model, err := buildModel(cfg.Model, template, logger)
	if err != nil {
		return nil, nil, err
	}

	dict := cologne.New(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout, cologne.BreakerSettings{
		MaxFailures: cfg.Dictionary.BreakerMaxFailures,
		OpenTimeout: cfg.Dictionary.BreakerOpenTimeout,
	}, logger)

	svc := translation.NewService(logger, translit.ToIAST, model, dict)
	return svc, dict, nil
}

type analyzer interface {
	Analyze(ctx context.Context, text string) (*provider.AnalysisResult, error)
}

func buildModel(cfg config.ModelConfig, template string, logger *slog.Logger) (analyzer, error) {
	var model analyzer
	switch cfg.Provider {
	case "claude":
		model = claude.New(cfg.APIKey, cfg.ModelName(), int64(cfg.MaxTokens), template, logger)
	case "openai":
		model = openai.New(cfg.APIKey, cfg.ModelName(), cfg.MaxTokens, template, logger)
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.Provider)
	}
	return &timeoutAnalyzer{inner: model, timeout: cfg.Timeout}, nil
}

// timeoutAnalyzer bounds every model call with the configured timeout,
// independent of the HTTP server's deadlines.
type timeoutAnalyzer struct {
	inner   analyzer
	timeout time.Duration
}

func (a *timeoutAnalyzer) Analyze(ctx context.Context, text string) (*provider.AnalysisResult, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	return a.inner.Analyze(ctx, text)
}

// loadPromptTemplate reads a custom analysis prompt from disk. An empty
// path selects the built-in template.
func loadPromptTemplate(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompt template: %w", err)
	}
	return string(data), nil
}
