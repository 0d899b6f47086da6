// Package claude implements the model port on the Anthropic API.
package claude

import (
	"context"
	"fmt"
	"log/slog"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/svadhyaya/padaccheda-backend/internal/domain"
	"github.com/svadhyaya/padaccheda-backend/internal/provider"
)

// Provider sends passages to Claude for word-by-word semantic analysis.
type Provider struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	template  string
	log       *slog.Logger
}

// New creates a Provider. An empty promptTemplate uses the default analysis
// prompt.
func New(apiKey, model string, maxTokens int64, promptTemplate string, logger *slog.Logger) *Provider {
	return &Provider{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: maxTokens,
		template:  promptTemplate,
		log:       logger.With("adapter", "claude"),
	}
}

// Analyze requests the word-by-word breakdown of an IAST passage. Any
// failure — transport, API, or malformed output — is a model service error.
func (p *Provider) Analyze(ctx context.Context, text string) (*provider.AnalysisResult, error) {
	prompt := provider.BuildPrompt(p.template, text)

	p.log.DebugContext(ctx, "claude request", slog.String("model", p.model), slog.Int("passage_len", len(text)))

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		p.log.ErrorContext(ctx, "claude request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: claude api call: %v", domain.ErrModelService, err)
	}

	blocks := make([]string, 0, len(msg.Content))
	for _, block := range msg.Content {
		if block.Text != "" {
			blocks = append(blocks, block.Text)
		}
	}

	result, err := provider.ParseAnalysis(blocks)
	if err != nil {
		return nil, err
	}

	p.log.DebugContext(ctx, "claude response", slog.Int("words", len(result.Words)))
	return result, nil
}
