// Package openai implements the model port on the OpenAI chat API.
package openai

import (
	"context"
	"fmt"
	"log/slog"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/svadhyaya/padaccheda-backend/internal/domain"
	"github.com/svadhyaya/padaccheda-backend/internal/provider"
)

// Provider sends passages to an OpenAI chat model for word-by-word semantic
// analysis.
type Provider struct {
	client    *goopenai.Client
	model     string
	maxTokens int
	template  string
	log       *slog.Logger
}

// New creates a Provider. An empty promptTemplate uses the default analysis
// prompt.
func New(apiKey, model string, maxTokens int, promptTemplate string, logger *slog.Logger) *Provider {
	return &Provider{
		client:    goopenai.NewClient(apiKey),
		model:     model,
		maxTokens: maxTokens,
		template:  promptTemplate,
		log:       logger.With("adapter", "openai"),
	}
}

// Analyze requests the word-by-word breakdown of an IAST passage. Any
// failure — transport, API, or malformed output — is a model service error.
func (p *Provider) Analyze(ctx context.Context, text string) (*provider.AnalysisResult, error) {
	prompt := provider.BuildPrompt(p.template, text)

	p.log.DebugContext(ctx, "openai request", slog.String("model", p.model), slog.Int("passage_len", len(text)))

	resp, err := p.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: p.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   p.maxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		p.log.ErrorContext(ctx, "openai request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: openai api call: %v", domain.ErrModelService, err)
	}

	blocks := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		blocks = append(blocks, choice.Message.Content)
	}

	result, err := provider.ParseAnalysis(blocks)
	if err != nil {
		return nil, err
	}

	p.log.DebugContext(ctx, "openai response", slog.Int("words", len(result.Words)))
	return result, nil
}
