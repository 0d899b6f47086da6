// Package cologne fetches lexical data from a Cologne Digital Sanskrit
// Lexicon (CDSL) HTTP service.
package cologne

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/svadhyaya/padaccheda-backend/internal/domain"
)

const defaultBaseURL = "https://www.sanskrit-lexicon.uni-koeln.de/api/v1/lookup"

// Provider fetches dictionary definitions for IAST headwords. All failures
// surface as dictionary service errors; callers treat them as recoverable.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	log        *slog.Logger
}

// BreakerSettings tunes the circuit breaker guarding the lexicon service.
type BreakerSettings struct {
	// MaxFailures is the consecutive-failure count that opens the breaker.
	MaxFailures uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

// New creates a Provider. An empty baseURL uses the public CDSL endpoint.
func New(baseURL string, timeout time.Duration, bs BreakerSettings, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if bs.MaxFailures == 0 {
		bs.MaxFailures = 5
	}
	if bs.OpenTimeout <= 0 {
		bs.OpenTimeout = 30 * time.Second
	}

	log := logger.With("adapter", "cologne")

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "cologne",
		Timeout: bs.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= bs.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("breaker state change",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
		log:        log,
	}
}

// BreakerState reports the circuit breaker state for health checks.
func (p *Provider) BreakerState() string {
	return p.breaker.State().String()
}

// LookupMany fetches definitions for each word in order. A word the lexicon
// does not know is simply absent from the returned map. Any transport or
// service failure rejects the whole batch: partial lexical data would be
// indistinguishable from "word not found".
func (p *Provider) LookupMany(ctx context.Context, words []string) (map[string][]domain.DictionaryDefinition, error) {
	results := make(map[string][]domain.DictionaryDefinition, len(words))
	seen := make(map[string]bool, len(words))

	for _, word := range words {
		if seen[word] {
			continue
		}
		seen[word] = true

		defs, err := p.lookupWord(ctx, word)
		if err != nil {
			p.log.ErrorContext(ctx, "cologne lookup failed",
				slog.String("word", word),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		if defs != nil {
			results[word] = defs
		}
	}

	p.log.DebugContext(ctx, "cologne batch complete",
		slog.Int("requested", len(words)),
		slog.Int("found", len(results)),
	)
	return results, nil
}

// lookupWord fetches one headword through the breaker.
// Returns nil, nil if the word is not found (HTTP 404).
func (p *Provider) lookupWord(ctx context.Context, word string) ([]domain.DictionaryDefinition, error) {
	out, err := p.breaker.Execute(func() (any, error) {
		return p.fetch(ctx, word)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: lexicon circuit open", domain.ErrDictionaryService)
		}
		return nil, err
	}
	defs, _ := out.([]domain.DictionaryDefinition)
	return defs, nil
}

func (p *Provider) fetch(ctx context.Context, word string) ([]domain.DictionaryDefinition, error) {
	reqURL := p.baseURL + "?" + url.Values{"q": {word}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", domain.ErrDictionaryService, err)
	}

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		return nil, fmt.Errorf("%w: request for %q: %v", domain.ErrDictionaryService, word, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d for %q", domain.ErrDictionaryService, resp.StatusCode, word)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrDictionaryService, err)
	}

	var entries []apiDefinition
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: decode json for %q: %v", domain.ErrDictionaryService, word, err)
	}

	defs := make([]domain.DictionaryDefinition, 0, len(entries))
	for _, e := range entries {
		if e.Definition == "" {
			continue
		}
		defs = append(defs, domain.DictionaryDefinition{
			Source:     e.Dictionary,
			Definition: e.Definition,
		})
	}
	return defs, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "cologne retry", slog.String("word", word), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return p.httpClient.Do(req)
}
