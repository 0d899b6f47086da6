//go:build e2e

package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svadhyaya/padaccheda-backend/internal/domain"
	"github.com/svadhyaya/padaccheda-backend/internal/provider"
	"github.com/svadhyaya/padaccheda-backend/internal/transport/rest"
)

// TestE2E_Translate_DevanagariHappyPath covers the full pipeline over HTTP:
// Devanagari input, transliteration, model analysis, dictionary enrichment.
func TestE2E_Translate_DevanagariHappyPath(t *testing.T) {
	ts := setupTestServer(t)

	var receivedText string
	ts.Model.fn = func(_ context.Context, text string) (*provider.AnalysisResult, error) {
		receivedText = text
		return &provider.AnalysisResult{
			Words: []domain.WordEntry{
				{Word: "yogaḥ", GrammaticalForm: "nominative singular", Meanings: []string{"yoga", "union"}},
				{Word: "cittavṛttinirodhaḥ", GrammaticalForm: "nominative singular compound", Meanings: []string{"cessation of mental fluctuations"}},
			},
		}, nil
	}
	serveDefinitions(ts, []map[string]string{
		{"dictionary": "MW", "definition": "the act of yoking"},
	})

	var result domain.TranslationResult
	resp := postTranslate(t, ts, "योगश्चित्तवृत्तिनिरोधः", &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "yogaścittavṛttinirodhaḥ", receivedText,
		"model must receive the transliterated passage")

	assert.Equal(t, []string{"योगश्चित्तवृत्तिनिरोधः"}, result.OriginalText)
	assert.Equal(t, []string{"yogaścittavṛttinirodhaḥ"}, result.IASTText)

	require.Len(t, result.Words, 2)
	for _, w := range result.Words {
		require.Len(t, w.DictionaryDefinitions, 1)
		assert.Equal(t, "MW", w.DictionaryDefinitions[0].Source)
	}
	assert.Empty(t, result.Warnings)
}

// TestE2E_Translate_DictionaryOutageDegrades verifies the partial-failure
// contract end to end: a failing dictionary backend yields HTTP 200 with
// undecorated words and a single warning.
func TestE2E_Translate_DictionaryOutageDegrades(t *testing.T) {
	ts := setupTestServer(t)

	ts.Model.fn = func(_ context.Context, _ string) (*provider.AnalysisResult, error) {
		return &provider.AnalysisResult{
			Words: []domain.WordEntry{
				{Word: "agniḥ", GrammaticalForm: "nominative singular", Meanings: []string{"fire"}},
			},
		}, nil
	}
	ts.DictHandler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}

	var result domain.TranslationResult
	resp := postTranslate(t, ts, "agniḥ", &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, result.Words, 1)
	assert.Nil(t, result.Words[0].DictionaryDefinitions)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "dictionary")
	assert.Contains(t, result.Warnings[0], "analysis-only")
}

// TestE2E_Translate_ModelFailureIs502 verifies that a model outage fails the
// whole request.
func TestE2E_Translate_ModelFailureIs502(t *testing.T) {
	ts := setupTestServer(t)

	ts.Model.fn = func(_ context.Context, _ string) (*provider.AnalysisResult, error) {
		return nil, fmt.Errorf("%w: api timeout", domain.ErrModelService)
	}

	var body rest.ErrorResponse
	resp := postTranslate(t, ts, "agniḥ", &body)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "MODEL_UNAVAILABLE", body.Code)
}

// TestE2E_Translate_MixedScriptRejected verifies input validation over HTTP.
func TestE2E_Translate_MixedScriptRejected(t *testing.T) {
	ts := setupTestServer(t)

	ts.Model.fn = func(_ context.Context, _ string) (*provider.AnalysisResult, error) {
		t.Error("model must not be called for mixed-script input")
		return nil, nil
	}

	var body rest.ErrorResponse
	resp := postTranslate(t, ts, "योग yoga", &body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Error, "mixed-script")
}

// TestE2E_Health_ReportsOpenBreaker drives the dictionary breaker open via
// repeated failing lookups and checks that /health reflects it.
func TestE2E_Health_ReportsOpenBreaker(t *testing.T) {
	ts := setupTestServer(t)

	ts.Model.fn = func(_ context.Context, _ string) (*provider.AnalysisResult, error) {
		return &provider.AnalysisResult{
			Words: []domain.WordEntry{
				{Word: "agniḥ", GrammaticalForm: "nominative singular", Meanings: []string{"fire"}},
				{Word: "somaḥ", GrammaticalForm: "nominative singular", Meanings: []string{"soma"}},
			},
		}, nil
	}
	ts.DictHandler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}

	// Each request registers one failed batch; the breaker opens at three
	// consecutive failures.
	for i := 0; i < 3; i++ {
		resp := postTranslate(t, ts, "agniḥ somaḥ", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := ts.Client.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health struct {
		Status     string `json:"status"`
		Components map[string]struct {
			Status string `json:"status"`
		} `json:"components"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "degraded", health.Status)
	assert.Equal(t, "degraded", health.Components["dictionary"].Status)
}
