//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/svadhyaya/padaccheda-backend/internal/adapter/provider/cologne"
	"github.com/svadhyaya/padaccheda-backend/internal/config"
	"github.com/svadhyaya/padaccheda-backend/internal/provider"
	"github.com/svadhyaya/padaccheda-backend/internal/service/translation"
	"github.com/svadhyaya/padaccheda-backend/internal/translit"
	"github.com/svadhyaya/padaccheda-backend/internal/transport/middleware"
	"github.com/svadhyaya/padaccheda-backend/internal/transport/rest"
)

// testServer bundles the running HTTP server with the stubs behind it.
type testServer struct {
	URL    string
	Client *http.Client

	// Model is the stub semantic analyzer; tests swap its fn to shape
	// responses or inject failures.
	Model *stubModel

	// DictHandler is swapped to control the fake Cologne backend.
	DictHandler func(w http.ResponseWriter, r *http.Request)
}

type stubModel struct {
	fn func(ctx context.Context, text string) (*provider.AnalysisResult, error)
}

func (m *stubModel) Analyze(ctx context.Context, text string) (*provider.AnalysisResult, error) {
	return m.fn(ctx, text)
}

// setupTestServer wires the full transport stack (middleware chain, REST
// handlers, translation service, Cologne client) against a fake dictionary
// backend and a stub model.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		Model: &stubModel{fn: func(_ context.Context, _ string) (*provider.AnalysisResult, error) {
			return &provider.AnalysisResult{}, nil
		}},
		DictHandler: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
	}

	dictBackend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.DictHandler(w, r)
	}))
	t.Cleanup(dictBackend.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dict := cologne.New(dictBackend.URL, 5*time.Second, cologne.BreakerSettings{
		MaxFailures: 3,
		OpenTimeout: time.Minute,
	}, logger)

	svc := translation.NewService(logger, translit.ToIAST, ts.Model, dict)

	translateHandler := rest.NewTranslateHandler(svc, logger)
	healthHandler := rest.NewHealthHandler(dict, "e2e")

	mux := http.NewServeMux()
	mux.HandleFunc("/api/translate", translateHandler.Translate)
	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/live", healthHandler.Live)
	mux.HandleFunc("/ready", healthHandler.Ready)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{AllowedOrigins: "*"}),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	ts.URL = srv.URL
	ts.Client = srv.Client()
	return ts
}

// postTranslate sends a translate request and decodes the response body
// into out (a pointer). Returns the HTTP response for status assertions.
func postTranslate(t *testing.T, ts *testServer, text string, out any) *http.Response {
	t.Helper()

	body, err := json.Marshal(map[string]string{"text": text})
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+"/api/translate", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// serveDefinitions makes the fake dictionary backend answer every lookup
// with the given definitions.
func serveDefinitions(ts *testServer, defs []map[string]string) {
	ts.DictHandler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(defs)
	}
}
