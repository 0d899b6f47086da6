package cologne

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/svadhyaya/padaccheda-backend/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProvider(baseURL string) *Provider {
	return New(baseURL, 2*time.Second, BreakerSettings{MaxFailures: 3, OpenTimeout: time.Minute}, newTestLogger())
}

func TestProvider_LookupMany_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("q") {
		case "yogaḥ":
			w.Write([]byte(`[{"dictionary": "Monier-Williams", "definition": "the act of yoking, junction, union"},
				{"dictionary": "Apte", "definition": "joining, uniting"}]`))
		case "citta":
			w.Write([]byte(`[{"dictionary": "Monier-Williams", "definition": "thinking, reflecting; the mind"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	got, err := p.LookupMany(context.Background(), []string{"yogaḥ", "citta", "nirodhaḥ"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got["yogaḥ"]) != 2 {
		t.Errorf("yogaḥ definitions = %v, want 2", got["yogaḥ"])
	}
	if got["yogaḥ"][0].Source != "Monier-Williams" {
		t.Errorf("Source = %q", got["yogaḥ"][0].Source)
	}
	if len(got["citta"]) != 1 {
		t.Errorf("citta definitions = %v, want 1", got["citta"])
	}
	if _, ok := got["nirodhaḥ"]; ok {
		t.Error("unknown word must be absent from the result map")
	}
}

func TestProvider_LookupMany_DeduplicatesRequests(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`[{"dictionary": "MW", "definition": "mind"}]`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	_, err := p.LookupMany(context.Background(), []string{"citta", "citta", "citta"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("HTTP calls = %d, want 1", n)
	}
}

func TestProvider_LookupMany_RetriesOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[{"dictionary": "MW", "definition": "union"}]`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	got, err := p.LookupMany(context.Background(), []string{"yogaḥ"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got["yogaḥ"]) != 1 {
		t.Errorf("definitions = %v", got["yogaḥ"])
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("HTTP calls = %d, want 2", n)
	}
}

func TestProvider_LookupMany_ServiceError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	_, err := p.LookupMany(context.Background(), []string{"yogaḥ"})
	if !errors.Is(err, domain.ErrDictionaryService) {
		t.Fatalf("err = %v, want ErrDictionaryService", err)
	}
}

func TestProvider_LookupMany_BadJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	_, err := p.LookupMany(context.Background(), []string{"yogaḥ"})
	if !errors.Is(err, domain.ErrDictionaryService) {
		t.Fatalf("err = %v, want ErrDictionaryService", err)
	}
}

func TestProvider_BreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := p.LookupMany(ctx, []string{"yogaḥ"}); err == nil {
			t.Fatal("expected error")
		}
	}

	if p.BreakerState() != "open" {
		t.Fatalf("breaker state = %q, want open", p.BreakerState())
	}

	before := calls.Load()
	_, err := p.LookupMany(ctx, []string{"yogaḥ"})
	if !errors.Is(err, domain.ErrDictionaryService) {
		t.Fatalf("err = %v, want ErrDictionaryService", err)
	}
	if calls.Load() != before {
		t.Error("open breaker must not reach the backend")
	}
}
