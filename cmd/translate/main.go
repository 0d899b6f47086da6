// Command translate runs the translation pipeline once, outside the HTTP
// server. It reads a Sanskrit passage from arguments or stdin and prints
// the word-by-word analysis as indented JSON on stdout.
//
// Usage:
//
//	translate "yogaś citta-vṛtti-nirodhaḥ"
//	echo "योगश्चित्तवृत्तिनिरोधः" | translate
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/svadhyaya/padaccheda-backend/internal/app"
	"github.com/svadhyaya/padaccheda-backend/internal/config"
)

func main() {
	timeout := flag.Duration("timeout", 3*time.Minute, "overall deadline for the run")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	text, err := readInput(flag.Args())
	if err != nil {
		logger.Error("read input", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if text == "" {
		logger.Error("no input: pass a passage as an argument or on stdin")
		os.Exit(1)
	}

	svc, _, err := app.BuildTranslator(cfg, logger)
	if err != nil {
		logger.Error("build translator", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := svc.Translate(ctx, text)
	if err != nil {
		logger.Error("translate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		logger.Error("encode result", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(strings.Join(args, " ")), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
