package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	_ "go.uber.org/automaxprocs"

	"github.com/promptgrade/promptgrade/internal/app"
	"github.com/promptgrade/promptgrade/internal/optimizer"
)

func config() app.Config {
	maxPromptLen := 20000
	if v := os.Getenv("PROMPTGRADE_MAX_PROMPT_LEN"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			slog.Error(fmt.Sprintf("invalid PROMPTGRADE_MAX_PROMPT_LEN %q, using default", v))
		} else {
			maxPromptLen = parsed
		}
	}

	callsPerSecond := 50.0
	if v := os.Getenv("PROMPTGRADE_RATE"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 {
			slog.Error(fmt.Sprintf("invalid PROMPTGRADE_RATE %q, using default", v))
		} else {
			callsPerSecond = parsed
		}
	}

	return app.Config{MaxPromptLen: maxPromptLen, CallsPerSecond: callsPerSecond}
}

func main() {
	// stdout carries the protocol; all logging goes to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	engine := optimizer.New(optimizer.NewCatalog())
	a := app.New(engine, config())

	if err := a.Start(); err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		os.Exit(1)
	}
}
