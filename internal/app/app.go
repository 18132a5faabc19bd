// Package app is the protocol-facing layer: it declares the three prompt
// tools with their parameter schemas, validates arguments, invokes the
// optimizer engine, and renders textual reports back over MCP stdio.
package app

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"

	"github.com/promptgrade/promptgrade/internal/optimizer"
)

const version = "1.0.0"

type Config struct {
	// MaxPromptLen caps the accepted prompt length in bytes; oversized
	// input is rejected instead of degrading the heuristics.
	MaxPromptLen int
	// CallsPerSecond smooths bursts from the host process. Calls are
	// delayed, never rejected.
	CallsPerSecond float64
}

type App struct {
	engine  *optimizer.Engine
	config  Config
	limiter *rate.Limiter
}

func New(engine *optimizer.Engine, config Config) *App {
	return &App{
		engine:  engine,
		config:  config,
		limiter: rate.NewLimiter(rate.Limit(config.CallsPerSecond), int(config.CallsPerSecond)),
	}
}

// Server builds the configured MCP server with all tools registered.
// Recovery is enabled so a panicking handler yields an error response
// instead of taking the process down.
func (a *App) Server() *server.MCPServer {
	s := server.NewMCPServer(
		"promptgrade",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.AddTool(validateTool(), a.handler("validate_prompt", a.validatePrompt))
	s.AddTool(analyzeTool(), a.handler("analyze_prompt_quality", a.analyzePromptQuality))
	s.AddTool(suggestTool(), a.handler("get_optimization_suggestions", a.getOptimizationSuggestions))

	return s
}

// Start serves MCP over stdin/stdout until the host closes the stream.
func (a *App) Start() error {
	slog.Info("promptgrade serving on stdio", "version", version)
	return server.ServeStdio(a.Server())
}
