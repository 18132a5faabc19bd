package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolResponse is what a tool controller returns: either a textual payload
// or an error. Argument errors become tool-level errors on the wire; the
// transport itself never faults for them.
type ToolResponse struct {
	Error error
	Text  string
}

// ToolController handles one decoded tool call.
type ToolController func(ctx context.Context, args map[string]any) *ToolResponse

// handler wraps a ToolController into the MCP handler signature: it waits
// on the shared limiter, tags the call with a run id, invokes the
// controller, logs the outcome, and converts the response for the wire.
func (a *App) handler(name string, c ToolController) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := a.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		runId := uuid.New().String()
		resp := c(ctx, req.GetArguments())

		if resp.Error != nil {
			slog.Error(fmt.Sprintf("Error occured: %s", resp.Error.Error()), "tool", name, "run_id", runId)

			var argErr argError
			if errors.As(resp.Error, &argErr) {
				return mcp.NewToolResultError(argErr.Error()), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("internal error: %s", resp.Error.Error())), nil
		}

		slog.Info("handled tool call", "tool", name, "run_id", runId)
		return mcp.NewToolResultText(resp.Text), nil
	}
}
