package app

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/promptgrade/promptgrade/internal/optimizer"
)

type validateReq struct {
	Prompt string   `json:"prompt"`
	Rules  []string `json:"rules"`
	Model  string   `json:"model"`
}

type analyzeReq struct {
	Prompt string `json:"prompt"`
}

type suggestReq struct {
	Prompt    string `json:"prompt"`
	FocusArea string `json:"focus_area"`
}

func validateTool() mcp.Tool {
	return mcp.NewTool("validate_prompt",
		mcp.WithDescription("Analyze and optimize prompts using advanced prompt engineering techniques. Automatically applies expert-level optimizations."),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("The prompt to analyze and optimize"),
		),
		mcp.WithArray("rules",
			mcp.Description("Specific rules to apply: expert_system, chain_of_thought, few_shot, role_play, structured_output, model_optimize, enhance_clarity, add_testing, auto_optimize"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("model",
			mcp.Description("Target AI model for optimization (gpt-4, claude, gemini, etc.)"),
			mcp.DefaultString("general"),
		),
	)
}

func analyzeTool() mcp.Tool {
	return mcp.NewTool("analyze_prompt_quality",
		mcp.WithDescription("Analyze prompt structure and quality without modification. Provides detailed insights and recommendations."),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("The prompt to analyze"),
		),
	)
}

func suggestTool() mcp.Tool {
	return mcp.NewTool("get_optimization_suggestions",
		mcp.WithDescription("Get specific optimization suggestions for a prompt based on analysis."),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("The prompt to get suggestions for"),
		),
		mcp.WithString("focus_area",
			mcp.Description("Specific area to focus on: clarity, structure, examples, reasoning, expertise"),
			mcp.Enum(optimizer.FocusAll, optimizer.FocusClarity, optimizer.FocusStructure,
				optimizer.FocusExamples, optimizer.FocusReasoning, optimizer.FocusExpertise),
			mcp.DefaultString(optimizer.FocusAll),
		),
	)
}

// checkPrompt enforces the shared prompt contract: present, non-blank, and
// under the configured length cap that bounds heuristic cost.
func (a *App) checkPrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return errEmptyPrompt()
	}
	if len(prompt) > a.config.MaxPromptLen {
		return errPromptTooLong(len(prompt), a.config.MaxPromptLen)
	}
	return nil
}

func (a *App) validatePrompt(_ context.Context, args map[string]any) *ToolResponse {
	req, err := readArgs[validateReq](args)

	if err != nil {
		return &ToolResponse{Error: errMalformedArguments(err)}
	}

	if err = a.checkPrompt(req.Prompt); err != nil {
		return &ToolResponse{Error: err}
	}

	rules := req.Rules
	if rules == nil {
		// Absent means auto-optimize; an explicit empty list means
		// "apply nothing" and flows through unchanged.
		rules = []string{optimizer.RuleAutoOptimize}
	}

	model := req.Model
	if model == "" {
		model = "general"
	}

	optimization, err := a.engine.Optimize(req.Prompt, rules, model)

	if err != nil {
		var unknown optimizer.UnknownRuleError
		if errors.As(err, &unknown) {
			return &ToolResponse{Error: errUnknownRule(unknown.Name)}
		}
		return &ToolResponse{Error: err}
	}

	optimization.Id = uuid.New().String()

	return &ToolResponse{Text: renderOptimization(optimization)}
}

func (a *App) analyzePromptQuality(_ context.Context, args map[string]any) *ToolResponse {
	req, err := readArgs[analyzeReq](args)

	if err != nil {
		return &ToolResponse{Error: errMalformedArguments(err)}
	}

	if err = a.checkPrompt(req.Prompt); err != nil {
		return &ToolResponse{Error: err}
	}

	report := a.engine.Analyze(req.Prompt)

	return &ToolResponse{Text: renderQualityReport(report)}
}

func (a *App) getOptimizationSuggestions(_ context.Context, args map[string]any) *ToolResponse {
	req, err := readArgs[suggestReq](args)

	if err != nil {
		return &ToolResponse{Error: errMalformedArguments(err)}
	}

	if err = a.checkPrompt(req.Prompt); err != nil {
		return &ToolResponse{Error: err}
	}

	suggestions, err := a.engine.Suggest(req.Prompt, req.FocusArea)

	if err != nil {
		var unknown optimizer.UnknownFocusError
		if errors.As(err, &unknown) {
			return &ToolResponse{Error: errUnknownFocusArea(unknown.Value)}
		}
		return &ToolResponse{Error: err}
	}

	return &ToolResponse{Text: renderSuggestions(req.FocusArea, suggestions)}
}
