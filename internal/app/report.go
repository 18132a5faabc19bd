package app

import (
	"fmt"
	"strings"

	"github.com/promptgrade/promptgrade/internal/domain"
	"github.com/promptgrade/promptgrade/internal/optimizer"
)

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func renderOptimization(o domain.Optimization) string {
	var b strings.Builder

	b.WriteString("# Prompt Optimization Results\n\n")

	b.WriteString("## Original Prompt\n```\n")
	b.WriteString(o.OriginalPrompt)
	b.WriteString("\n```\n\n")

	b.WriteString("## Optimized Prompt\n```\n")
	b.WriteString(o.OptimizedPrompt)
	b.WriteString("\n```\n\n")

	b.WriteString("## Analysis Summary\n")
	fmt.Fprintf(&b, "- **Length**: %d characters (%d words)\n", o.Classification.Length, o.Classification.WordCount)
	fmt.Fprintf(&b, "- **Domains**: %s\n", strings.Join(o.Classification.Domains, ", "))
	fmt.Fprintf(&b, "- **Clarity Score (before)**: %.2f/1.0\n", o.ClarityScore)
	fmt.Fprintf(&b, "- **Optimization Score (after)**: %.2f/1.0\n", o.OptimizationScore)
	fmt.Fprintf(&b, "- **Has Clear Task**: %s\n", yesNo(o.Classification.HasClearTask))
	fmt.Fprintf(&b, "- **Has Examples**: %s\n", yesNo(o.Classification.HasExamples))
	fmt.Fprintf(&b, "- **Has Constraints**: %s\n\n", yesNo(o.Classification.HasConstraints))

	b.WriteString("## Applied Optimizations\n")
	if len(o.Applied) == 0 {
		b.WriteString("- none applied\n")
	}
	for _, r := range o.Applied {
		fmt.Fprintf(&b, "- **%s**: %s\n", r.Rule, r.Effect)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Target Model\nOptimized for: %s\n\n", o.TargetModel)
	b.WriteString("---\n*Use the optimized prompt above for best results with your target AI model.*\n")

	return b.String()
}

func renderQualityReport(r domain.QualityReport) string {
	var b strings.Builder
	c := r.Classification

	b.WriteString("# Prompt Quality Analysis\n\n")

	b.WriteString("## Structure Metrics\n")
	fmt.Fprintf(&b, "- **Length**: %d characters\n", c.Length)
	fmt.Fprintf(&b, "- **Word Count**: %d words\n", c.WordCount)
	fmt.Fprintf(&b, "- **Question Count**: %d\n", c.QuestionCount)
	fmt.Fprintf(&b, "- **Clarity Score**: %.2f/1.0\n\n", r.ClarityScore)

	b.WriteString("## Quality Indicators\n")
	fmt.Fprintf(&b, "- **Domains**: %s\n", strings.Join(c.Domains, ", "))
	fmt.Fprintf(&b, "- **Clear Task**: %s\n", yesNo(c.HasClearTask))
	fmt.Fprintf(&b, "- **Includes Examples**: %s\n", yesNo(c.HasExamples))
	fmt.Fprintf(&b, "- **Has Constraints**: %s\n", yesNo(c.HasConstraints))
	fmt.Fprintf(&b, "- **Requests Reasoning**: %s\n", yesNo(c.RequestsReasoning))
	fmt.Fprintf(&b, "- **Short**: %s\n", yesNo(c.IsShort))
	fmt.Fprintf(&b, "- **Vague**: %s\n\n", yesNo(c.IsVague))

	b.WriteString("## Detected Weaknesses\n")
	if len(r.Weaknesses) == 0 {
		b.WriteString("- none detected\n")
	}
	for _, w := range r.Weaknesses {
		fmt.Fprintf(&b, "- %s\n", w)
	}
	b.WriteString("\n")

	b.WriteString("## Overall Assessment\n")
	switch {
	case r.ClarityScore > 0.8:
		b.WriteString("Excellent\n")
	case r.ClarityScore > 0.6:
		b.WriteString("Good\n")
	default:
		b.WriteString("Needs Improvement\n")
	}

	b.WriteString("\n---\n*Use the validate_prompt tool to automatically optimize this prompt.*\n")

	return b.String()
}

func renderSuggestions(focusArea string, suggestions []domain.Suggestion) string {
	if focusArea == "" {
		focusArea = optimizer.FocusAll
	}

	var b strings.Builder

	b.WriteString("# Optimization Suggestions\n\n")
	fmt.Fprintf(&b, "## Focus Area: %s\n\n", focusArea)

	b.WriteString("## Recommendations\n")
	if len(suggestions) == 0 {
		b.WriteString("- none for this focus area\n")
	}
	for i, s := range suggestions {
		fmt.Fprintf(&b, "%d. **%s**: %s\n", i+1, s.Area, s.Suggestion)
	}
	b.WriteString("\n")

	b.WriteString("## Quick Fixes\n")
	b.WriteString("- **Add constraints**: Use words like \"must\", \"should\", \"requirement\"\n")
	b.WriteString("- **Improve specificity**: Replace vague terms with concrete descriptions\n")
	b.WriteString("- **Set format**: Specify the desired output format (list, table, code, etc.)\n")
	b.WriteString("- **Define scope**: Clearly state what should and shouldn't be included\n\n")

	b.WriteString("---\n*Run validate_prompt with the auto_optimize rule for automatic improvements.*\n")

	return b.String()
}
