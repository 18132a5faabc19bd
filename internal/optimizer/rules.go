package optimizer

import (
	"fmt"
	"strings"

	"github.com/promptgrade/promptgrade/internal/domain"
)

// Rule fragments. Each fragment has a stable marker line so re-applying a
// rule to an already-optimized prompt detects the prior insertion and
// reports "no change" instead of duplicating text.

var expertFraming = map[string]string{
	domain.DomainTechnical:  "You are a world-class software engineering expert with deep knowledge of systems design, debugging, and engineering best practices.",
	domain.DomainCreative:   "You are a world-class writing expert with deep knowledge of narrative craft, tone, and audience engagement.",
	domain.DomainAnalytical: "You are a world-class data analysis expert with deep knowledge of research methodology and statistical reasoning.",
	domain.DomainGeneral:    "You are a world-class expert assistant with broad knowledge across technical, creative, and analytical domains.",
}

var expertRoles = map[string]string{
	domain.DomainTechnical:  "a senior software engineer with 10+ years of experience in multiple programming languages and best practices",
	domain.DomainCreative:   "an expert copywriter and content strategist with a deep understanding of persuasive writing",
	domain.DomainAnalytical: "a data analyst and research expert skilled in systematic analysis and insight generation",
}

const chainOfThoughtInstruction = `Think through this step-by-step:
1. First, analyze the core challenge or opportunity
2. Consider which methods apply and why
3. Structure your response with clear reasoning
4. Provide concrete, testable examples
5. Explain the rationale behind your approach`

const fewShotHeader = "Here are some examples of excellent responses:"

const fewShotCodeExamples = fewShotHeader + `

Example 1:
Q: "How do I implement a binary search?"
A: "Here's a clean implementation with explanation..."

Example 2:
Q: "Optimize this SQL query"
A: "I'll analyze your query and provide 3 specific optimizations..."`

const fewShotWritingExamples = fewShotHeader + `

Example 1:
Q: "Write a product description"
A: "I'll create a compelling description focusing on benefits, features, and emotional appeal..."

Example 2:
Q: "Improve this email"
A: "Here's the enhanced version with better structure and persuasive language..."`

const fewShotGenericInstruction = "Include two or three relevant illustrative examples in your response."

const clarityInstruction = "IMPORTANT: Be specific, actionable, and include concrete examples. Avoid vague language and provide step-by-step guidance where applicable."

const testingGuidance = `Testing Recommendations:
- A/B test different prompt variations
- Measure response quality against specific success metrics
- Validate across multiple model runs for consistency
- Document what works best for similar use cases`

const structureTemplate = `Structure your response as follows:

## Quick Assessment
Identify the core challenge or opportunity in 1-2 sentences

## Recommendation
Explain which approaches apply and why

## Worked Example
Provide a concrete, usable result

## Rationale
Explain the reasoning behind your approach`

// Ordered so a hint matching several families resolves deterministically.
var modelNotes = []struct {
	family string
	note   string
}{
	{"gpt", "Note: This prompt is optimized for GPT models. Favor concise phrasing, structured formatting, and clear role definitions for best results."},
	{"claude", "Note: This prompt is optimized for Claude. Leverage its strength in detailed analysis and nuanced, in-depth reasoning."},
	{"gemini", "Note: This prompt is optimized for Gemini. Take advantage of its multimodal capabilities and factual accuracy."},
}

const (
	effectNoChangePresent = "no change (already present)"
)

// applyRule performs one rewrite. It returns the transformed text and a
// human-readable description of the effect; a rule with no observable
// effect returns the text unchanged and a "no change" description, so
// callers can tell a no-op application from a skipped rule.
func applyRule(k RuleKind, text string, c domain.Classification, targetModel string) (string, string) {
	switch k {
	case RuleRolePlay:
		return applyRolePlay(text, c)
	case RuleExpertSystem:
		return applyExpertSystem(text, c)
	case RuleFewShot:
		return applyFewShot(text, c)
	case RuleChainOfThought:
		return applyChainOfThought(text)
	case RuleEnhanceClarity:
		return applyEnhanceClarity(text, c)
	case RuleAddTesting:
		return applyAddTesting(text)
	case RuleModelOptimize:
		return applyModelOptimize(text, targetModel)
	case RuleStructuredOutput:
		return applyStructuredOutput(text)
	default:
		// Unreachable: Resolve only yields catalog kinds.
		return text, effectNoChangePresent
	}
}

func applyRolePlay(text string, c domain.Classification) (string, string) {
	role, ok := expertRoles[dominantDomain(c)]
	if !ok {
		return text, "no change (no matching persona for a general prompt)"
	}
	if strings.Contains(text, role) {
		return text, effectNoChangePresent
	}
	return fmt.Sprintf("You are %s.\n\n%s", role, text),
		fmt.Sprintf("prepended %s persona assignment", dominantDomain(c))
}

func applyExpertSystem(text string, c domain.Classification) (string, string) {
	framing := expertFraming[dominantDomain(c)]
	if strings.Contains(text, framing) {
		return text, effectNoChangePresent
	}
	return framing + "\n\n" + text,
		fmt.Sprintf("prepended expert identity framing (%s)", dominantDomain(c))
}

func applyFewShot(text string, c domain.Classification) (string, string) {
	if strings.Contains(text, fewShotHeader) || strings.Contains(text, fewShotGenericInstruction) {
		return text, effectNoChangePresent
	}
	switch {
	case c.HasDomain(domain.DomainTechnical):
		return text + "\n\n" + fewShotCodeExamples, "appended code-focused example pairs"
	case c.HasDomain(domain.DomainCreative):
		return text + "\n\n" + fewShotWritingExamples, "appended writing-focused example pairs"
	default:
		return text + "\n\n" + fewShotGenericInstruction, "appended a request for illustrative examples"
	}
}

func applyChainOfThought(text string) (string, string) {
	if strings.Contains(text, chainOfThoughtInstruction) {
		return text, effectNoChangePresent
	}
	return text + "\n\n" + chainOfThoughtInstruction, "appended step-by-step reasoning instructions"
}

func applyEnhanceClarity(text string, c domain.Classification) (string, string) {
	if strings.Contains(text, clarityInstruction) {
		return text, effectNoChangePresent
	}
	if !c.IsVague && !c.IsShort {
		return text, "no change (prompt is already specific)"
	}
	return text + "\n\n" + clarityInstruction, "appended specificity and actionability request"
}

func applyAddTesting(text string) (string, string) {
	if strings.Contains(text, testingGuidance) {
		return text, effectNoChangePresent
	}
	return text + "\n\n" + testingGuidance, "appended A/B-testing and validation guidance"
}

func applyModelOptimize(text string, targetModel string) (string, string) {
	model := strings.ToLower(targetModel)
	if model == "" || model == "general" {
		return text, "no change (no model hint)"
	}
	for _, m := range modelNotes {
		if !strings.Contains(model, m.family) {
			continue
		}
		if strings.Contains(text, m.note) {
			return text, effectNoChangePresent
		}
		return text + "\n\n" + m.note, fmt.Sprintf("appended %s-family optimization note", m.family)
	}
	return text, fmt.Sprintf("no change (no optimization profile for %q)", targetModel)
}

func applyStructuredOutput(text string) (string, string) {
	if strings.Contains(text, structureTemplate) {
		return text, effectNoChangePresent
	}
	return text + "\n\n" + structureTemplate, "appended sectioned output formatting instructions"
}
