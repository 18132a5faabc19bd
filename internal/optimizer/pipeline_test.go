package optimizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptgrade/promptgrade/internal/domain"
)

func TestResolveCanonicalOrder(t *testing.T) {
	cat := NewCatalog()
	c := Classify("Fix this code", "")

	// Caller order is scrambled; the pipeline order must not be.
	kinds, err := cat.Resolve([]string{"structured_output", "chain_of_thought", "role_play"}, c)

	require.NoError(t, err)
	assert.Equal(t, []RuleKind{RuleRolePlay, RuleChainOfThought, RuleStructuredOutput}, kinds)
}

func TestResolveDeduplicates(t *testing.T) {
	cat := NewCatalog()
	c := Classify("Fix this code", "")

	kinds, err := cat.Resolve([]string{"few_shot", "few_shot", "few_shot"}, c)

	require.NoError(t, err)
	assert.Equal(t, []RuleKind{RuleFewShot}, kinds)
}

func TestResolveRejectsUnknownRule(t *testing.T) {
	cat := NewCatalog()
	c := Classify("Fix this code", "")

	_, err := cat.Resolve([]string{"expert_system", "not_a_real_rule"}, c)

	require.Error(t, err)
	var unknown UnknownRuleError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "not_a_real_rule", unknown.Name)
}

func TestDefaultsNonEmptyForEveryDomain(t *testing.T) {
	cat := NewCatalog()

	for _, d := range []string{
		domain.DomainTechnical,
		domain.DomainCreative,
		domain.DomainAnalytical,
		domain.DomainGeneral,
	} {
		c := domain.Classification{Domains: []string{d}}
		assert.NotEmpty(t, cat.Defaults(c), "domain %s", d)
	}
}

func TestApplyEmptyRuleListIsIdentity(t *testing.T) {
	text := "Explain the borrow checker"
	c := Classify(text, "")

	optimized, applied := Apply(text, nil, c, "general")

	assert.Equal(t, text, optimized)
	assert.Empty(t, applied)
}

func TestOptimizeExplicitEmptyRuleList(t *testing.T) {
	engine := New(NewCatalog())

	o, err := engine.Optimize("Explain the borrow checker", []string{}, "general")

	require.NoError(t, err)
	assert.Equal(t, o.OriginalPrompt, o.OptimizedPrompt)
	assert.Empty(t, o.Applied)
}

func TestOptimizeAppliedLogOnePerRuleInCanonicalOrder(t *testing.T) {
	engine := New(NewCatalog())

	o, err := engine.Optimize(
		"Summarize this quarter",
		[]string{"add_testing", "expert_system", "structured_output", "expert_system"},
		"general",
	)

	require.NoError(t, err)
	require.Len(t, o.Applied, 3)
	assert.Equal(t, "expert_system", o.Applied[0].Rule)
	assert.Equal(t, "add_testing", o.Applied[1].Rule)
	assert.Equal(t, "structured_output", o.Applied[2].Rule)
}

func TestOptimizeAutoOnTechnicalPrompt(t *testing.T) {
	engine := New(NewCatalog())

	o, err := engine.Optimize("How do I write code?", []string{RuleAutoOptimize}, "gpt-4")

	require.NoError(t, err)
	assert.True(t, o.Classification.HasDomain(domain.DomainTechnical))
	assert.True(t, o.Classification.IsVague)

	assert.Contains(t, o.OptimizedPrompt, "world-class software engineering expert")
	assert.Contains(t, o.OptimizedPrompt, clarityInstruction)
	assert.Contains(t, o.OptimizedPrompt, "step-by-step")

	assert.GreaterOrEqual(t, o.OptimizationScore, o.ClarityScore)
}

func TestOptimizeIdempotentUnderReapplication(t *testing.T) {
	engine := New(NewCatalog())
	rules := []string{RuleAutoOptimize}

	first, err := engine.Optimize("How do I write code?", rules, "gpt-4")
	require.NoError(t, err)

	second, err := engine.Optimize(first.OptimizedPrompt, rules, "gpt-4")
	require.NoError(t, err)

	// No fragment may appear twice, and every rule that fired the first
	// time must report a no-change application the second time.
	for _, fragment := range []string{
		expertFraming[domain.DomainTechnical],
		fewShotHeader,
		chainOfThoughtInstruction,
		clarityInstruction,
	} {
		assert.Equal(t, 1, strings.Count(second.OptimizedPrompt, fragment))
	}

	firstRules := map[string]bool{}
	for _, r := range first.Applied {
		firstRules[r.Rule] = true
	}
	for _, r := range second.Applied {
		if firstRules[r.Rule] {
			assert.Contains(t, r.Effect, "no change", "rule %s", r.Rule)
		}
	}
}

func TestOptimizeIdempotentWithExplicitRules(t *testing.T) {
	engine := New(NewCatalog())
	rules := []string{"expert_system", "chain_of_thought", "structured_output"}

	first, err := engine.Optimize("Debug this recursive function", rules, "claude")
	require.NoError(t, err)

	second, err := engine.Optimize(first.OptimizedPrompt, rules, "claude")
	require.NoError(t, err)

	assert.Equal(t, first.OptimizedPrompt, second.OptimizedPrompt)
	for _, r := range second.Applied {
		assert.Contains(t, r.Effect, "no change", "rule %s", r.Rule)
	}
}

func TestNoOpRulesAreLoggedNotSkipped(t *testing.T) {
	engine := New(NewCatalog())

	// model_optimize without a model hint and enhance_clarity on a
	// specific prompt both log a no-change application.
	o, err := engine.Optimize(
		"Generate a migration checklist that must cover schema changes, data backfill, rollback steps, and verification for our billing database",
		[]string{"model_optimize", "enhance_clarity"},
		"general",
	)

	require.NoError(t, err)
	require.Len(t, o.Applied, 2)
	assert.Equal(t, o.OriginalPrompt, o.OptimizedPrompt)
	for _, r := range o.Applied {
		assert.Contains(t, r.Effect, "no change")
	}
}

func TestModelOptimizeFamilies(t *testing.T) {
	tests := []struct {
		model    string
		fragment string
	}{
		{"gpt-4", "optimized for GPT models"},
		{"claude", "optimized for Claude"},
		{"gemini-pro", "optimized for Gemini"},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			engine := New(NewCatalog())

			o, err := engine.Optimize("Explain this trade-off in depth please today", []string{"model_optimize"}, tt.model)

			require.NoError(t, err)
			assert.Contains(t, o.OptimizedPrompt, tt.fragment)
		})
	}
}

func TestRolePlayGeneralPromptIsNoOp(t *testing.T) {
	engine := New(NewCatalog())

	o, err := engine.Optimize("Tell me something interesting about lighthouses", []string{"role_play"}, "general")

	require.NoError(t, err)
	require.Len(t, o.Applied, 1)
	assert.Contains(t, o.Applied[0].Effect, "no change")
	assert.Equal(t, o.OriginalPrompt, o.OptimizedPrompt)
}

func TestFewShotPicksDomainExamples(t *testing.T) {
	engine := New(NewCatalog())

	o, err := engine.Optimize("Refactor this code for readability", []string{"few_shot"}, "general")

	require.NoError(t, err)
	assert.Contains(t, o.OptimizedPrompt, "binary search")

	o, err = engine.Optimize("Draft a short story opening", []string{"few_shot"}, "general")

	require.NoError(t, err)
	assert.Contains(t, o.OptimizedPrompt, "product description")

	o, err = engine.Optimize("Tell me about lighthouses", []string{"few_shot"}, "general")

	require.NoError(t, err)
	assert.True(t, strings.Contains(o.OptimizedPrompt, fewShotGenericInstruction))
}
