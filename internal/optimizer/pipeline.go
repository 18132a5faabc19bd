// Package optimizer is the prompt optimization engine: it classifies a
// prompt with keyword heuristics, resolves a rule selection, applies the
// selected rewrite rules in a fixed canonical order, and scores the text
// before and after. Everything here is a pure function of its inputs; the
// only process-wide state is the read-only Catalog.
package optimizer

import (
	"github.com/promptgrade/promptgrade/internal/domain"
)

type Engine struct {
	catalog *Catalog
}

func New(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Apply runs the given rules over the text in canonical order and records
// one applied-log entry per rule, including the ones that had no visible
// effect. An empty rule list returns the text unchanged with an empty log.
func Apply(text string, kinds []RuleKind, c domain.Classification, targetModel string) (string, []domain.AppliedRule) {
	applied := make([]domain.AppliedRule, 0, len(kinds))
	for _, k := range kinds {
		var effect string
		text, effect = applyRule(k, text, c, targetModel)
		applied = append(applied, domain.AppliedRule{Rule: k.String(), Effect: effect})
	}
	return text, applied
}

// Optimize is the full rewrite path: classify, resolve the rule selection,
// apply, then score the original and rewritten text. The rewritten text is
// re-classified for its score, so a rule set that fails to improve the
// prompt yields an optimization score that honestly fails to improve.
func (e *Engine) Optimize(text string, ruleNames []string, targetModel string) (domain.Optimization, error) {
	before := Classify(text, targetModel)

	kinds, err := e.catalog.Resolve(ruleNames, before)
	if err != nil {
		return domain.Optimization{}, err
	}

	optimized, applied := Apply(text, kinds, before, targetModel)
	after := Classify(optimized, targetModel)

	return domain.Optimization{
		OriginalPrompt:    text,
		OptimizedPrompt:   optimized,
		Applied:           applied,
		Classification:    before,
		ClarityScore:      Score(before),
		OptimizationScore: Score(after),
		TargetModel:       targetModel,
	}, nil
}

// Analyze produces a quality report without modifying the prompt.
func (e *Engine) Analyze(text string) domain.QualityReport {
	c := Classify(text, "")
	return domain.QualityReport{
		Classification: c,
		ClarityScore:   Score(c),
		Weaknesses:     Weaknesses(c),
	}
}
