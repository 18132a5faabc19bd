package optimizer

import (
	"github.com/promptgrade/promptgrade/internal/domain"
)

// Clarity weights. Chosen so a bare vague question lands around 0.25 and a
// prompt with a clear task, constraints, and detail clears 0.7; the sum of
// all weights is 1.0.
const (
	weightNotVague    = 0.30
	weightClearTask   = 0.25
	weightConstraints = 0.25
	weightNotShort    = 0.20
)

// Score computes the clarity score of a classified prompt in [0,1]. The
// optimization score of a rewrite is the same formula evaluated on the
// rewritten text's classification; no clamping ties the two together, so a
// poorly chosen rule set can genuinely score lower than the original.
func Score(c domain.Classification) float64 {
	score := 0.0
	if !c.IsVague {
		score += weightNotVague
	}
	if c.HasClearTask {
		score += weightClearTask
	}
	if c.HasConstraints {
		score += weightConstraints
	}
	if !c.IsShort {
		score += weightNotShort
	}
	return score
}

// Weaknesses lists what holds the prompt's clarity back, independent of
// any rewrite.
func Weaknesses(c domain.Classification) []string {
	var weaknesses []string
	if c.IsVague {
		weaknesses = append(weaknesses, "lacks specificity - add concrete details and context")
	}
	if !c.HasClearTask {
		weaknesses = append(weaknesses, "no clear task - state what the model should do with an action verb")
	}
	if !c.HasConstraints && c.WordCount > 20 {
		weaknesses = append(weaknesses, "no success criteria - define constraints or requirements for better results")
	}
	if needsExamples(c) && !c.HasExamples {
		weaknesses = append(weaknesses, "no illustrative examples - add sample inputs or outputs to clarify expectations")
	}
	if needsStructure(c) {
		weaknesses = append(weaknesses, "no output structure requested - long or multi-question prompts benefit from explicit sections")
	}
	return weaknesses
}

func needsExamples(c domain.Classification) bool {
	return c.QuestionCount > 0 && c.WordCount < 20
}

func needsStructure(c domain.Classification) bool {
	return c.WordCount > 30 || c.QuestionCount > 2
}
