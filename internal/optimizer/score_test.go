package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreVagueShortQuestion(t *testing.T) {
	engine := New(NewCatalog())

	r := engine.Analyze("Explain machine learning to me")

	assert.True(t, r.Classification.IsVague)
	assert.Less(t, r.ClarityScore, 0.5)
	assert.NotEmpty(t, r.Weaknesses)
	assert.Contains(t, r.Weaknesses[0], "lacks specificity")
}

func TestScoreWellFormedPrompt(t *testing.T) {
	engine := New(NewCatalog())

	r := engine.Analyze("Analyze the attached churn dataset and produce a ranked list of drivers; the report must stay under 500 words")

	assert.Greater(t, r.ClarityScore, 0.7)
	assert.Empty(t, r.Weaknesses)
}

func TestScoreRewardsClearTask(t *testing.T) {
	withTask := Classify("Generate a deployment plan", "")
	withoutTask := Classify("A deployment plan perhaps", "")

	assert.Greater(t, Score(withTask), Score(withoutTask))
}

func TestScoreBounds(t *testing.T) {
	for _, text := range []string{
		"",
		"hi",
		"How do I write code?",
		"Analyze the attached churn dataset and produce a ranked list of drivers; the report must stay under 500 words",
	} {
		s := Score(Classify(text, ""))
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestWeaknessMissingTask(t *testing.T) {
	c := Classify("Lighthouse coastal weather patterns overnight shipping lanes maritime history", "")

	weaknesses := Weaknesses(c)

	assert.Equal(t, []string{"no clear task - state what the model should do with an action verb"}, weaknesses)
}

func TestWeaknessMissingConstraintsOnLongPrompt(t *testing.T) {
	c := Classify("Explain the migration path from the legacy billing system to the new platform covering schema translation cutover sequencing and rollback planning for the operations team", "")

	weaknesses := Weaknesses(c)

	found := false
	for _, w := range weaknesses {
		if w == "no success criteria - define constraints or requirements for better results" {
			found = true
		}
	}
	assert.True(t, found, "long prompt without constraint language should flag missing success criteria")
}

func TestWeaknessShortQuestionWantsExamples(t *testing.T) {
	c := Classify("How should the parser behave?", "")

	weaknesses := Weaknesses(c)

	found := false
	for _, w := range weaknesses {
		if w == "no illustrative examples - add sample inputs or outputs to clarify expectations" {
			found = true
		}
	}
	assert.True(t, found)
}
