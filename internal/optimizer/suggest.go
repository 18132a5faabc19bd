package optimizer

import (
	"fmt"

	"github.com/promptgrade/promptgrade/internal/domain"
)

// Focus areas for suggestion filtering. FocusAll (also the empty string)
// means no filter.
const (
	FocusAll       = "all"
	FocusClarity   = "clarity"
	FocusStructure = "structure"
	FocusExamples  = "examples"
	FocusReasoning = "reasoning"
	FocusExpertise = "expertise"
)

type UnknownFocusError struct {
	Value string
}

func (e UnknownFocusError) Error() string {
	return fmt.Sprintf("unknown focus_area %q", e.Value)
}

// suggestionArea pairs an area with its trigger predicate and suggestion
// text, evaluated in a fixed order. Text may depend on the classification
// (the expertise suggestion names the persona role_play would assign).
type suggestionArea struct {
	area    string
	applies func(domain.Classification) bool
	text    func(domain.Classification) string
}

var suggestionAreas = []suggestionArea{
	{
		area:    FocusClarity,
		applies: func(c domain.Classification) bool { return c.IsVague || c.IsShort },
		text: func(domain.Classification) string {
			return "Add more specific details and concrete examples of what you expect"
		},
	},
	{
		area:    FocusStructure,
		applies: needsStructure,
		text: func(domain.Classification) string {
			return "Use bullet points or numbered lists for complex requests"
		},
	},
	{
		area:    FocusExamples,
		applies: func(c domain.Classification) bool { return needsExamples(c) && !c.HasExamples },
		text: func(domain.Classification) string {
			return "Include sample inputs and outputs to clarify expectations"
		},
	},
	{
		area:    FocusReasoning,
		applies: func(c domain.Classification) bool { return c.RequestsReasoning },
		text: func(domain.Classification) string {
			return "Ask for step-by-step explanations or thought processes"
		},
	},
	{
		area: FocusExpertise,
		applies: func(c domain.Classification) bool {
			_, ok := expertRoles[dominantDomain(c)]
			return ok
		},
		text: func(c domain.Classification) string {
			return fmt.Sprintf("Specify that you want a response from %s", expertRoles[dominantDomain(c)])
		},
	},
}

// Suggest lists improvement suggestions for the prompt, optionally filtered
// to one focus area. An unfiltered run with nothing to suggest returns a
// single well-structured note instead of an empty list.
func (e *Engine) Suggest(text string, focusArea string) ([]domain.Suggestion, error) {
	if focusArea == "" {
		focusArea = FocusAll
	}
	if !validFocus(focusArea) {
		return nil, UnknownFocusError{Value: focusArea}
	}

	c := Classify(text, "")

	var suggestions []domain.Suggestion
	for _, s := range suggestionAreas {
		if focusArea != FocusAll && focusArea != s.area {
			continue
		}
		if !s.applies(c) {
			continue
		}
		suggestions = append(suggestions, domain.Suggestion{Area: s.area, Suggestion: s.text(c)})
	}

	if len(suggestions) == 0 && focusArea == FocusAll {
		suggestions = append(suggestions, domain.Suggestion{
			Area:       "general",
			Suggestion: "Prompt is well-structured; run validate_prompt with auto_optimize for minor enhancements",
		})
	}
	return suggestions, nil
}

func validFocus(focusArea string) bool {
	switch focusArea {
	case FocusAll, FocusClarity, FocusStructure, FocusExamples, FocusReasoning, FocusExpertise:
		return true
	}
	return false
}
