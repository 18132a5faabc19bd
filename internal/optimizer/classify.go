package optimizer

import (
	"strings"

	"github.com/promptgrade/promptgrade/internal/domain"
)

// Classification thresholds. A prompt under shortWordCount words is a bare
// question; a prompt whose content-word ratio falls under vagueThreshold
// carries no concrete noun or action to anchor a response on.
const (
	shortWordCount = 8
	vagueThreshold = 0.5
)

// domainMatcher tags a prompt with one domain when any of its keywords
// occurs in the lowercased text. Matchers are independent of each other;
// adding a domain means appending a matcher, not touching existing ones.
type domainMatcher struct {
	domain   string
	keywords []string
}

var domainMatchers = []domainMatcher{
	{domain.DomainTechnical, []string{
		"code", "programming", "software", "debug", "engineering",
		"technical", "algorithm", "function", "api", "database",
	}},
	{domain.DomainCreative, []string{
		"write", "story", "content", "marketing", "copy", "creative",
		"poem", "narrative", "blog",
	}},
	{domain.DomainAnalytical, []string{
		"analyze", "analysis", "data", "research", "compare", "evaluate",
		"statistics", "metrics",
	}},
}

var clearTaskVerbs = []string{"analyze", "create", "explain", "generate", "write", "help"}

var constraintWords = []string{"must", "should", "requirement", "constraint", "limit"}

var reasoningWords = []string{"why", "how", "explain", "analyze", "compare"}

var examplePhrases = []string{"example", "for instance", "e.g."}

// Classify derives domain tags and structural flags from the prompt text.
// It never fails: empty or pathological input yields a general-only
// classification. The target model does not influence tagging; it is
// accepted so callers hand the full request through one place.
func Classify(text string, targetModel string) domain.Classification {
	_ = targetModel

	lower := strings.ToLower(text)
	words := strings.Fields(lower)

	tokens := make([]string, 0, len(words))
	longWords := 0
	for _, w := range words {
		w = strings.Trim(w, ".,;:!?\"'()[]")
		if w == "" {
			continue
		}
		tokens = append(tokens, w)
		if len(w) > 3 {
			longWords++
		}
	}

	c := domain.Classification{
		Length:        len(text),
		WordCount:     len(words),
		QuestionCount: strings.Count(text, "?"),
	}

	for _, m := range domainMatchers {
		if containsAny(lower, tokens, m.keywords) {
			c.Domains = append(c.Domains, m.domain)
		}
	}
	if len(c.Domains) == 0 {
		c.Domains = []string{domain.DomainGeneral}
	}

	c.HasClearTask = containsAny(lower, tokens, clearTaskVerbs)
	c.HasConstraints = containsAny(lower, tokens, constraintWords)
	c.RequestsReasoning = containsAny(lower, tokens, reasoningWords)
	c.HasExamples = containsAny(lower, tokens, examplePhrases)
	c.IsShort = len(words) < shortWordCount

	denominator := len(words)
	if denominator < 10 {
		denominator = 10
	}
	c.IsVague = float64(longWords)/float64(denominator) < vagueThreshold

	return c
}

// containsAny matches phrases against the raw lowered text and single
// words against tokens. Keywords of four or more characters match as token
// prefixes so plural and inflected forms still count ("example" matches
// "examples"); shorter keywords match exactly, so "how" never fires on
// "showcase".
func containsAny(lower string, tokens []string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.ContainsAny(kw, " .") {
			if strings.Contains(lower, kw) {
				return true
			}
			continue
		}
		for _, tok := range tokens {
			if tok == kw || (len(kw) >= 4 && strings.HasPrefix(tok, kw)) {
				return true
			}
		}
	}
	return false
}

// dominantDomain is the first matched domain in matcher order; matcher
// order is fixed, so the result is deterministic for a given text.
func dominantDomain(c domain.Classification) string {
	if len(c.Domains) == 0 {
		return domain.DomainGeneral
	}
	return c.Domains[0]
}
