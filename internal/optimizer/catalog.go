package optimizer

import (
	"fmt"

	"github.com/promptgrade/promptgrade/internal/domain"
)

// RuleKind enumerates the eight rewrite rules. The declaration order IS the
// canonical application order: identity rules first, content-additive rules
// next, formatting last. Adding a rule means extending this enum and the
// exhaustive switch in applyRule, both compile-checked.
type RuleKind uint8

const (
	RuleRolePlay RuleKind = iota
	RuleExpertSystem
	RuleFewShot
	RuleChainOfThought
	RuleEnhanceClarity
	RuleAddTesting
	RuleModelOptimize
	RuleStructuredOutput

	ruleKindCount
)

// RuleAutoOptimize is a selection sentinel, not a rewrite rule: the
// selector expands it into the default rule set for the detected domains.
const RuleAutoOptimize = "auto_optimize"

var ruleNames = [ruleKindCount]string{
	RuleRolePlay:         "role_play",
	RuleExpertSystem:     "expert_system",
	RuleFewShot:          "few_shot",
	RuleChainOfThought:   "chain_of_thought",
	RuleEnhanceClarity:   "enhance_clarity",
	RuleAddTesting:       "add_testing",
	RuleModelOptimize:    "model_optimize",
	RuleStructuredOutput: "structured_output",
}

func (k RuleKind) String() string {
	if k >= ruleKindCount {
		return fmt.Sprintf("rule(%d)", uint8(k))
	}
	return ruleNames[k]
}

// ParseRuleKind resolves a caller-supplied rule name. The sentinel
// auto_optimize is not a RuleKind and does not resolve here.
func ParseRuleKind(name string) (RuleKind, bool) {
	for k, n := range ruleNames {
		if n == name {
			return RuleKind(k), true
		}
	}
	return 0, false
}

// UnknownRuleError rejects an explicit rule list containing a name outside
// the catalog.
type UnknownRuleError struct {
	Name string
}

func (e UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q", e.Name)
}

// Catalog is the process-wide rule registry: the auto_optimize defaults per
// domain. Built once at startup, read-only afterwards, passed explicitly so
// tests can inject a variant.
type Catalog struct {
	defaults map[string][]RuleKind
}

func NewCatalog() *Catalog {
	return &Catalog{
		defaults: map[string][]RuleKind{
			domain.DomainTechnical:  {RuleExpertSystem, RuleEnhanceClarity, RuleChainOfThought},
			domain.DomainCreative:   {RuleRolePlay, RuleFewShot},
			domain.DomainAnalytical: {RuleExpertSystem, RuleStructuredOutput},
			domain.DomainGeneral:    {RuleEnhanceClarity, RuleStructuredOutput},
		},
	}
}

// Defaults returns the union of the default rule sets of every matched
// domain, deduplicated, in canonical order. Non-empty for every
// classification: the general fallback guarantees at least one domain.
func (cat *Catalog) Defaults(c domain.Classification) []RuleKind {
	var selected [ruleKindCount]bool
	for _, d := range c.Domains {
		for _, k := range cat.defaults[d] {
			selected[k] = true
		}
	}
	return collect(selected)
}

// Resolve turns a caller-supplied rule name list into the concrete ordered
// rule kinds to apply. Duplicates collapse, auto_optimize expands to the
// classification's defaults, and any unknown name rejects the whole list.
// The result is always in canonical order regardless of input order.
func (cat *Catalog) Resolve(names []string, c domain.Classification) ([]RuleKind, error) {
	var selected [ruleKindCount]bool
	for _, name := range names {
		if name == RuleAutoOptimize {
			for _, d := range c.Domains {
				for _, k := range cat.defaults[d] {
					selected[k] = true
				}
			}
			continue
		}

		k, ok := ParseRuleKind(name)
		if !ok {
			return nil, UnknownRuleError{Name: name}
		}
		selected[k] = true
	}
	return collect(selected), nil
}

func collect(selected [ruleKindCount]bool) []RuleKind {
	kinds := make([]RuleKind, 0, ruleKindCount)
	for k := RuleKind(0); k < ruleKindCount; k++ {
		if selected[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
