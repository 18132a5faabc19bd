package domain

// Domain tags a prompt can carry. A prompt may match several; General is
// the fallback when none match.
const (
	DomainTechnical  = "technical"
	DomainCreative   = "creative"
	DomainAnalytical = "analytical"
	DomainGeneral    = "general"
)

type Classification struct {
	Domains           []string `json:"domains"`
	Length            int      `json:"length"`
	WordCount         int      `json:"word_count"`
	QuestionCount     int      `json:"question_count"`
	HasClearTask      bool     `json:"has_clear_task"`
	HasExamples       bool     `json:"has_examples"`
	HasConstraints    bool     `json:"has_constraints"`
	RequestsReasoning bool     `json:"requests_reasoning"`
	IsShort           bool     `json:"is_short"`
	IsVague           bool     `json:"is_vague"`
}

func (c Classification) HasDomain(domain string) bool {
	for _, d := range c.Domains {
		if d == domain {
			return true
		}
	}
	return false
}

type AppliedRule struct {
	Rule   string `json:"rule"`
	Effect string `json:"effect"`
}

type Optimization struct {
	Id                string         `json:"id"`
	OriginalPrompt    string         `json:"original_prompt"`
	OptimizedPrompt   string         `json:"optimized_prompt"`
	Applied           []AppliedRule  `json:"applied"`
	Classification    Classification `json:"classification"`
	ClarityScore      float64        `json:"clarity_score"`
	OptimizationScore float64        `json:"optimization_score"`
	TargetModel       string         `json:"target_model"`
}

type QualityReport struct {
	Classification Classification `json:"classification"`
	ClarityScore   float64        `json:"clarity_score"`
	Weaknesses     []string       `json:"weaknesses"`
}

type Suggestion struct {
	Area       string `json:"area"`
	Suggestion string `json:"suggestion"`
}
