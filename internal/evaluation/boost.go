package evaluation

import (
	"strings"

	"github.com/jonathan/interview-coach/internal/questions"
)

// MaxRuleBoost caps the deterministic correctness bonus so the model verdict dominates.
const MaxRuleBoost = 3

// RuleSource looks up deterministic checks for a question.
type RuleSource interface {
	Rule(question string) (questions.Rule, bool)
}

// RuleBoost adds one point per key term the answer mentions and removes one per
// known misconception it repeats, bounded to [0, MaxRuleBoost].
func RuleBoost(rule questions.Rule, answer string) int {
	lower := strings.ToLower(answer)

	boost := 0
	for _, term := range rule.KeyTerms {
		if term != "" && strings.Contains(lower, strings.ToLower(term)) {
			boost++
		}
	}
	for _, phrase := range rule.Misconceptions {
		if phrase != "" && strings.Contains(lower, strings.ToLower(phrase)) {
			boost--
		}
	}
	return min(MaxRuleBoost, max(0, boost))
}
