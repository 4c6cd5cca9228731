package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-coach/internal/questions"
)

func TestRuleBoost(t *testing.T) {
	rule := questions.Rule{
		KeyTerms:       []string{"chaining", "open addressing", "load factor", "rehash"},
		Misconceptions: []string{"never collide"},
	}

	tests := []struct {
		name   string
		answer string
		want   int
	}{
		{"nothing matched", "You store things in buckets.", 0},
		{"one term", "Collisions are handled by chaining.", 1},
		{"case insensitive", "CHAINING or Open Addressing.", 2},
		{"capped", "Chaining, open addressing, a load factor threshold and a rehash step.", MaxRuleBoost},
		{"misconception offsets a term", "Keys never collide, but chaining exists.", 0},
		{"never negative", "Hash keys never collide.", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RuleBoost(rule, tt.answer))
		})
	}
}

func TestRuleBoost_EmptyRule(t *testing.T) {
	assert.Equal(t, 0, RuleBoost(questions.Rule{}, "anything at all"))
}
