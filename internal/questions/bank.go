// Package questions supplies interview questions and follow-ups, generated by the
// model when it is available and drawn from an embedded bank when it is not.
package questions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// GeneralRole is the bank pool used for roles the bank does not know.
const GeneralRole = "general"

//go:embed bank.json
var bankJSON []byte

// Rule holds the deterministic correctness checks attached to a bank question.
type Rule struct {
	KeyTerms       []string `json:"key_terms,omitempty"`
	Misconceptions []string `json:"misconceptions,omitempty"`
}

// Empty reports whether the rule has nothing to check.
func (r Rule) Empty() bool {
	return len(r.KeyTerms) == 0 && len(r.Misconceptions) == 0
}

// BankQuestion is one entry in the question bank.
type BankQuestion struct {
	Text string `json:"text"`
	Rule
}

// Bank maps a normalized role name to its questions.
type Bank struct {
	byRole map[string][]BankQuestion
	rules  map[string]Rule
}

// LoadBank parses the embedded bank.
func LoadBank() (*Bank, error) {
	return ParseBank(bankJSON)
}

// ParseBank builds a Bank from JSON of the form {"role": [{"text": ...}, ...]}.
func ParseBank(data []byte) (*Bank, error) {
	var raw map[string][]BankQuestion
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}

	b := &Bank{
		byRole: make(map[string][]BankQuestion, len(raw)),
		rules:  make(map[string]Rule),
	}
	for role, qs := range raw {
		role = normalize(role)
		for _, q := range qs {
			if strings.TrimSpace(q.Text) == "" {
				return nil, fmt.Errorf("question bank role %q has an empty question", role)
			}
			b.byRole[role] = append(b.byRole[role], q)
			if !q.Rule.Empty() {
				b.rules[normalize(q.Text)] = q.Rule
			}
		}
	}
	if len(b.byRole[GeneralRole]) == 0 {
		return nil, fmt.Errorf("question bank must define a non-empty %q pool", GeneralRole)
	}
	return b, nil
}

// Roles returns the roles with a dedicated pool, sorted.
func (b *Bank) Roles() []string {
	roles := make([]string, 0, len(b.byRole))
	for role := range b.byRole {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// Questions returns the pool for role, or the general pool when role is unknown.
func (b *Bank) Questions(role string) []BankQuestion {
	if qs, ok := b.byRole[normalize(role)]; ok && len(qs) > 0 {
		return qs
	}
	return b.byRole[GeneralRole]
}

// Rule returns the correctness rule for a question text, if the bank has one.
func (b *Bank) Rule(question string) (Rule, bool) {
	r, ok := b.rules[normalize(question)]
	return r, ok
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
