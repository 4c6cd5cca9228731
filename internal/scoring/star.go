package scoring

import (
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// StarMax is the top of the STAR scale: one point per category.
const StarMax = 4

// StarKeywords lists the substrings that mark each STAR category.
var StarKeywords = map[string][]string{
	"situation": {"situation", "context", "background"},
	"task":      {"task", "responsibility", "goal"},
	"action":    {"action", "implemented", "worked", "developed"},
	"result":    {"result", "outcome", "impact", "improved"},
}

// Star detects which STAR categories an answer touches. A category counts once
// no matter how many of its keywords appear.
func Star(answer string) types.StarBreakdown {
	lower := strings.ToLower(answer)
	return types.StarBreakdown{
		Situation: containsAny(lower, StarKeywords["situation"]),
		Task:      containsAny(lower, StarKeywords["task"]),
		Action:    containsAny(lower, StarKeywords["action"]),
		Result:    containsAny(lower, StarKeywords["result"]),
	}
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
