// Package scoring implements the deterministic answer scorers: lexical relevance,
// STAR structure detection, and delivery confidence. Every function here is pure.
package scoring

import (
	"math"
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize returns the set of lowercase word tokens in text.
func Tokenize(text string) map[string]struct{} {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Relevance returns the share of question tokens that also appear in the answer,
// capped at 1.0 and scaled to 0-10 with two decimals.
func Relevance(question, answer string) float64 {
	qTokens := Tokenize(question)
	aTokens := Tokenize(answer)

	overlap := 0
	for token := range qTokens {
		if _, ok := aTokens[token]; ok {
			overlap++
		}
	}

	ratio := float64(overlap) / float64(max(len(qTokens), 1))
	return Round2(min(ratio, 1.0) * 10)
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
