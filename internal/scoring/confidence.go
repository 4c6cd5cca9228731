package scoring

import "strings"

// Phrase lists for the confidence heuristic. Matching is case-insensitive substring.
var (
	FillerWords = []string{"um", "uh", "basically", "like", "you know"}
	WeakPhrases = []string{"i think", "maybe", "probably", "not sure"}
	StrongVerbs = []string{"led", "implemented", "designed", "optimized", "built"}
)

const confidenceBaseline = 5

// ConfidenceResult is the confidence score with the counts behind it.
type ConfidenceResult struct {
	Score       int `json:"score"`
	FillerCount int `json:"filler_count"`
	WeakCount   int `json:"weak_count"`
	StrongCount int `json:"strong_count"`
}

// Confidence scores delivery from a neutral 5: +1 per distinct strong verb present,
// -1 per filler or weak-phrase occurrence, clamped to 0-10.
func Confidence(answer string) ConfidenceResult {
	lower := strings.ToLower(answer)

	var res ConfidenceResult
	for _, w := range FillerWords {
		res.FillerCount += strings.Count(lower, w)
	}
	for _, w := range WeakPhrases {
		res.WeakCount += strings.Count(lower, w)
	}
	for _, v := range StrongVerbs {
		if strings.Contains(lower, v) {
			res.StrongCount++
		}
	}

	res.Score = min(10, max(0, confidenceBaseline+res.StrongCount-res.FillerCount-res.WeakCount))
	return res
}
