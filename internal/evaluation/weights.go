package evaluation

import "fmt"

// Weights combine the sub-scores into the readiness score. They must sum to 1.
// The STAR count (0-4) is scaled to 0-10 before weighting.
type Weights struct {
	Correctness float64
	Confidence  float64
	Star        float64
}

// DefaultWeights: readiness = 0.5*correctness + 0.2*confidence + 0.3*(star*2.5).
var DefaultWeights = Weights{Correctness: 0.5, Confidence: 0.2, Star: 0.3}

// Validate checks that the weights are non-negative and sum to 1.
func (w Weights) Validate() error {
	if w.Correctness < 0 || w.Confidence < 0 || w.Star < 0 {
		return fmt.Errorf("readiness weights must be non-negative: %+v", w)
	}
	sum := w.Correctness + w.Confidence + w.Star
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("readiness weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}
