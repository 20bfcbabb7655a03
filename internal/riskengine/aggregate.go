package riskengine

import (
	"math"

	"rug-radar/internal/domain"
)

// aggregate sums the factor scores (already in absolute points), clamps
// to [0, 100] and rounds. Confidence is the plain mean of the factor
// confidences, rounded to two decimals.
func aggregate(factors map[string]domain.RiskFactor) (score int, confidence float64) {
	if len(factors) == 0 {
		return 0, 0
	}

	var sum, conf float64
	for _, f := range factors {
		sum += f.Score
		conf += f.Confidence
	}

	sum = math.Min(math.Max(sum, 0), 100)
	score = int(math.Round(sum))
	confidence = math.Round(conf/float64(len(factors))*100) / 100
	return score, confidence
}

// levelFor maps the overall score onto the four risk buckets. Boundaries
// are inclusive on the lower bucket.
func levelFor(score int) domain.RiskLevel {
	switch {
	case score <= 25:
		return domain.RiskLow
	case score <= 50:
		return domain.RiskMedium
	case score <= 75:
		return domain.RiskHigh
	default:
		return domain.RiskExtreme
	}
}
