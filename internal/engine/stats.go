package engine

import (
	"math"

	"github.com/intelligrit/geodis/internal/model"
)

// Distribution reports the descriptive statistics for one metric
// (score or confidence) across a set of results.
type Distribution struct {
	Avg        float64
	Variance   float64
	StdDev     float64
	StdDevPerc float64
}

// Stats implements spec §6.3: descriptive statistics computed over the
// returned locations, exposed alongside FindLocations' result list.
type Stats struct {
	Score      Distribution
	Confidence Distribution
}

func computeDistribution(values []float64) Distribution {
	n := len(values)
	if n == 0 {
		return Distribution{}
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(n)

	var sqDiff float64
	for _, v := range values {
		d := v - avg
		sqDiff += d * d
	}
	variance := sqDiff / float64(n)
	stdDev := math.Sqrt(variance)

	var stdDevPerc float64
	if avg != 0 {
		stdDevPerc = stdDev / avg * 100
	}

	return Distribution{Avg: avg, Variance: variance, StdDev: stdDev, StdDevPerc: stdDevPerc}
}

// computeStats builds the Stats struct for a finished result set.
func computeStats(results []*model.ExtendedLocation) Stats {
	scores := make([]float64, len(results))
	confidences := make([]float64, len(results))
	for i, l := range results {
		scores[i] = l.Score
		confidences[i] = l.Confidence
	}
	return Stats{
		Score:      computeDistribution(scores),
		Confidence: computeDistribution(confidences),
	}
}
