package engine

import (
	"sort"

	"github.com/intelligrit/geodis/internal/model"
)

// normalizeAndAnnotate implements spec §4.9: scores are renormalized to
// sum to 1, per-location score/confidence deviations from the mean and a
// country-strength metric are attached, and the list is sorted by
// descending probability (the §4.1 dominance comparator).
func normalizeAndAnnotate(best []*model.ExtendedLocation) {
	if len(best) == 0 {
		return
	}

	var scoreSum float64
	for _, l := range best {
		scoreSum += l.Score
	}
	if scoreSum != 0 {
		for _, l := range best {
			l.Score /= scoreSum
		}
	}

	scoreMean := mean(best, func(l *model.ExtendedLocation) float64 { return l.Score })
	confMean := mean(best, func(l *model.ExtendedLocation) float64 { return l.Confidence })
	for _, l := range best {
		l.ScoreDeviation = l.Score - scoreMean
		l.ConfidenceDeviation = l.Confidence - confMean
	}

	annotateCountryStrength(best)

	sort.SliceStable(best, func(i, j int) bool { return model.MoreProbable(best[i], best[j]) })
}

func mean(best []*model.ExtendedLocation, f func(*model.ExtendedLocation) float64) float64 {
	if len(best) == 0 {
		return 0
	}
	var sum float64
	for _, l := range best {
		sum += f(l)
	}
	return sum / float64(len(best))
}

// annotateCountryStrength groups selected locations by their effective
// country ID (CountryId if inside a country, their own ID if they are a
// country, otherwise the location is skipped) and assigns each member the
// mean score of its group.
func annotateCountryStrength(best []*model.ExtendedLocation) {
	groups := make(map[string][]*model.ExtendedLocation)
	for _, l := range best {
		key := effectiveCountryID(l.Location)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], l)
	}
	for _, members := range groups {
		var sum float64
		for _, m := range members {
			sum += m.Score
		}
		avg := sum / float64(len(members))
		for _, m := range members {
			m.CountryStrength = avg
		}
	}
}

func effectiveCountryID(loc *model.Location) string {
	if loc.IsInsideCountry() {
		return loc.CountryId()
	}
	if loc.IsCountry() {
		return loc.ID
	}
	return ""
}
