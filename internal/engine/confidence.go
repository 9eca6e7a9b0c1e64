package engine

import (
	"math"

	"github.com/intelligrit/geodis/internal/model"
)

// isRelative implements the §9 open-question resolution: two locations
// are relatives iff distinct, both inside a country, and share the same
// country ID.
func isRelative(a, b *model.ExtendedLocation) bool {
	if a.Location.ID == b.Location.ID {
		return false
	}
	if !a.Location.IsInsideCountry() || !b.Location.IsInsideCountry() {
		return false
	}
	return a.Location.CountryId() == b.Location.CountryId()
}

// calibrateConfidence implements spec §4.8: for each best location, five
// additive contributions (parents, sub-levels, brothers, other
// relatives, and — for countries — border neighbors among the selected
// set) are summed, divided by 5, and cube-rooted. Must run strictly after
// selection: computing this during score propagation would see a
// different (pre-selection) population and change the result.
func calibrateConfidence(best []*model.ExtendedLocation) {
	bestIDs := make(map[string]bool, len(best))
	countByType := make(map[model.Type]int)
	for _, l := range best {
		bestIDs[l.Location.ID] = true
		countByType[l.Location.Type]++
	}

	subLevelCount := make(map[string]int)
	subLevelTypes := make(map[string]map[model.Type]bool)
	for _, l := range best {
		for _, pid := range l.Location.ParentsIds() {
			if !bestIDs[pid] {
				continue
			}
			subLevelCount[pid]++
			if subLevelTypes[pid] == nil {
				subLevelTypes[pid] = make(map[model.Type]bool)
			}
			subLevelTypes[pid][l.Location.Type] = true
		}
	}

	possibleRelatives := 0
	for _, m := range best {
		if m.Location.IsInsideCountry() {
			possibleRelatives++
		}
	}

	bestCountryCount := countByType[model.Country]

	for _, l := range best {
		var sum float64

		// 1. Parents.
		var bp []*model.Location
		bpt := make(map[model.Type]bool)
		for _, p := range l.Parents {
			if bestIDs[p.ID] {
				bp = append(bp, p)
				bpt[p.Type] = true
			}
		}
		if s := sumCounts(countByType, bpt); s > 0 {
			sum += float64(len(bp)) / float64(s)
		}

		// 2. Sub-levels.
		st := subLevelTypes[l.Location.ID]
		if s := sumCounts(countByType, st); s > 0 {
			sum += float64(subLevelCount[l.Location.ID]) / float64(s)
		}

		// 3. Brothers.
		sameType := countByType[l.Location.Type]
		if sameType > 1 {
			bb := 0
			for _, other := range best {
				if other.Location.ID != l.Location.ID && isBrother(l.Location, other.Location) {
					bb++
				}
			}
			sum += float64(bb) / float64(sameType-1)
		}

		// 4. Other relatives.
		if possibleRelatives > 0 {
			rel := 0
			for _, m := range best {
				if isRelative(l, m) {
					rel++
				}
			}
			sum += float64(rel) / float64(possibleRelatives)
		}

		// 5. Borders (countries only).
		if l.Location.IsCountry() && bestCountryCount > 1 {
			shared := 0
			for _, b := range l.Location.Borders {
				if bestIDs[b] {
					shared++
				}
			}
			sum += float64(shared) / float64(bestCountryCount-1)
		}

		l.Confidence = math.Cbrt(sum / 5)
	}
}

func sumCounts(countByType map[model.Type]int, types map[model.Type]bool) int {
	sum := 0
	for t := range types {
		sum += countByType[t]
	}
	return sum
}
