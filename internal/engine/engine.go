// Package engine implements the disambiguation pipeline from spec §2:
// candidate expansion, ambiguity resolution, adding-entity detection,
// score propagation, selection, confidence calibration, and final
// normalization/statistics. The engine is single-threaded and
// synchronous per call — see spec §5 — and constructs fresh working
// state for every invocation; the Dictionary it queries is read-only and
// safe to share across concurrent calls.
package engine

import (
	"github.com/intelligrit/geodis/internal/gazetteer"
	"github.com/intelligrit/geodis/internal/model"
)

// FindLocations runs the full disambiguation pipeline and returns the
// selected locations in descending probability order, plus descriptive
// statistics over the result set. A zero-candidate input is a normal
// path: it returns an empty result and nil stats, not an error.
func FindLocations(
	dict *gazetteer.Dictionary,
	textTokens []string,
	candidates []model.CandidateEntity,
	coordinateGroups []model.CoordinateGroup,
	ambiguityGroups []model.AmbiguityGroup,
) ([]*model.ExtendedLocation, *Stats, error) {
	if len(candidates) == 0 {
		return nil, nil, nil
	}

	working, err := expandCandidates(dict, candidates)
	if err != nil {
		return nil, nil, err
	}

	resolveAmbiguity(working, ambiguityGroups)

	addingEntities, err := detectAddingEntities(dict, working, textTokens)
	if err != nil {
		return nil, nil, err
	}

	coordMap := buildCoordinateMap(coordinateGroups)
	propagateScores(dict, working, addingEntities, coordMap)

	best := selectBestLocations(working)
	if len(best) == 0 {
		return nil, nil, nil
	}

	calibrateConfidence(best)
	normalizeAndAnnotate(best)

	stats := computeStats(best)
	return best, &stats, nil
}

// buildCoordinateMap indexes coordinate groups by every normalized member
// name they contain, so boostByBrothers can look up "which groups is this
// entity a member of" in constant time.
func buildCoordinateMap(groups []model.CoordinateGroup) map[string][]model.CoordinateGroup {
	out := make(map[string][]model.CoordinateGroup)
	for _, g := range groups {
		norm := make(model.CoordinateGroup, len(g))
		for i, name := range g {
			norm[i] = model.NormalizeName(name)
		}
		for _, name := range norm {
			out[name] = append(out[name], norm)
		}
	}
	return out
}
