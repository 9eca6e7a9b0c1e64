package engine

import (
	"fmt"
	"sort"

	"github.com/intelligrit/geodis/internal/gazetteer"
	"github.com/intelligrit/geodis/internal/model"
)

// expandCandidates implements spec §4.3: every candidate name is
// normalized and looked up in the dictionary; every matching location
// becomes an extended location whose initial score is the mean score of
// its originating candidate names. Malformed candidate names (empty
// after trim/lower) match nothing and are silently dropped, per §7.
func expandCandidates(dict *gazetteer.Dictionary, candidates []model.CandidateEntity) (map[string]*model.ExtendedLocation, error) {
	originators := make(map[string]map[string]model.CandidateEntity) // locID -> normName -> entity

	for _, c := range candidates {
		norm := c.NormName()
		if norm == "" {
			continue
		}
		matches := dict.GetByLabel(norm)
		for _, loc := range matches {
			if originators[loc.ID] == nil {
				originators[loc.ID] = make(map[string]model.CandidateEntity)
			}
			originators[loc.ID][norm] = c
		}
	}

	working := make(map[string]*model.ExtendedLocation, len(originators))
	for locID, byName := range originators {
		loc := dict.Get(locID)
		if loc == nil {
			continue // dictionary mutated underneath us — should not happen
		}

		parents, err := resolveParents(dict, loc)
		if err != nil {
			return nil, err
		}

		entities := make([]model.CandidateEntity, 0, len(byName))
		for _, e := range byName {
			entities = append(entities, e)
		}
		sort.Slice(entities, func(i, j int) bool { return entities[i].NormName() < entities[j].NormName() })

		ext := model.NewExtendedLocation(loc, parents, entities)
		ext.InitScore = meanScore(entities)
		ext.Score = ext.InitScore
		working[locID] = ext
	}

	return working, nil
}

// resolveParents walks loc.ParentsIds() through the dictionary, failing
// with the gazetteer's LocationNotFoundError if any reference is absent —
// per §4.2, consumers may assume parentsIds always resolve, so a miss
// indicates a corrupt dictionary.
func resolveParents(dict *gazetteer.Dictionary, loc *model.Location) ([]*model.Location, error) {
	ids := loc.ParentsIds()
	parents := make([]*model.Location, 0, len(ids))
	for _, pid := range ids {
		p, err := dict.RequireById(pid)
		if err != nil {
			return nil, fmt.Errorf("resolving parents of %s: %w", loc.ID, err)
		}
		parents = append(parents, p)
	}
	return parents, nil
}

func meanScore(entities []model.CandidateEntity) float64 {
	if len(entities) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range entities {
		sum += e.Score
	}
	return sum / float64(len(entities))
}
