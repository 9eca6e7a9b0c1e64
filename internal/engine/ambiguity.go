package engine

import "github.com/intelligrit/geodis/internal/model"

// ambiguityDampingFactor is applied once to InitScore for every extended
// location a deleted entity is removed from (spec §4.4). Overridable via
// Configure; defaults to the spec's reference constant.
var ambiguityDampingFactor = 0.9

// resolveAmbiguity implements spec §4.4: inside each ambiguity group, the
// first entity (in input order) that currently has at least one
// surviving extended location wins; every other name in that group is a
// deletion candidate. A name only actually gets deleted if it never wins
// any group — "a later group kept them" overrides an earlier loss,
// because each group's winner is decided independently against the
// pre-resolution state, not against intermediate deletions from sibling
// groups. Runs exactly once, mutating the shared working map in place so
// every downstream stage sees the reduced set.
func resolveAmbiguity(working map[string]*model.ExtendedLocation, groups []model.AmbiguityGroup) {
	winners := make(map[string]bool)
	toDelete := make(map[string]bool)

	for _, group := range groups {
		winnerIdx := -1
		for i, name := range group {
			if hasSurvivingLocation(working, name) {
				winnerIdx = i
				break
			}
		}
		if winnerIdx == -1 {
			continue
		}
		winners[group[winnerIdx]] = true
		for i := winnerIdx + 1; i < len(group); i++ {
			toDelete[group[i]] = true
		}
	}

	for name := range toDelete {
		if winners[name] {
			continue
		}
		deleteEntity(working, name)
	}
}

func hasSurvivingLocation(working map[string]*model.ExtendedLocation, normName string) bool {
	for _, ext := range working {
		if ext.HasEntity(normName) {
			return true
		}
	}
	return false
}

// deleteEntity removes normName from every extended location that lists
// it (damping InitScore by ambiguityDampingFactor on each one first), then
// drops any extended location left with no candidate entities at all.
func deleteEntity(working map[string]*model.ExtendedLocation, normName string) {
	for _, ext := range working {
		if !ext.HasEntity(normName) {
			continue
		}
		ext.InitScore *= ambiguityDampingFactor
		ext.RemoveCandidateEntity(normName)
	}

	for id, ext := range working {
		if len(ext.CandidateEntities) == 0 {
			delete(working, id)
		}
	}
}
