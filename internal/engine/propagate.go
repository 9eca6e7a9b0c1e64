package engine

import (
	"sort"

	"github.com/intelligrit/geodis/internal/gazetteer"
	"github.com/intelligrit/geodis/internal/model"
)

// Rate factors for the §4.6 boost algebra. Overridable via Configure;
// defaults to the spec's reference constants.
var (
	parentRateFactor       = 1.0
	childRateFactor        = 0.5
	parentLabelRateFactor  = 0.333
	brotherRateFactor      = 0.5
	coordBrotherRateFactor = 1.0
)

// propagateScores implements spec §4.6: for every extended location, two
// passes run in order — parent boosts, then sibling boosts. Iteration
// over both locations and their parents/siblings is sorted by location ID
// so that, when multiple relations write the same boost-slot entry, the
// result is deterministic (spec §9, open question ii).
func propagateScores(dict *gazetteer.Dictionary, working map[string]*model.ExtendedLocation, addingEntities map[string]bool, coordMap map[string][]model.CoordinateGroup) {
	ids := sortedIDs(working)

	for _, id := range ids {
		boostByParents(dict, working, working[id], addingEntities)
	}
	for _, id := range ids {
		boostByBrothers(working, working[id], coordMap)
	}
}

func sortedIDs(working map[string]*model.ExtendedLocation) []string {
	ids := make([]string, 0, len(working))
	for id := range working {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// computeBoost implements the shared max-then-mean boost formula from
// §4.6: for each entry, this relation's score is averaged with every
// prior cross-relation contribution already recorded for the same entity
// on this location, the self slot is overwritten with that mean, and the
// final boost is the max across entries.
func computeBoost(entries []model.Entry, self map[string]float64, relatives []map[string]float64) float64 {
	var finalBoost float64
	for _, e := range entries {
		var sumPrior float64
		var countPrior int
		for _, r := range relatives {
			if v, ok := r[e.Name]; ok {
				sumPrior += v
				countPrior++
			}
		}
		boost := (e.Score + sumPrior) / float64(countPrior+1)
		self[e.Name] = boost
		if boost > finalBoost {
			finalBoost = boost
		}
	}
	return finalBoost
}

// isInfluentialParent implements the §4.6 parent-influence predicate: a
// parent is influential to child L iff it is AdminArea1, AdminArea2, or a
// Country where L is not already inside an admin area 2.
func isInfluentialParent(parent *model.Location, child *model.ExtendedLocation) bool {
	switch parent.Type {
	case model.AdminArea1, model.AdminArea2:
		return true
	case model.Country:
		return !child.Location.IsInsideAdminArea2()
	default:
		return false
	}
}

// boostByParents implements both the mutual parent/child boost and its
// adding-entity-label fallback, for a single child location L.
func boostByParents(dict *gazetteer.Dictionary, working map[string]*model.ExtendedLocation, l *model.ExtendedLocation, addingEntities map[string]bool) {
	parents := append([]*model.Location(nil), l.Parents...)
	sort.Slice(parents, func(i, j int) bool { return parents[i].ID < parents[j].ID })

	for _, parent := range parents {
		requireParentOf(l, parent.ID)
		if !isInfluentialParent(parent, l) {
			continue
		}

		p, present := working[parent.ID]
		if !present {
			boostByParentLabel(parent, l, addingEntities)
			continue
		}

		lNames := l.EntityNames()
		pNames := p.EntityNames()
		shared := intersect(lNames, pNames)

		// Boost L via P's entries, written into L.boost.parents,
		// reconciled against L.boost.children.
		boost1 := computeBoost(p.EntriesExcept(shared), l.Boost.Parents, []map[string]float64{l.Boost.Children})
		l.Score += parentRateFactor * boost1

		// Boost P via L's entries, written into L's own boost.children
		// slot (not P's) — this is load-bearing: it prevents L from
		// causing double amplification of P through its own relation.
		boost2 := computeBoost(l.EntriesExcept(shared), l.Boost.Children, []map[string]float64{l.Boost.Parents})
		p.Score += childRateFactor * boost2
	}
}

func boostByParentLabel(parent *model.Location, l *model.ExtendedLocation, addingEntities map[string]bool) {
	for _, label := range parent.Labels() {
		if addingEntities[label] {
			l.Score += parentLabelRateFactor * l.InitScore
		}
	}
}

func intersect(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for k := range a {
		if b[k] {
			out[k] = true
		}
	}
	return out
}

func union(sets ...map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for _, s := range sets {
		for k := range s {
			out[k] = true
		}
	}
	return out
}

// isBrother implements the §4.6 brother/sibling definition: same type,
// different IDs, and either the same immediate non-region parent, or both
// are cities of the same country with equal SubType ("analogous
// cities").
func isBrother(a, b *model.Location) bool {
	if a.ID == b.ID || a.Type != b.Type {
		return false
	}

	ap, bp := a.ParentsIds(), b.ParentsIds()
	if len(ap) > 0 && len(bp) > 0 && ap[0] == bp[0] {
		return true
	}

	if a.Type == model.City && a.CountryId() != "" && a.CountryId() == b.CountryId() && a.SubType == b.SubType {
		return true
	}

	return false
}

// coordinateNames returns the subset of bNames that coordinate (per the
// caller-supplied coordinate groups) with some member of lNames other
// than themselves.
func coordinateNames(coordMap map[string][]model.CoordinateGroup, bNames, lNames map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for name := range bNames {
		for _, group := range coordMap[name] {
			for _, other := range group {
				if other == name {
					continue
				}
				if lNames[other] {
					out[name] = true
				}
			}
		}
	}
	return out
}

// boostByBrothers implements the §4.6 sibling boost for a single location
// L against every brother present in the working set.
func boostByBrothers(working map[string]*model.ExtendedLocation, l *model.ExtendedLocation, coordMap map[string][]model.CoordinateGroup) {
	var brothers []*model.ExtendedLocation
	for _, other := range working {
		if other.Location.ID == l.Location.ID {
			continue
		}
		if isBrother(l.Location, other.Location) {
			brothers = append(brothers, other)
		}
	}
	sort.Slice(brothers, func(i, j int) bool { return brothers[i].Location.ID < brothers[j].Location.ID })

	lNames := l.EntityNames()

	for _, b := range brothers {
		bNames := b.EntityNames()
		shared := intersect(lNames, bNames)
		coord := coordinateNames(coordMap, bNames, lNames)
		nonCoord := make(map[string]bool)
		for name := range bNames {
			if !coord[name] {
				nonCoord[name] = true
			}
		}

		relatives := []map[string]float64{l.Boost.Children, l.Boost.Parents}

		nonCoordEntries := b.EntriesExcept(union(shared, coord))
		boost1 := computeBoost(nonCoordEntries, l.Boost.Brothers, relatives)
		l.Score += brotherRateFactor * boost1

		coordEntries := b.EntriesExcept(union(shared, nonCoord))
		boost2 := computeBoost(coordEntries, l.Boost.Brothers, relatives)
		l.Score += coordBrotherRateFactor * boost2
	}
}
