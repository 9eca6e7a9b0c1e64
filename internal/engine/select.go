package engine

import (
	"sort"

	"github.com/intelligrit/geodis/internal/model"
)

// selectBestLocations implements spec §4.7: for each extended location,
// for each candidate entity it represents, update the running best
// location for that entity's mention if the current extended location is
// more probable. After the sweep, every surviving best location has the
// list of mention keys that selected it attached.
func selectBestLocations(working map[string]*model.ExtendedLocation) []*model.ExtendedLocation {
	best := make(map[string]*model.ExtendedLocation)

	for _, id := range sortedIDs(working) {
		ext := working[id]
		for _, ce := range ext.CandidateEntities {
			name := ce.NormName()
			incumbent, ok := best[name]
			if !ok || model.MoreProbable(ext, incumbent) {
				best[name] = ext
			}
		}
	}

	mentionsByID := make(map[string][]string)
	uniqueExts := make(map[string]*model.ExtendedLocation)
	for name, ext := range best {
		mentionsByID[ext.Location.ID] = append(mentionsByID[ext.Location.ID], name)
		uniqueExts[ext.Location.ID] = ext
	}

	result := make([]*model.ExtendedLocation, 0, len(uniqueExts))
	for id, ext := range uniqueExts {
		names := mentionsByID[id]
		sort.Strings(names)
		ext.Entities = names
		result = append(result, ext)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Location.ID < result[j].Location.ID })
	return result
}
