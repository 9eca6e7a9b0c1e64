package model

// Boost is a three-slot record of per-entity boost contributions on an
// ExtendedLocation, one slot per relation (parent, child, sibling). The
// slots are written by score propagation and cross-read by the other
// relations to prevent double-counting the same entity's evidence.
type Boost struct {
	Parents  map[string]float64
	Children map[string]float64
	Brothers map[string]float64
}

// NewBoost returns a Boost with all three slots initialized empty.
func NewBoost() Boost {
	return Boost{
		Parents:  make(map[string]float64),
		Children: make(map[string]float64),
		Brothers: make(map[string]float64),
	}
}

// Entry is a (entity name, score) pair produced by ExtendedLocation's
// EntriesExcept, consumed by the boost algebra in internal/engine.
type Entry struct {
	Name  string
	Score float64
}

// ExtendedLocation is the mutable working record the engine builds,
// scores, and mutates in place for the duration of one FindLocations call.
// Two ExtendedLocations with the same Location.ID are considered
// identical.
type ExtendedLocation struct {
	Location *Location

	CandidateEntities []CandidateEntity
	Parents           []*Location

	InitScore float64
	Score     float64

	Confidence float64

	ScoreDeviation      float64
	ConfidenceDeviation float64
	CountryStrength     float64

	// Entities holds, after selection, the mention keys (normalized
	// candidate names) this location was chosen as the best match for.
	Entities []string

	Boost Boost
}

// NewExtendedLocation builds a fresh working record for loc, wrapping the
// candidate entities that produced it and the resolved parent chain.
func NewExtendedLocation(loc *Location, parents []*Location, entities []CandidateEntity) *ExtendedLocation {
	return &ExtendedLocation{
		Location:          loc,
		CandidateEntities: entities,
		Parents:           parents,
		Boost:             NewBoost(),
	}
}

// EntityNames returns the set of normalized candidate-entity names this
// extended location currently represents.
func (e *ExtendedLocation) EntityNames() map[string]bool {
	out := make(map[string]bool, len(e.CandidateEntities))
	for _, c := range e.CandidateEntities {
		out[c.NormName()] = true
	}
	return out
}

// EntriesExcept returns (name, Score) pairs for every entity name this
// location represents that is not in exclude. Every entry carries this
// location's current aggregate Score — the entity names are labels on the
// evidence this location itself contributes, not per-entity sub-scores.
func (e *ExtendedLocation) EntriesExcept(exclude map[string]bool) []Entry {
	names := e.EntityNames()
	out := make([]Entry, 0, len(names))
	for name := range names {
		if exclude[name] {
			continue
		}
		out = append(out, Entry{Name: name, Score: e.Score})
	}
	return out
}

// RemoveCandidateEntity drops entity (by normalized name) from this
// location's candidate-entity list, returning true if it was present.
func (e *ExtendedLocation) RemoveCandidateEntity(normName string) bool {
	removed := false
	kept := e.CandidateEntities[:0]
	for _, c := range e.CandidateEntities {
		if c.NormName() == normName {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	e.CandidateEntities = kept
	return removed
}

// HasEntity reports whether normName is among this location's candidate
// entities.
func (e *ExtendedLocation) HasEntity(normName string) bool {
	for _, c := range e.CandidateEntities {
		if c.NormName() == normName {
			return true
		}
	}
	return false
}
