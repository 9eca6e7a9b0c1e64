package engine

import (
	"testing"

	"github.com/intelligrit/geodis/internal/model"
)

// TestDetectAddingEntitiesFindsOrphanParentLabel pins spec §4.5: a parent
// location absent from the working set, but named by contiguous text
// tokens, becomes an "adding entity" even though it was never itself a
// candidate.
func TestDetectAddingEntitiesFindsOrphanParentLabel(t *testing.T) {
	dict := buildScenario5Dictionary(t)
	la := dict.Get("A020000000001")

	working := map[string]*model.ExtendedLocation{
		la.ID: extWith(la, "los angeles"),
	}

	tokens := tokenize("Los Angeles is a city in the United States of America.")
	adding, err := detectAddingEntities(dict, working, tokens)
	if err != nil {
		t.Fatalf("detectAddingEntities: %v", err)
	}
	if !adding["united states of america"] {
		t.Errorf("expected 'united states of america' to be detected as an adding entity, got %v", adding)
	}
}

func TestDetectAddingEntitiesRequiresContiguousMatch(t *testing.T) {
	dict := buildScenario5Dictionary(t)
	la := dict.Get("A020000000001")
	working := map[string]*model.ExtendedLocation{
		la.ID: extWith(la, "los angeles"),
	}

	// "United" ... "America" appear but not contiguously as "united states
	// of america", so it must not match.
	tokens := tokenize("United nations met to discuss America.")
	adding, err := detectAddingEntities(dict, working, tokens)
	if err != nil {
		t.Fatalf("detectAddingEntities: %v", err)
	}
	if adding["united states of america"] {
		t.Error("non-contiguous token occurrence must not count as an adding entity")
	}
}

func TestDetectAddingEntitiesNoOrphans(t *testing.T) {
	dict := buildScenario5Dictionary(t)
	usa := dict.Get("A020000000000")
	working := map[string]*model.ExtendedLocation{
		usa.ID: extWith(usa, "united states of america"),
	}
	tokens := tokenize("United States of America")
	adding, err := detectAddingEntities(dict, working, tokens)
	if err != nil {
		t.Fatalf("detectAddingEntities: %v", err)
	}
	if len(adding) != 0 {
		t.Errorf("a location with no orphan parents should add nothing, got %v", adding)
	}
}
