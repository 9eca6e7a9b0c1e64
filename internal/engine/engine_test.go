package engine

import (
	"testing"

	"github.com/intelligrit/geodis/internal/model"
)

// TestFindLocationsScenario5 pins spec.md §8's concrete walkthrough: a
// sentence naming the United States and three of its cities, where "York"
// is a distractor that must lose to "New York", and "rate" must not match
// anything at all.
func TestFindLocationsScenario5(t *testing.T) {
	dict := buildScenario5Dictionary(t)

	text := "The crime rate is very high in the following cities of the " +
		"United States of America: Los Angeles, New York and Philadelphia."
	tokens := tokenize(text)

	candidates := []model.CandidateEntity{
		{Name: "United States of America", Score: 0.9},
		{Name: "United States", Score: 0.6},
		{Name: "America", Score: 0.3},
		{Name: "Los Angeles", Score: 0.8},
		{Name: "New York", Score: 0.85},
		{Name: "York", Score: 0.4},
		{Name: "Philadelphia", Score: 0.7},
		{Name: "rate", Score: 0.2},
	}

	coordinateGroups := []model.CoordinateGroup{
		{"Los Angeles", "New York", "Philadelphia"},
	}
	ambiguityGroups := []model.AmbiguityGroup{
		{"united states of america", "united states", "america"},
		{"new york", "york"},
	}

	results, stats, err := FindLocations(dict, tokens, candidates, coordinateGroups, ambiguityGroups)
	if err != nil {
		t.Fatalf("FindLocations: %v", err)
	}
	if stats == nil {
		t.Fatal("expected non-nil stats")
	}

	byID := make(map[string]*model.ExtendedLocation, len(results))
	for _, r := range results {
		byID[r.Location.ID] = r
	}

	wantIDs := []string{
		"A020000000000", // United States of America
		"A020000000001", // Los Angeles
		"A020000000002", // New York
		"A020000000003", // Philadelphia
	}
	for _, id := range wantIDs {
		if _, ok := byID[id]; !ok {
			t.Errorf("expected location %s among results, got %d results", id, len(results))
		}
	}
	if len(results) != len(wantIDs) {
		t.Errorf("expected exactly %d results, got %d: %v", len(wantIDs), len(results), keysOf(byID))
	}

	if york, ok := byID["1020000000001"]; ok {
		t.Errorf("England's York must not survive ambiguity resolution, got %+v", york)
	}

	for _, r := range results {
		for name := range r.EntityNames() {
			if name == "rate" {
				t.Errorf("location %s must not be matched by 'rate'", r.Location.ID)
			}
		}
	}

	var sum float64
	for _, r := range results {
		sum += r.Score
		if r.Confidence < 0 || r.Confidence > 1 {
			t.Errorf("confidence out of range for %s: %v", r.Location.ID, r.Confidence)
		}
	}
	if sum < 0.99 || sum > 1.01 {
		t.Errorf("expected normalized scores to sum to ~1, got %v", sum)
	}

	for i := 1; i < len(results); i++ {
		if model.MoreProbable(results[i], results[i-1]) {
			t.Errorf("results not sorted by descending probability at index %d", i)
		}
	}
}

// TestFindLocationsNoCandidates pins the §5/§6 zero-candidate contract: no
// error, nil results, nil stats.
func TestFindLocationsNoCandidates(t *testing.T) {
	dict := buildScenario5Dictionary(t)
	results, stats, err := FindLocations(dict, nil, nil, nil, nil)
	if err != nil || results != nil || stats != nil {
		t.Fatalf("expected (nil, nil, nil), got (%v, %v, %v)", results, stats, err)
	}
}

func keysOf(m map[string]*model.ExtendedLocation) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
