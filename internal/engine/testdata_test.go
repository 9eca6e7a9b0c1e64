package engine

import (
	"testing"

	"github.com/intelligrit/geodis/internal/gazetteer"
	"github.com/intelligrit/geodis/internal/model"
)

// mustLocation constructs and indexes a location into dict, failing the
// test on a malformed ID or loader error.
func mustLocation(t *testing.T, dict *gazetteer.Dictionary, id, name string, otherNames []string, population int) *model.Location {
	t.Helper()
	raw := model.Location{
		ID:         id,
		Name:       name,
		OtherNames: otherNames,
	}
	if population > 0 {
		raw.Population = &population
	}
	loc, err := model.NewLocation(raw)
	if err != nil {
		t.Fatalf("building location %s: %v", id, err)
	}
	dict.Add(loc)
	return loc
}

// buildScenario5Dictionary constructs the gazetteer fixture for spec.md
// §8 concrete scenario 5: the United States, three of its cities, and an
// unrelated English city sharing the "York" label.
func buildScenario5Dictionary(t *testing.T) *gazetteer.Dictionary {
	t.Helper()
	dict := gazetteer.New()

	mustLocation(t, dict, "A000000000000", "North America", nil, 0)
	mustLocation(t, dict, "A020000000000", "United States of America",
		[]string{"United States", "America", "USA"}, 0)
	mustLocation(t, dict, "A020000000001", "Los Angeles", nil, 3_900_000)
	mustLocation(t, dict, "A020000000002", "New York", nil, 8_400_000)
	mustLocation(t, dict, "A020000000003", "Philadelphia", nil, 1_500_000)

	mustLocation(t, dict, "1000000000000", "Europe", nil, 0)
	mustLocation(t, dict, "1020000000000", "United Kingdom", nil, 0)
	mustLocation(t, dict, "1020000000001", "York", nil, 210_000)

	return dict
}

func tokenize(s string) []string {
	var out []string
	word := ""
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			word += string(r)
			continue
		}
		if word != "" {
			out = append(out, word)
			word = ""
		}
	}
	if word != "" {
		out = append(out, word)
	}
	return out
}
