package gazetteer

import (
	"strings"
	"testing"
)

func TestLoadSkipsExcludedSubTypesAndNullNames(t *testing.T) {
	src := strings.Join([]string{
		`{"id":"A200000000000","name":"United States of America","subType":"country"}`,
		`{"id":"A200000000001","name":"Los Angeles","subType":"city"}`,
		`{"id":"A200000000002","name":null,"subType":"city"}`,
		`{"id":"A200000000003","name":"Tiny Hamlet","subType":"hamlet"}`,
		`{"id":"A200000000004","name":"Tiny Village","subType":"village"}`,
	}, "\n")

	d, warnings := Load(strings.NewReader(src))
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 locations (country + city), got %d", d.Len())
	}
	if d.Get("A200000000002") != nil {
		t.Error("null-name record should be dropped")
	}
	if d.Get("A200000000003") != nil {
		t.Error("hamlet should be excluded")
	}
	if d.Get("A200000000004") != nil {
		t.Error("village should be excluded")
	}
}

func TestLoadCollectsWarningsForMalformedLines(t *testing.T) {
	src := strings.Join([]string{
		`{"id":"A200000000000","name":"Valid"}`,
		`not json at all`,
		`{"id":"bad-id","name":"Malformed ID"}`,
	}, "\n")

	d, warnings := Load(strings.NewReader(src))
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings (bad json line + malformed id), got %d: %v", len(warnings), warnings)
	}
	if d.Len() != 1 {
		t.Fatalf("expected the one valid record to load, got %d", d.Len())
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	src := "\n\n" + `{"id":"A200000000000","name":"Valid"}` + "\n\n"
	d, warnings := Load(strings.NewReader(src))
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if d.Len() != 1 {
		t.Fatalf("expected 1 location, got %d", d.Len())
	}
}
