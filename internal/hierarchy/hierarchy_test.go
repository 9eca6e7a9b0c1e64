package hierarchy

import "testing"

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want Type
	}{
		{"washington city", "51180C026000A", City},
		{"shoreditch city no adminarea1", "1308020000001", City},
		{"sao tome adminarea1", "2222000010000", AdminArea1},
		{"europe continent", "1000000000000", Continent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeOf(tt.id); got != tt.want {
				t.Errorf("TypeOf(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestWashingtonDerivedIDs(t *testing.T) {
	id := "51180C026000A"
	ty := TypeOf(id)
	if got := AdminArea1ID(ty, id); got != "51180C0260000" {
		t.Errorf("AdminArea1ID = %q, want 51180C0260000", got)
	}
	if got := AdminArea2ID(ty, id); got != "51180C0000000" {
		t.Errorf("AdminArea2ID = %q, want 51180C0000000", got)
	}
	if got := CountryID(ty, id); got != "5118000000000" {
		t.Errorf("CountryID = %q, want 5118000000000", got)
	}
	if got := RegionID(ty, id); got != "0100000000000" {
		t.Errorf("RegionID = %q, want 0100000000000", got)
	}
	if got := ContinentID(ty, id); got != "5000000000000" {
		t.Errorf("ContinentID = %q, want 5000000000000", got)
	}
	if !IsInsideContinent(ty) || !IsInsideRegion(ty) || !IsInsideCountry(ty) ||
		!IsInsideAdminArea2(ty, id) || !IsInsideAdminArea1(ty, id) {
		t.Error("expected all isInside* flags true for Washington")
	}
}

func TestShoreditchIncompleteHierarchy(t *testing.T) {
	id := "1308020000001"
	ty := TypeOf(id)
	if got := AdminArea1ID(ty, id); got != "" {
		t.Errorf("AdminArea1ID = %q, want empty (no admin area 1)", got)
	}
	if got := AdminArea2ID(ty, id); got != "1308020000000" {
		t.Errorf("AdminArea2ID = %q, want 1308020000000", got)
	}
	if got := CountryID(ty, id); got != "1308000000000" {
		t.Errorf("CountryID = %q, want 1308000000000", got)
	}
	if IsInsideAdminArea1(ty, id) {
		t.Error("expected isInsideAdminArea1 = false")
	}
	if !IsInsideAdminArea2(ty, id) {
		t.Error("expected isInsideAdminArea2 = true")
	}
	if !IsInsideCountry(ty) {
		t.Error("expected isInsideCountry = true")
	}
}

func TestSaoTomeAdminArea1NoSubLevels(t *testing.T) {
	id := "2222000010000"
	ty := TypeOf(id)
	if ty != AdminArea1 {
		t.Fatalf("TypeOf = %v, want AdminArea1", ty)
	}
	if got := AdminArea1ID(ty, id); got != "" {
		t.Errorf("AdminArea1ID = %q, want empty", got)
	}
	if got := AdminArea2ID(ty, id); got != "" {
		t.Errorf("AdminArea2ID = %q, want empty", got)
	}
	if got := CountryID(ty, id); got != "2222000000000" {
		t.Errorf("CountryID = %q, want 2222000000000", got)
	}
	if IsInsideAdminArea2(ty, id) {
		t.Error("expected isInsideAdminArea2 = false")
	}
	if !IsInsideCountry(ty) {
		t.Error("expected isInsideCountry = true")
	}
}

func TestEuropeContinent(t *testing.T) {
	id := "1000000000000"
	ty := TypeOf(id)
	if ty != Continent {
		t.Fatalf("TypeOf = %v, want Continent", ty)
	}
	if IsInsideContinent(ty) || IsInsideRegion(ty) || IsInsideCountry(ty) ||
		IsInsideAdminArea2(ty, id) || IsInsideAdminArea1(ty, id) {
		t.Error("expected all isInside* flags false for a continent")
	}
	if ContinentID(ty, id) != "" || RegionID(ty, id) != "" || CountryID(ty, id) != "" {
		t.Error("expected all parent ids empty for a continent")
	}
}

func TestParentIDsExcludesRegion(t *testing.T) {
	id := "51180C026000A"
	ty := TypeOf(id)
	got := ParentIDs(ty, id)
	want := []string{"51180C0260000", "51180C0000000", "5118000000000", "5000000000000"}
	if len(got) != len(want) {
		t.Fatalf("ParentIDs length = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParentIDs[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParentIDsClosureIsSuffix(t *testing.T) {
	// Law: parentsIds(parentsIds(L)[i]) is a suffix of parentsIds(L).
	id := "51180C026000A"
	ty := TypeOf(id)
	parents := ParentIDs(ty, id)
	for i, pid := range parents {
		pty := TypeOf(pid)
		grandparents := ParentIDs(pty, pid)
		rest := parents[i+1:]
		if len(grandparents) != len(rest) {
			t.Fatalf("ParentIDs(%q) length = %d, want suffix of length %d", pid, len(grandparents), len(rest))
		}
		for j := range rest {
			if grandparents[j] != rest[j] {
				t.Errorf("ParentIDs(%q)[%d] = %q, want %q", pid, j, grandparents[j], rest[j])
			}
		}
	}
}

func TestMalformedID(t *testing.T) {
	if err := Validate("abc"); err == nil {
		t.Error("expected error for too-short id")
	}
	if err := Validate("51180c026000A"); err == nil {
		t.Error("expected error for lowercase hex digit")
	}
	if err := Validate("51180G026000A"); err == nil {
		t.Error("expected error for non-hex digit")
	}
}
