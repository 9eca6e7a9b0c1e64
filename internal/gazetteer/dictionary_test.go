package gazetteer

import (
	"errors"
	"testing"

	"github.com/intelligrit/geodis/internal/model"
)

func TestDictionaryAddAndGetCaseInsensitive(t *testing.T) {
	d := New()
	loc, err := model.NewLocation(model.Location{
		ID:         "A200000000000",
		Name:       "United States of America",
		OtherNames: []string{"USA"},
	})
	if err != nil {
		t.Fatalf("building location: %v", err)
	}
	d.Add(loc)

	if got := d.Get("a200000000000"); got != loc {
		t.Error("Get should be case-insensitive on ID")
	}
	if got := d.GetByLabel("USA"); len(got) != 1 || got[0] != loc {
		t.Errorf("GetByLabel should be case-insensitive, got %v", got)
	}
	if d.Len() != 1 {
		t.Errorf("expected Len()==1, got %d", d.Len())
	}
}

func TestDictionaryGetByLabelManyToMany(t *testing.T) {
	d := New()
	a, _ := model.NewLocation(model.Location{ID: "A200000000001", Name: "Springfield"})
	b, _ := model.NewLocation(model.Location{ID: "A200000000002", Name: "Springfield"})
	d.Add(a)
	d.Add(b)

	got := d.GetByLabel("springfield")
	if len(got) != 2 {
		t.Fatalf("expected 2 locations sharing the label, got %d", len(got))
	}
}

func TestDictionaryRequireByIdMissing(t *testing.T) {
	d := New()
	_, err := d.RequireById("A200000000000")
	if err == nil {
		t.Fatal("expected an error for a missing ID")
	}
	var notFound *LocationNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("expected *LocationNotFoundError, got %T", err)
	}
}

func TestDictionaryAll(t *testing.T) {
	d := New()
	a, _ := model.NewLocation(model.Location{ID: "A200000000001", Name: "A"})
	b, _ := model.NewLocation(model.Location{ID: "A200000000002", Name: "B"})
	d.Add(a)
	d.Add(b)

	all := d.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(all))
	}
}
