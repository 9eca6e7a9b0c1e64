// Package gazetteer provides the in-memory location dictionary the
// disambiguation engine queries read-only: a by-ID index and a
// by-label index, built once by a loader and consulted many times per
// engine run. Building the dictionary from source data is treated as an
// external concern (see load.go) — only the query surface in this file is
// part of the specified engine contract.
package gazetteer

import (
	"fmt"
	"strings"

	"github.com/intelligrit/geodis/internal/model"
)

// LocationNotFoundError indicates RequireById was called with an ID the
// dictionary does not contain — a corrupt-dictionary condition, since
// every parentsIds reference is expected to resolve.
type LocationNotFoundError struct {
	ID string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("location not found: %s", e.ID)
}

// Dictionary is the gazetteer's read-only query surface: locations indexed
// by uppercase ID (unique) and by lower-cased label (many-to-many).
type Dictionary struct {
	byID    map[string]*model.Location
	byLabel map[string][]*model.Location
}

// New returns an empty Dictionary. Use Add (or a loader in this package)
// to populate it before querying.
func New() *Dictionary {
	return &Dictionary{
		byID:    make(map[string]*model.Location),
		byLabel: make(map[string][]*model.Location),
	}
}

// Add indexes loc by ID and by every one of its labels. Callers are
// responsible for any source-level filtering (e.g. excluding hamlets and
// villages) before calling Add — the dictionary itself never filters.
func (d *Dictionary) Add(loc *model.Location) {
	d.byID[loc.ID] = loc
	for _, label := range loc.Labels() {
		d.byLabel[label] = append(d.byLabel[label], loc)
	}
}

// Get returns the location with the given ID, case-insensitive on input,
// or nil if absent.
func (d *Dictionary) Get(id string) *model.Location {
	return d.byID[strings.ToUpper(id)]
}

// GetByLabel returns every location matching label (case-insensitive), or
// nil if there is no match.
func (d *Dictionary) GetByLabel(label string) []*model.Location {
	return d.byLabel[strings.ToLower(label)]
}

// RequireById returns the location with the given ID, or a
// *LocationNotFoundError if absent. Used only where presence is a
// dictionary invariant — e.g. walking a location's ParentsIds.
func (d *Dictionary) RequireById(id string) (*model.Location, error) {
	loc := d.Get(id)
	if loc == nil {
		return nil, &LocationNotFoundError{ID: id}
	}
	return loc, nil
}

// Len returns the number of distinct locations in the dictionary.
func (d *Dictionary) Len() int { return len(d.byID) }

// All returns every location in the dictionary, in unspecified order.
func (d *Dictionary) All() []*model.Location {
	out := make([]*model.Location, 0, len(d.byID))
	for _, loc := range d.byID {
		out = append(out, loc)
	}
	return out
}
