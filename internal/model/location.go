// Package model holds the disambiguation engine's core data types:
// Location (the immutable gazetteer record and its derived properties),
// CandidateEntity (a scored text mention), and ExtendedLocation (the
// mutable working record the engine scores and mutates in place).
package model

import (
	"sort"
	"strings"

	"github.com/intelligrit/geodis/internal/hierarchy"
)

// AdminDivision is one alternative administrative-division tuple attached
// to a Location (type, name, level).
type AdminDivision struct {
	Type  string
	Name  string
	Level int
}

// Location is an immutable gazetteer record plus its derived properties,
// computed once at construction time and cached (spec §9: derived-property
// caching). Labels still builds a fresh sorted slice on every call.
type Location struct {
	ID             string
	Name           string
	UNLOCODE       string
	CountryCode    string
	SubType        string
	Translations   map[string]string
	OtherNames     []string
	Demonym        string
	Lat, Lon       *float64
	Borders        []string
	IsCapital      bool
	AreaKm2        *int
	Population     *int
	Languages      []string
	AdminDivisions []AdminDivision

	// Derived, computed once in NewLocation.
	Type Type

	labels map[string]bool

	parentsIds []string

	isInsideContinent  bool
	isInsideRegion     bool
	isInsideCountry    bool
	isInsideAdminArea2 bool
	isInsideAdminArea1 bool

	continentId  string
	regionId     string
	countryId    string
	adminArea2Id string
	adminArea1Id string
}

// Type re-exports hierarchy.Type under the model package so callers don't
// need to import internal/hierarchy directly for the common case.
type Type = hierarchy.Type

const (
	Continent  = hierarchy.Continent
	Region     = hierarchy.Region
	Country    = hierarchy.Country
	AdminArea2 = hierarchy.AdminArea2
	AdminArea1 = hierarchy.AdminArea1
	City       = hierarchy.City
)

// NewLocation validates id and builds a Location with all derived
// properties computed. Returns a *hierarchy.MalformedIDError if id is not
// 13 uppercase hex digits.
func NewLocation(raw Location) (*Location, error) {
	if err := hierarchy.Validate(raw.ID); err != nil {
		return nil, err
	}
	loc := raw
	loc.ID = strings.ToUpper(loc.ID)
	loc.Type = hierarchy.TypeOf(loc.ID)

	loc.isInsideContinent = hierarchy.IsInsideContinent(loc.Type)
	loc.isInsideRegion = hierarchy.IsInsideRegion(loc.Type)
	loc.isInsideCountry = hierarchy.IsInsideCountry(loc.Type)
	loc.isInsideAdminArea2 = hierarchy.IsInsideAdminArea2(loc.Type, loc.ID)
	loc.isInsideAdminArea1 = hierarchy.IsInsideAdminArea1(loc.Type, loc.ID)

	loc.continentId = hierarchy.ContinentID(loc.Type, loc.ID)
	loc.regionId = hierarchy.RegionID(loc.Type, loc.ID)
	loc.countryId = hierarchy.CountryID(loc.Type, loc.ID)
	loc.adminArea2Id = hierarchy.AdminArea2ID(loc.Type, loc.ID)
	loc.adminArea1Id = hierarchy.AdminArea1ID(loc.Type, loc.ID)

	loc.parentsIds = hierarchy.ParentIDs(loc.Type, loc.ID)

	loc.labels = make(map[string]bool)
	loc.labels[strings.ToLower(loc.Name)] = true
	for _, v := range loc.Translations {
		if l := strings.ToLower(v); l != "" {
			loc.labels[l] = true
		}
	}
	for _, n := range loc.OtherNames {
		if l := strings.ToLower(n); l != "" {
			loc.labels[l] = true
		}
	}

	return &loc, nil
}

// Labels returns the sorted set of lower-cased strings this location may
// be matched under.
func (l *Location) Labels() []string {
	out := make([]string, 0, len(l.labels))
	for k := range l.labels {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// HasLabel reports whether label (already lower-cased) names this location.
func (l *Location) HasLabel(label string) bool {
	return l.labels[label]
}

// ParentsIds is the ordered list of containing-location IDs up to the
// continent, nearest level first, excluding the region.
func (l *Location) ParentsIds() []string { return l.parentsIds }

func (l *Location) IsInsideContinent() bool  { return l.isInsideContinent }
func (l *Location) IsInsideRegion() bool     { return l.isInsideRegion }
func (l *Location) IsInsideCountry() bool    { return l.isInsideCountry }
func (l *Location) IsInsideAdminArea2() bool { return l.isInsideAdminArea2 }
func (l *Location) IsInsideAdminArea1() bool { return l.isInsideAdminArea1 }

func (l *Location) ContinentId() string  { return l.continentId }
func (l *Location) RegionId() string     { return l.regionId }
func (l *Location) CountryId() string    { return l.countryId }
func (l *Location) AdminArea2Id() string { return l.adminArea2Id }
func (l *Location) AdminArea1Id() string { return l.adminArea1Id }

// IsCountry reports whether this location is itself a country.
func (l *Location) IsCountry() bool { return l.Type == Country }

// Population0 returns the population, treating a missing value as smaller
// than any present value — used by the §4.1 tie-break dominance order.
func Population0(l *Location) int {
	if l == nil || l.Population == nil {
		return -1
	}
	return *l.Population
}
