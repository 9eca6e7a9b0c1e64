package model

// MoreProbable reports whether a is strictly more probable than b, per
// the §4.1/§4.7 rule: strictly greater score; on tie, the typed dominance
// order; on final tie, population (missing population compares smaller).
func MoreProbable(a, b *ExtendedLocation) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if d := dominance(a.Location.Type, b.Location.Type, a.Location, b.Location); d != 0 {
		return d > 0
	}
	return Population0(a.Location) > Population0(b.Location)
}

// dominance implements the §4.1 typed tie-break ladder. Returns >0 if a
// dominates b, <0 if b dominates a, 0 if the ladder doesn't distinguish
// them (population breaks the final tie in the caller).
//
//   BigCity > AdminArea1
//   {Country, AdminArea1, BigCity} > LittleCity
//   Country > {AdminArea1, Country}
//   among {Country, BigCity} vs {Country, BigCity}: larger population wins
//
// Pairs the rules above do not name fall back to the rank order Country >
// BigCity > AdminArea1 > LittleCity > any other type, so each of those four
// classes dominates a Continent, Region or AdminArea2; two locations of the
// same class return 0.
//
// "BigCity"/"LittleCity" distinguish cities by their SubType: a city whose
// SubType is "capital" or "big_city" counts as a BigCity, any other city
// (including an unspecified SubType) counts as a LittleCity.
func dominance(ta, tb Type, la, lb *Location) int {
	ca := classify(ta, la)
	cb := classify(tb, lb)

	rank := func(c tieClass) int {
		switch c {
		case classCountry:
			return 4
		case classBigCity:
			return 3
		case classAdminArea1:
			return 2
		case classLittleCity:
			return 1
		default:
			return 0
		}
	}

	ra, rb := rank(ca), rank(cb)

	switch {
	case ca == classBigCity && cb == classAdminArea1:
		return 1
	case cb == classBigCity && ca == classAdminArea1:
		return -1
	case ca == classLittleCity && (cb == classCountry || cb == classAdminArea1 || cb == classBigCity):
		return -1
	case cb == classLittleCity && (ca == classCountry || ca == classAdminArea1 || ca == classBigCity):
		return 1
	case ca == classCountry && cb == classAdminArea1:
		return 1
	case cb == classCountry && ca == classAdminArea1:
		return -1
	case (ca == classCountry && cb == classBigCity) || (cb == classCountry && ca == classBigCity):
		return 0
	}

	if ra != rb {
		if ra > rb {
			return 1
		}
		return -1
	}
	return 0
}

type tieClass int

const (
	classOther tieClass = iota
	classCountry
	classAdminArea1
	classBigCity
	classLittleCity
)

func classify(t Type, l *Location) tieClass {
	switch t {
	case Country:
		return classCountry
	case AdminArea1:
		return classAdminArea1
	case City:
		if l != nil && (l.SubType == "capital" || l.SubType == "big_city") {
			return classBigCity
		}
		return classLittleCity
	default:
		return classOther
	}
}
