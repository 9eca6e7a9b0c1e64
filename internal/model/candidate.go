package model

import "strings"

// CandidateEntity is an already-extracted text mention with a semantic
// confidence score. Equality and hashing are defined over NormName.
type CandidateEntity struct {
	Name  string
	Score float64
}

// NormName is the lower-cased, trimmed form of Name used for equality,
// hashing, and gazetteer lookups. Idempotent: NormName(NormName(x)) ==
// NormName(x).
func (c CandidateEntity) NormName() string {
	return NormalizeName(c.Name)
}

// NormalizeName lower-cases and trims a raw mention string. Idempotent.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CoordinateGroup is a caller-supplied grouping of entity names
// indicating textual coordination (e.g. "A, B and C"), used to amplify
// sibling boosts. The engine normalizes each member before use.
type CoordinateGroup []string

// AmbiguityGroup is an ordered list of already-normalized, competing
// mention names from which at most one entity survives ambiguity
// resolution. Order is semantic: the first surviving entity wins.
type AmbiguityGroup []string
