package engine

import (
	"fmt"
	"strings"

	"github.com/intelligrit/geodis/internal/gazetteer"
	"github.com/intelligrit/geodis/internal/model"
)

// detectAddingEntities implements spec §4.5: parent IDs referenced by the
// working set but not themselves present as extended locations are
// "orphan parents." The union of their labels is intersected against the
// text, keeping only labels whose tokens occur as a contiguous
// sub-sequence of the lower-cased token list — an ordered phrase match on
// token boundaries, not a substring match.
func detectAddingEntities(dict *gazetteer.Dictionary, working map[string]*model.ExtendedLocation, tokens []string) (map[string]bool, error) {
	orphanIDs := orphanParentIDs(working)

	labelSet := make(map[string]bool)
	for id := range orphanIDs {
		loc, err := dict.RequireById(id)
		if err != nil {
			return nil, fmt.Errorf("resolving orphan parent: %w", err)
		}
		for _, label := range loc.Labels() {
			labelSet[label] = true
		}
	}

	lowerTokens := make([]string, len(tokens))
	tokenHashes := make([]uint64, len(tokens))
	for i, t := range tokens {
		lowerTokens[i] = strings.ToLower(t)
		tokenHashes[i] = hashToken(lowerTokens[i])
	}

	adding := make(map[string]bool)
	for label := range labelSet {
		words := strings.Fields(label)
		if len(words) == 0 {
			continue
		}
		if containsContiguous(lowerTokens, tokenHashes, words) {
			adding[label] = true
		}
	}
	return adding, nil
}

// orphanParentIDs returns every parent ID referenced via ParentsIds() by a
// location currently in the working set that is not itself a key of that
// set.
func orphanParentIDs(working map[string]*model.ExtendedLocation) map[string]bool {
	orphans := make(map[string]bool)
	for _, ext := range working {
		for _, pid := range ext.Location.ParentsIds() {
			if _, ok := working[pid]; !ok {
				orphans[pid] = true
			}
		}
	}
	return orphans
}

// containsContiguous reports whether words occurs as a contiguous
// sub-sequence of tokens, comparing a cheap hash first and the literal
// string second to rule out hash collisions.
func containsContiguous(tokens []string, tokenHashes []uint64, words []string) bool {
	wordHashes := make([]uint64, len(words))
	for i, w := range words {
		wordHashes[i] = hashToken(w)
	}

	n, m := len(tokens), len(words)
	for start := 0; start+m <= n; start++ {
		match := true
		for j := 0; j < m; j++ {
			if tokenHashes[start+j] != wordHashes[j] || tokens[start+j] != words[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// hashToken is a simple FNV-1a hash used only to cheaply reject
// non-matches before falling back to a literal string comparison.
func hashToken(s string) uint64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}
