// Package tokenizer splits free-text cell content into skill tokens and
// consolidates them into a deduplicated, case-insensitively sorted list.
package tokenizer

import (
	"sort"
	"strings"
)

// Flatten splits each value on commas and newlines, trims surrounding
// whitespace, and drops empty pieces. Order of surviving pieces follows
// the input left to right.
func Flatten(values []string) []string {
	var tokens []string
	for _, val := range values {
		val = strings.ReplaceAll(val, "\n", ",")
		for _, part := range strings.Split(val, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				tokens = append(tokens, part)
			}
		}
	}
	return tokens
}

// Consolidate deduplicates tokens case-insensitively and sorts them
// ascending by their lower-cased form. The casing kept for each entry is
// the first one encountered in the input, which makes the result stable
// across runs for the same input.
func Consolidate(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	var unique []string
	for _, tok := range tokens {
		key := strings.ToLower(tok)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, tok)
	}
	sort.Slice(unique, func(i, j int) bool {
		return strings.ToLower(unique[i]) < strings.ToLower(unique[j])
	})
	return unique
}

// KnownSet is a membership-only set of tokens keyed case-insensitively.
type KnownSet map[string]struct{}

// NewKnownSet builds a KnownSet from raw tokens.
func NewKnownSet(tokens []string) KnownSet {
	set := make(KnownSet, len(tokens))
	for _, tok := range tokens {
		set[strings.ToLower(tok)] = struct{}{}
	}
	return set
}

// Contains reports whether token is in the set, ignoring case.
func (s KnownSet) Contains(token string) bool {
	_, ok := s[strings.ToLower(token)]
	return ok
}

// Len returns the number of distinct tokens in the set.
func (s KnownSet) Len() int {
	return len(s)
}
