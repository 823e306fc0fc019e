// Package normalize canonicalizes free-text attribute values into merge
// keys. Storage-time identity is the trimmed original casing: dedup is
// exact-match on the stored string, so two differently-cased spellings of
// one skill are two nodes. Query-time comparison is case-insensitive.
// The asymmetry mirrors the source system and is intentional.
package normalize

import "strings"

// Clean trims surrounding whitespace. An empty result means "no value"
// and callers must skip node/edge creation for it.
func Clean(text string) string {
	return strings.TrimSpace(text)
}

// CleanList trims every entry, drops empties, and de-duplicates exact
// strings while preserving first-seen order.
func CleanList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))

	for _, v := range values {
		v = Clean(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// SplitSkills expands stored resume skill values into individual skill
// tokens. A single stored value may itself be a comma-joined list (a
// quirk of how resume skills are persisted, kept for compatibility).
// Tokens are trimmed, empties dropped, exact duplicates removed.
func SplitSkills(values []string) []string {
	tokens := make([]string, 0, len(values))
	for _, v := range values {
		tokens = append(tokens, strings.Split(v, ",")...)
	}
	return CleanList(tokens)
}

// FoldSet lower-cases tokens for case-insensitive comparison, dropping
// duplicates that only differ by case.
func FoldSet(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))

	for _, t := range tokens {
		t = strings.ToLower(t)
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}
