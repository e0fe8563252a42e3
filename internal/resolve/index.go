package resolve

import (
	"sort"
	"strings"
)

// minInputLen is the shortest normalized input the index will try to match.
// Anything shorter cannot reliably disambiguate between aliases.
const minInputLen = 3

// Match is a successful alias lookup. Alias is the specific catalog alias
// that matched; callers use it to locate where a trailing model name begins.
type Match struct {
	Canonical string
	Alias     string
}

type aliasEntry struct {
	canonical string
	alias     string
}

// AliasIndex is a flattened, normalized alias catalog built once at startup.
// Entries are sorted by alias length descending so that when one alias is a
// prefix of another ("open" vs "open ai") the longer, more specific alias is
// tried first.
type AliasIndex struct {
	entries []aliasEntry
}

// NewAliasIndex flattens aliases into an index. Every canonical key is
// included as an alias of itself; all aliases are normalized and
// deduplicated.
func NewAliasIndex(aliases map[string][]string) *AliasIndex {
	seen := make(map[string]bool)
	var entries []aliasEntry
	add := func(canonical, alias string) {
		norm := Normalize(alias)
		if norm == "" || seen[norm] {
			return
		}
		seen[norm] = true
		entries = append(entries, aliasEntry{canonical: canonical, alias: norm})
	}

	// Canonical keys in sorted order so the index is deterministic
	// regardless of map iteration.
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		add(k, k)
		for _, a := range aliases[k] {
			add(k, a)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if len(entries[i].alias) != len(entries[j].alias) {
			return len(entries[i].alias) > len(entries[j].alias)
		}
		return entries[i].alias < entries[j].alias
	})

	return &AliasIndex{entries: entries}
}

// Lookup matches free-text input against the index. A candidate alias
// accepts the input when it equals the normalized input exactly, when the
// input is a prefix of the alias (partially typed name), or when the input
// starts with the alias followed by a space (alias is a whole leading phrase
// and the rest is a model name or similar). The first acceptance in
// longest-alias-first order wins.
//
// The boolean result is false for inputs shorter than minInputLen after
// normalization and for inputs matching nothing; Lookup never fails any
// harder than that.
func (ix *AliasIndex) Lookup(input string) (Match, bool) {
	normalized := Normalize(input)
	if len(normalized) < minInputLen {
		return Match{}, false
	}
	for _, e := range ix.entries {
		if e.alias == normalized ||
			strings.HasPrefix(e.alias, normalized) ||
			strings.HasPrefix(normalized, e.alias+" ") {
			return Match{Canonical: e.canonical, Alias: e.alias}, true
		}
	}
	return Match{}, false
}

// LookupExact matches only on alias equality. Use-case resolution checks
// exact matches before falling back to Lookup's prefix rules.
func (ix *AliasIndex) LookupExact(input string) (Match, bool) {
	normalized := Normalize(input)
	for _, e := range ix.entries {
		if e.alias == normalized {
			return Match{Canonical: e.canonical, Alias: e.alias}, true
		}
	}
	return Match{}, false
}

// Canonicals returns the distinct canonical keys in the index, sorted.
func (ix *AliasIndex) Canonicals() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range ix.entries {
		if !seen[e.canonical] {
			seen[e.canonical] = true
			out = append(out, e.canonical)
		}
	}
	sort.Strings(out)
	return out
}
