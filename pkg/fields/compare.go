package fields

import (
	"sort"
	"strings"
)

// Comparison is the per-field result of comparing the application map against
// the findings map.
type Comparison struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	Match bool   `json:"match"`
}

// Compare reports, for every key in the union of both maps, whether the two
// values agree. Matching is whitespace-trimmed, case-insensitive equality;
// a key absent from one side compares as the empty string. Pure function, no
// I/O.
func Compare(left, right FieldMap) map[string]Comparison {
	result := make(map[string]Comparison, len(left)+len(right))
	for key := range left {
		result[key] = compareOne(left, right, key)
	}
	for key := range right {
		if _, done := result[key]; !done {
			result[key] = compareOne(left, right, key)
		}
	}
	return result
}

func compareOne(left, right FieldMap, key string) Comparison {
	lval := left.Get(key)
	rval := right.Get(key)
	return Comparison{
		Left:  lval,
		Right: rval,
		Match: strings.EqualFold(lval, rval),
	}
}

// OrderedKeys returns the comparison keys in a stable order: registry
// enumeration order first, then any keys unknown to the registry sorted
// alphabetically. Map iteration order is deliberately never exposed.
func OrderedKeys(result map[string]Comparison, reg *Registry) []string {
	known := make([]string, 0, len(result))
	extra := make([]string, 0)
	for key := range result {
		if reg != nil && reg.Has(key) {
			known = append(known, key)
			continue
		}
		extra = append(extra, key)
	}
	sort.Slice(known, func(i, j int) bool {
		return reg.Position(known[i]) < reg.Position(known[j])
	})
	sort.Strings(extra)
	return append(known, extra...)
}
