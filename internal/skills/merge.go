package skills

import (
	"sort"
	"strings"
)

// Merge collapses records that share a name (case-insensitively) into one.
// The first record seen for a name stays canonical for every field except
// membership; later duplicates only contribute their EnabledFor entries,
// appended in encounter order without repeats. Output is sorted by name.
func Merge(records []Record) []Record {
	index := map[string]int{}
	merged := make([]Record, 0, len(records))

	for _, rec := range records {
		key := strings.ToLower(rec.Name)
		i, seen := index[key]
		if !seen {
			index[key] = len(merged)
			merged = append(merged, rec)
			continue
		}
		for _, toolID := range rec.EnabledFor {
			if !contains(merged[i].EnabledFor, toolID) {
				merged[i].EnabledFor = append(merged[i].EnabledFor, toolID)
			}
		}
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].Name < merged[j].Name })
	return merged
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
