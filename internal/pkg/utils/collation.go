package utils

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// The directory sorts names under Spanish collation so accented characters
// land next to their unaccented counterparts. collate.Collator is not safe
// for concurrent use, hence the mutex.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Spanish, collate.Loose)
)

// CompareCollated compares two strings case- and accent-insensitively under
// Spanish collation rules. Returns -1, 0 or 1.
func CompareCollated(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// UniqueSorted drops blank entries, de-duplicates case- and
// accent-insensitively (first spelling wins) and sorts the survivors under
// locale collation. Used to populate the filter-option lists.
func UniqueSorted(items []string) []string {
	seen := make(map[string]bool, len(items))
	unique := []string{}
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		key := NormalizeForSearch(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, item)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return CompareCollated(unique[i], unique[j]) < 0
	})
	return unique
}
