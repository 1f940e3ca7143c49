package names

import (
	"sort"
	"strings"
)

// UniqueNames flattens per-episode contertulio lists into a sorted census
// of distinct trimmed names.
func UniqueNames(lists [][]string) []string {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, name := range list {
			name = strings.TrimSpace(name)
			if name != "" {
				set[name] = struct{}{}
			}
		}
	}
	uniques := make([]string, 0, len(set))
	for name := range set {
		uniques = append(uniques, name)
	}
	sort.Strings(uniques)
	return uniques
}
