package versions

import (
	"sort"
	"strings"
)

// Base is the release identifier of a path: the text after its last "/".
func Base(p string) string {
	return p[strings.LastIndex(p, "/")+1:]
}

// SortPaths returns the paths ordered by the release number in their last
// segment. Paths with equal release numbers keep their input order.
func SortPaths(paths []string) []string {
	return SortFunc(paths, func(p string) string { return p })
}

// SortFunc returns items ordered by the release number in the last segment of
// path(item). The sort is stable and items is left untouched.
func SortFunc[T any](items []T, path func(T) string) []T {
	keyed := make([]keyedItem[T], len(items))
	for i, item := range items {
		keyed[i] = keyedItem[T]{key: Normalize(Base(path(item))), item: item}
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].key.Less(keyed[j].key)
	})

	sorted := make([]T, len(keyed))
	for i := range keyed {
		sorted[i] = keyed[i].item
	}

	return sorted
}

type keyedItem[T any] struct {
	key  Key
	item T
}
