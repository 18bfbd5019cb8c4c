package ratings

import "sort"

// SortByScore orders items so that everything with a primary score comes
// before everything without one, scored items descending.  The sort is
// stable: ties and the unscored tail keep their input order, so a sequence
// that arrived in recency order stays recency-ordered within each band.
func SortByScore[T any](items []T, primary func(T) *float64) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := primary(items[i]), primary(items[j])
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a > *b
	})
}
