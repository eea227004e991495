package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// GroupBy splits s into groups sharing the same key. Groups are returned in
// the order their key first appears, and elements keep their relative order.
func GroupBy[S ~[]E, E any, K comparable](s S, key func(E) K) [][]E {
	index := make(map[K]int)

	var groups [][]E

	for _, e := range s {
		k := key(e)

		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, nil)
		}

		groups[i] = append(groups[i], e)
	}

	return groups
}
