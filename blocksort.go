package blocksort

import "cmp"

// Sort stably sorts a by the strict weak ordering less applied to proj(a[i]).
// Beyond a small fixed-size cache it allocates only the index list of the
// unique values borrowed as internal buffers on large levels (O(sqrt n)
// ints), and runs in O(n log n) comparisons and moves for the large majority of
// inputs, degrading no worse than O(n log^2 n) on adversarially interleaved
// ones (see mergeInPlace in merge.go).
func Sort[T any, K any](a []T, proj func(T) K, less func(x, y K) bool) {
	SortRange(a, 0, len(a), proj, less)
}

// SortRange stably sorts a[start:end] in place, leaving the rest of a
// untouched.
func SortRange[T any, K any](a []T, start, end int, proj func(T) K, less func(x, y K) bool) {
	assert(start >= 0 && end <= len(a) && start <= end, "SortRange: invalid bounds")
	s := newSorter(a[start:end], proj, less)
	s.sort()
}

// SortOrdered stably sorts a slice of an ordered type with its natural
// order -- a convenience wrapper around Sort for the common case where
// there is no separate projection or custom comparator.
func SortOrdered[T cmp.Ordered](a []T) {
	Sort(a, func(v T) T { return v }, func(x, y T) bool { return x < y })
}
