// Package blocksort implements Block Sort (WikiSort): a stable, in-place,
// comparison-based sort that runs in O(N log N) comparisons and moves in the
// common case, using a fixed-size cache plus an index list of O(sqrt N) ints
// on levels that borrow internal buffers, and never worse
// than O(N log^2 N) even on adversarially interleaved input (see
// mergeInPlace's comment in merge.go for where that extra log factor comes
// from and why it replaces the classical algorithm's tighter bound).
//
// The sort is driven entirely by a caller-supplied strict weak ordering and
// a projection from element to comparison key:
//
//	blocksort.Sort(people, func(p Person) string { return p.Name }, func(a, b string) bool { return a < b })
//
// For the common case of sorting comparable values in ascending order with
// an identity projection, use SortOrdered instead:
//
//	blocksort.SortOrdered(numbers)
//
// Unlike an ordinary mergesort, Block Sort never allocates a buffer
// proportional to N. On levels whose run length L is at least CacheSize it
// borrows unique values already present in the input -- up to L/isqrt(L)+1
// of them as buffer1, and as many again as buffer2 only once isqrt(L)
// exceeds CacheSize -- then scatters the borrowed values back to their
// sorted position before moving to the next merge level. buffer2 serves as
// swap space for MergeInternal; buffer1 is only set aside and is not used
// to tag or roll A-blocks: merges run through the cache and a recursive
// rotation merge instead. See the package-level Sort for
// details on the external contract, and Iterator for the bookkeeping that
// makes bottom-up merging work for any N, not just powers of two.
package blocksort
