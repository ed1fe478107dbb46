package blocksort

// CacheSize is the number of elements of scratch space the engine keeps on
// the stack. It is a tuning constant, not a correctness parameter: Block
// Sort is correct for any cache size >= 0, with 0 eliminating every
// cache-assisted fast path and leaving only the in-place merge strategies.
const CacheSize = 512

// sorter holds all of the mutable state touched by one call to Sort: the
// target slice, the projection/comparator pair, and the fixed-size cache
// used by the fast merge paths. Every merge and buffer-management phase of
// the engine is a method on *sorter so that they all share this state
// without threading it through every call individually -- the same shape as
// a hand-written recursive-descent engine, not an accidental one.
type sorter[T any, K any] struct {
	a     []T
	proj  func(T) K
	less  func(x, y K) bool
	cache [CacheSize]T
}

func newSorter[T any, K any](a []T, proj func(T) K, less func(x, y K) bool) *sorter[T, K] {
	return &sorter[T, K]{a: a, proj: proj, less: less}
}

// lt reports less(proj(a[i]), proj(a[j])).
func (s *sorter[T, K]) lt(i, j int) bool {
	return s.less(s.proj(s.a[i]), s.proj(s.a[j]))
}

// ltVal reports less(proj(v), proj(a[i])).
func (s *sorter[T, K]) ltVal(v T, i int) bool {
	return s.less(s.proj(v), s.proj(s.a[i]))
}

// valLt reports less(proj(a[i]), proj(v)).
func (s *sorter[T, K]) valLt(i int, v T) bool {
	return s.less(s.proj(s.a[i]), s.proj(v))
}

func (s *sorter[T, K]) swap(i, j int) {
	s.a[i], s.a[j] = s.a[j], s.a[i]
}

// assert panics with msg when cond is false. Its only caller is SortRange,
// which uses it to reject invalid bounds; the check is always on, and the
// merge and buffer code performs no internal consistency checks through it.
func assert(cond bool, msg string) {
	if !cond {
		panic("blocksort: invariant violated: " + msg)
	}
}
