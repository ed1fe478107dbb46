package blocksort

// baseLevel is the minimum nominal run length the bottom-up merge starts
// from: the iterator yields level-0 runs of 4-8 elements (or the whole
// array when it has fewer than 4), each sorted directly by
// tinySort/networkSort rather than merged.
const baseLevel = 4

// sort drives the whole algorithm over [0, len(s.a)): break the array into
// baseLevel runs and sort each with the small-size networks, then
// repeatedly double the run length, merging adjacent pairs at each level,
// until one level spans the whole array.
func (s *sorter[T, K]) sort() {
	n := len(s.a)
	if n < 2 {
		return
	}

	it := NewIterator(n, baseLevel)
	for !it.Finished() {
		s.networkSort(it.NextRange())
	}
	if it.Length() >= n {
		return // the whole array was one base run; already sorted.
	}

	for {
		s.mergeLevel(it)
		if !it.NextLevel() {
			break
		}
	}
}

// mergeLevel merges every adjacent (A, B) pair at the iterator's current
// level. Levels shorter than CacheSize merge directly; at or above it,
// merging borrows up to two internal buffers for the whole level (spec.md's
// block sort) rather than allocating anything proportional to n.
func (s *sorter[T, K]) mergeLevel(it *Iterator) {
	length := it.Length()

	if length < CacheSize {
		it.Begin()
		for !it.Finished() {
			A := it.NextRange()
			if it.Finished() {
				break // odd run left over at the end of the array: already sorted, nothing to pair it with.
			}
			B := it.NextRange()
			s.mergePairFast(A, B)
		}
		return
	}

	lb := s.extractLevelBuffers(it, length)
	it.Begin()
	for !it.Finished() {
		A := it.NextRange()
		if it.Finished() {
			break
		}
		B := it.NextRange()
		A, B = s.stripBuffers(A, B, lb)
		s.mergePairSlow(A, B, &lb)
	}
	s.restoreLevelBuffers(lb)
}

// mergePairFast merges one (A, B) pair below the cache threshold, with the
// early-outs spec.md calls for: already interleaved in order needs no work,
// and a fully reversed pair is a single rotation. Otherwise it merges
// through the cache, either in one shot (mergeInto, when both ranges
// together fit) or via mergeExternal (when only A does).
func (s *sorter[T, K]) mergePairFast(A, B Range) {
	if A.Length() == 0 || B.Length() == 0 {
		return
	}
	if !s.lt(B.Start, A.End-1) {
		return // A's last element is already <= B's first: nothing to do.
	}
	if s.lt(B.End-1, A.Start) {
		s.rotate(A.Length(), NewRange(A.Start, B.End))
		return
	}

	total := A.Length() + B.Length()
	if total <= CacheSize {
		s.mergeInto(A, B, s.cache[:total])
		copy(s.a[A.Start:B.End], s.cache[:total])
		return
	}
	copy(s.cache[:A.Length()], s.a[A.Start:A.End])
	s.mergeExternal(A, B)
}

// mergePairSlow merges one (A, B) pair at or above the cache threshold. The
// same early-outs as the fast path apply; otherwise the pair is handed to
// mergeInPlace, which picks MergeExternal, MergeInternal (against the
// level's borrowed buffer2, when it's large enough), or recursive rotation
// as each narrowed sub-range allows -- see mergeInPlace's own comment for why
// that recursive narrowing, not a single linear scan, is what keeps this
// bounded for every pair at this level, not just ones a buffer happens to
// cover outright.
func (s *sorter[T, K]) mergePairSlow(A, B Range, lb *levelBuffers) {
	if A.Length() == 0 || B.Length() == 0 {
		return
	}
	if !s.lt(B.Start, A.End-1) {
		return
	}
	if s.lt(B.End-1, A.Start) {
		s.rotate(A.Length(), NewRange(A.Start, B.End))
		return
	}
	s.mergeInPlace(A, B, lb)
}
