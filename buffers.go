package blocksort

// pull records one internal-buffer extraction: count unique values were
// found within rng and gathered into a contiguous run at the front (for
// buffer1, pulled from an A range) or back (for buffer2, pulled from a B
// range) of rng. Restore inverts this by merging the gathered run back into
// the now-sorted remainder of rng.
type pull struct {
	rng   Range
	count int
	front bool
}

func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// findUniqueForward scans rng left to right, collecting up to count indices
// whose values strictly increase. Since rng is sorted, equal values are
// always adjacent, so a strictly increasing chain of picks is exactly a set
// of distinct values -- the "unique value" probe spec.md describes.
func (s *sorter[T, K]) findUniqueForward(rng Range, count int) []int {
	if rng.Length() == 0 || count == 0 {
		return nil
	}
	idx := make([]int, 1, count)
	idx[0] = rng.Start
	last := rng.Start
	for i := rng.Start + 1; i < rng.End && len(idx) < count; i++ {
		if s.lt(last, i) {
			idx = append(idx, i)
			last = i
		}
	}
	return idx
}

// findUniqueBackward scans rng right to left, collecting up to count
// indices of distinct values, returned in ascending (left-to-right) order.
func (s *sorter[T, K]) findUniqueBackward(rng Range, count int) []int {
	if rng.Length() == 0 || count == 0 {
		return nil
	}
	idx := make([]int, 1, count)
	idx[0] = rng.End - 1
	last := rng.End - 1
	for i := rng.End - 2; i >= rng.Start && len(idx) < count; i-- {
		if s.lt(i, last) {
			idx = append(idx, i)
			last = i
		}
	}
	for l, r := 0, len(idx)-1; l < r; l, r = l+1, r-1 {
		idx[l], idx[r] = idx[r], idx[l]
	}
	return idx
}

// pullToFront gathers the elements at the ascending positions idx into a
// contiguous prefix of rng, preserving the relative order of every other
// element of rng -- a sequence of single-element rotations, each moving one
// found value to the next free buffer slot.
func (s *sorter[T, K]) pullToFront(rng Range, idx []int) pull {
	insert := rng.Start
	for _, at := range idx {
		if at > insert {
			s.rotate(at-insert, NewRange(insert, at+1))
		}
		insert++
	}
	return pull{rng: rng, count: len(idx), front: true}
}

// pullToBack gathers the elements at idx into a contiguous suffix of rng.
func (s *sorter[T, K]) pullToBack(rng Range, idx []int) pull {
	insert := rng.End - 1
	for i := len(idx) - 1; i >= 0; i-- {
		at := idx[i]
		if at < insert {
			s.rotate(1, NewRange(at, insert+1))
		}
		insert--
	}
	return pull{rng: rng, count: len(idx), front: false}
}

// bufferRange returns the contiguous slots a pull gathered its values into.
func (p pull) bufferRange() Range {
	if p.count == 0 {
		return NewRange(p.rng.Start, p.rng.Start)
	}
	if p.front {
		return NewRange(p.rng.Start, p.rng.Start+p.count)
	}
	return NewRange(p.rng.End-p.count, p.rng.End)
}

// restore merges a pull's gathered values back into the remainder of its
// origin range, which by the time Restore runs is already fully sorted
// (every other pair at this level, and this pair's own stripped remainder,
// has already been merged). The buffer sits immediately adjacent to that
// remainder by construction, so this is a direct MergeInPlace -- the
// "inverse of the extraction" spec.md describes, expressed via the same
// rotation-based primitive the rest of the engine already uses.
func (s *sorter[T, K]) restore(p pull, remainder Range) {
	if p.count == 0 {
		return
	}
	buf := p.bufferRange()
	if p.front {
		s.mergeInPlace(buf, remainder, nil)
	} else {
		s.mergeInPlace(remainder, buf, nil)
	}
}

// insertionSort stably sorts r with adjacent swaps. Used to re-sort
// buffer2, which (unlike buffer1) may have had its contents permuted by
// MergeInternal -- it always arrives nearly sorted in practice, which is
// the spec's own stated reason for choosing insertion sort here over
// something with a better worst case.
func (s *sorter[T, K]) insertionSort(r Range) {
	for i := r.Start + 1; i < r.End; i++ {
		for j := i; j > r.Start && s.lt(j, j-1); j-- {
			s.swap(j, j-1)
		}
	}
}

// levelBuffers describes the (at most two) internal buffers borrowed for
// one merge level, and the pair that donated them -- needed so that every
// other pair at this level knows not to touch that pair's buffer area, and
// so the donating pair knows to exclude it from its own merge.
type levelBuffers struct {
	active       bool
	used         bool
	block        int
	sourceA      Range
	sourceB      Range
	buffer1      Range
	buffer2      Range
	pull1, pull2 pull
}

// extractLevelBuffers borrows up to two ranges of unique values from the
// level's first (A, B) pair: buffer1 (pulled from the front of A, excluded
// from every pair's merge and reinserted once the level is done) and, unless
// the block size already fits the cache outright, buffer2 (scratch space for
// MergeInternal, pulled from the back of B). Every other pair in the level
// reuses these same two ranges untouched.
func (s *sorter[T, K]) extractLevelBuffers(it *Iterator, length int) levelBuffers {
	block := isqrt(length)
	if block < 1 {
		block = 1
	}
	bufferSize := length/block + 1

	it.Begin()
	if it.Finished() {
		return levelBuffers{}
	}
	A := it.NextRange()
	if it.Finished() {
		return levelBuffers{} // no B to pair A with at this level; nothing to borrow buffers for.
	}
	B := it.NextRange()

	idxA := s.findUniqueForward(A, bufferSize)
	if len(idxA) == 0 {
		return levelBuffers{}
	}
	p1 := s.pullToFront(A, idxA)

	lb := levelBuffers{
		active:  true,
		block:   block,
		sourceA: A,
		sourceB: B,
		buffer1: p1.bufferRange(),
		pull1:   p1,
	}

	if block > CacheSize {
		remB := NewRange(B.Start, B.End)
		idxB := s.findUniqueBackward(remB, bufferSize)
		if len(idxB) > 0 {
			p2 := s.pullToBack(remB, idxB)
			lb.buffer2 = p2.bufferRange()
			lb.pull2 = p2
		}
	}
	return lb
}

// strip removes lb's buffer area from A and B when (A, B) is the pair that
// donated it, leaving the sorted remainder each pair's merge should
// actually operate on. Every other pair in the level is returned
// unchanged.
func (s *sorter[T, K]) stripBuffers(A, B Range, lb levelBuffers) (Range, Range) {
	if !lb.active || A != lb.sourceA || B != lb.sourceB {
		return A, B
	}
	if lb.pull1.count > 0 {
		A = NewRange(lb.buffer1.End, A.End)
	}
	if lb.pull2.count > 0 {
		B = NewRange(B.Start, lb.buffer2.Start)
	}
	return A, B
}

// restoreLevelBuffers scatters both buffers back into the array once every
// pair in the level has been merged, per spec.md's Restore step: buffer2 is
// re-sorted first (it may have been permuted by use as MergeInternal
// scratch), then each buffer is merged back into the now-fully-sorted
// remainder of the pair that donated it, back to front so that each merge
// sees an already-contiguous, already-sorted neighbor.
func (s *sorter[T, K]) restoreLevelBuffers(lb levelBuffers) {
	if !lb.active {
		return
	}
	if lb.pull2.count > 0 {
		s.insertionSort(lb.buffer2)
		mid := NewRange(lb.buffer1.End, lb.buffer2.Start)
		s.restore(lb.pull2, mid)
	}
	if lb.pull1.count > 0 {
		end := lb.sourceB.End
		if lb.pull2.count > 0 {
			end = lb.buffer2.End
		}
		mid := NewRange(lb.buffer1.End, end)
		s.restore(lb.pull1, mid)
	}
}
