package blocksort

// reverse reverses the elements of r in place.
func (s *sorter[T, K]) reverse(r Range) {
	i, j := r.Start, r.End-1
	for i < j {
		s.swap(i, j)
		i++
		j--
	}
}

// blockSwap swaps the size elements starting at start1 with the size
// elements starting at start2. The two ranges must be disjoint.
func (s *sorter[T, K]) blockSwap(start1, start2, size int) {
	for i := 0; i < size; i++ {
		s.swap(start1+i, start2+i)
	}
}

// rotate rotates r left by amount (amount may be negative, meaning rotate
// right by -amount), stably. When one side of the split fits in the cache
// it is staged there and shifted in one pass; otherwise it falls back to
// the classic three-reversal rotation, which is always correct and always
// O(1) auxiliary memory.
func (s *sorter[T, K]) rotate(amount int, r Range) {
	if r.Length() == 0 {
		return
	}
	var split int
	if amount >= 0 {
		split = r.Start + amount
	} else {
		split = r.End + amount
	}
	if split <= r.Start {
		split = r.Start
	}
	if split >= r.End {
		split = r.End
	}
	range1 := NewRange(r.Start, split)
	range2 := NewRange(split, r.End)

	if range1.Length() <= range2.Length() && range1.Length() <= CacheSize {
		copy(s.cache[:range1.Length()], s.a[range1.Start:range1.End])
		copy(s.a[range1.Start:range1.Start+range2.Length()], s.a[range2.Start:range2.End])
		copy(s.a[range1.Start+range2.Length():r.End], s.cache[:range1.Length()])
		return
	}
	if range2.Length() < range1.Length() && range2.Length() <= CacheSize {
		copy(s.cache[:range2.Length()], s.a[range2.Start:range2.End])
		copy(s.a[range1.Start+range2.Length():r.End], s.a[range1.Start:range1.End])
		copy(s.a[range1.Start:range1.Start+range2.Length()], s.cache[:range2.Length()])
		return
	}

	s.reverse(range1)
	s.reverse(range2)
	s.reverse(r)
}

// binaryFirst returns the lower bound of value within r: the smallest index
// i in [r.Start, r.End) whose element does not compare less than value, or
// r.End if every element does.
func (s *sorter[T, K]) binaryFirst(r Range, value T) int {
	if r.Start >= r.End {
		return r.End
	}
	start, end := r.Start, r.End-1
	for start < end {
		mid := start + (end-start)/2
		if s.valLt(mid, value) {
			start = mid + 1
		} else {
			end = mid
		}
	}
	if start == r.End-1 && s.valLt(start, value) {
		start++
	}
	return start
}

// binaryLast returns the upper bound of value within r: the smallest index
// i such that value compares strictly less than every element from i
// onward.
func (s *sorter[T, K]) binaryLast(r Range, value T) int {
	if r.Start >= r.End {
		return r.End
	}
	start, end := r.Start, r.End-1
	for start < end {
		mid := start + (end-start)/2
		if !s.ltVal(value, mid) {
			start = mid + 1
		} else {
			end = mid
		}
	}
	if start == r.End-1 && !s.ltVal(value, start) {
		start++
	}
	return start
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// findFirstForward locates the lower bound of value within r, same as
// binaryFirst, but first skips forward in strides of length/unique to
// narrow the binary search bracket -- cheaper than a full binary search
// when the caller knows value is likely to be found close to the start.
func (s *sorter[T, K]) findFirstForward(r Range, value T, unique int) int {
	if r.Length() == 0 {
		return r.Start
	}
	skip := maxInt(r.Length()/unique, 1)
	index := r.Start + skip
	for s.valLt(index-1, value) {
		if index >= r.End-skip {
			return s.binaryFirst(NewRange(index, r.End), value)
		}
		index += skip
	}
	return s.binaryFirst(NewRange(index-skip, index), value)
}

// findFirstBackward locates the lower bound of value within r, skipping
// backward from the end of the range.
func (s *sorter[T, K]) findFirstBackward(r Range, value T, unique int) int {
	if r.Length() == 0 {
		return r.Start
	}
	skip := maxInt(r.Length()/unique, 1)
	index := r.End - skip
	for index > r.Start && !s.valLt(index-1, value) {
		if index < r.Start+skip {
			return s.binaryFirst(NewRange(r.Start, index), value)
		}
		index -= skip
	}
	return s.binaryFirst(NewRange(index, index+skip), value)
}

// findLastForward locates the upper bound of value within r, skipping
// forward from the start of the range.
func (s *sorter[T, K]) findLastForward(r Range, value T, unique int) int {
	if r.Length() == 0 {
		return r.Start
	}
	skip := maxInt(r.Length()/unique, 1)
	index := r.Start + skip
	for !s.ltVal(value, index-1) {
		if index >= r.End-skip {
			return s.binaryLast(NewRange(index, r.End), value)
		}
		index += skip
	}
	return s.binaryLast(NewRange(index-skip, index), value)
}

// findLastBackward locates the upper bound of value within r, skipping
// backward from the end of the range.
func (s *sorter[T, K]) findLastBackward(r Range, value T, unique int) int {
	if r.Length() == 0 {
		return r.Start
	}
	skip := maxInt(r.Length()/unique, 1)
	index := r.End - skip
	for index > r.Start && s.ltVal(value, index-1) {
		if index < r.Start+skip {
			return s.binaryLast(NewRange(r.Start, index), value)
		}
		index -= skip
	}
	return s.binaryLast(NewRange(index, index+skip), value)
}
