package blocksort

// tinySort stably sorts a range of length 0-3 with at most three
// comparisons -- small enough that a general merge would be pure overhead.
func (s *sorter[T, K]) tinySort(r Range) {
	switch r.Length() {
	case 2:
		if s.lt(r.Start+1, r.Start) {
			s.swap(r.Start, r.Start+1)
		}
	case 3:
		if s.lt(r.Start+1, r.Start) {
			s.swap(r.Start, r.Start+1)
		}
		if s.lt(r.Start+2, r.Start+1) {
			s.swap(r.Start+1, r.Start+2)
			if s.lt(r.Start+1, r.Start) {
				s.swap(r.Start, r.Start+1)
			}
		}
	}
}

// smallSortNetworks holds the published (Bose-Nelson family) optimal
// compare-exchange sequences for ranges of length 4-8, referenced by
// spec.md's design notes on "macro-expanded compare-exchange templates".
// Each pair {x, y} is a candidate swap of positions x and y relative to the
// start of the range being sorted.
var smallSortNetworks = map[int][][2]int{
	4: {
		{0, 1}, {2, 3},
		{0, 2}, {1, 3},
		{1, 2},
	},
	5: {
		{0, 1}, {3, 4},
		{2, 4},
		{2, 3}, {1, 4},
		{0, 3},
		{0, 2}, {1, 3},
		{1, 2},
	},
	6: {
		{1, 2}, {4, 5},
		{0, 2}, {3, 5},
		{0, 1}, {3, 4}, {2, 5},
		{0, 3}, {1, 4},
		{2, 4}, {1, 3},
		{2, 3},
	},
	7: {
		{1, 2}, {3, 4}, {5, 6},
		{0, 2}, {3, 5}, {4, 6},
		{0, 1}, {4, 5}, {2, 6},
		{0, 4}, {1, 5},
		{0, 3}, {2, 5},
		{1, 3}, {2, 4},
		{2, 3},
	},
	8: {
		{0, 1}, {2, 3}, {4, 5}, {6, 7},
		{0, 2}, {1, 3}, {4, 6}, {5, 7},
		{1, 2}, {5, 6}, {0, 4}, {3, 7},
		{1, 5}, {2, 6},
		{1, 4}, {3, 6},
		{2, 4}, {3, 5},
		{3, 4},
	},
}

// networkSort sorts a range of length 4-8 with its fixed comparator
// network. The network itself is not stable (it was designed to minimize
// comparisons, not preserve input order among equal elements), so an
// 8-slot shadow array tracks each element's original position within the
// range; the swap condition additionally fires whenever two elements
// compare equal but are out of their original relative order, which forces
// the stable outcome at the cost of at most one extra comparison per swap
// candidate.
func (s *sorter[T, K]) networkSort(r Range) {
	network, ok := smallSortNetworks[r.Length()]
	if !ok {
		s.tinySort(r)
		return
	}
	var order [8]int
	for i := range order {
		order[i] = i
	}
	for _, pair := range network {
		x, y := pair[0], pair[1]
		ax, ay := r.Start+x, r.Start+y
		if s.lt(ay, ax) || (order[x] > order[y] && !s.lt(ax, ay)) {
			s.swap(ax, ay)
			order[x], order[y] = order[y], order[x]
		}
	}
}
