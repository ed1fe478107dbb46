package blocksort

// Iterator produces a sequence of adjacent, equal-sized-to-within-one
// ranges that partition [0, size) -- one level of a bottom-up merge sort --
// without requiring size to be a power of two. Each call to NextLevel
// doubles the nominal slice length; the fractional remainder is tracked
// with a small Bresenham-style accumulator so that the union of ranges at
// every level is always exactly [0, size).
type Iterator struct {
	size        int
	decimal     int
	numerator   int
	decimalStep int
	numerStep   int
	denominator int
}

// NewIterator builds an iterator over [0, size) whose first level produces
// ranges of nominal length minLevel (the base-case slice length).
func NewIterator(size, minLevel int) *Iterator {
	it := &Iterator{size: size}
	powerOfTwo := floorPowerOfTwo(size)
	it.denominator = powerOfTwo / minLevel
	if it.denominator == 0 {
		it.denominator = 1
	}
	it.decimalStep = size / it.denominator
	it.numerStep = size % it.denominator
	it.Begin()
	return it
}

func floorPowerOfTwo(n int) int {
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}

// Begin resets the cursor to the start of the array.
func (it *Iterator) Begin() {
	it.decimal = 0
	it.numerator = 0
}

// NextRange emits the next range at the current level and advances past it.
func (it *Iterator) NextRange() Range {
	start := it.decimal
	it.decimal += it.decimalStep
	it.numerator += it.numerStep
	if it.numerator >= it.denominator {
		it.numerator -= it.denominator
		it.decimal++
	}
	return NewRange(start, it.decimal)
}

// Finished reports whether the cursor has covered [0, size).
func (it *Iterator) Finished() bool {
	return it.decimal >= it.size
}

// NextLevel doubles the nominal slice length for the next pass. It returns
// false once the nominal length would cover the whole array, meaning the
// sort is complete and no further levels are needed.
func (it *Iterator) NextLevel() bool {
	it.decimalStep += it.decimalStep
	it.numerStep += it.numerStep
	if it.numerStep >= it.denominator {
		it.numerStep -= it.denominator
		it.decimalStep++
	}
	return it.decimalStep < it.size
}

// Length returns the current level's nominal slice length.
func (it *Iterator) Length() int {
	return it.decimalStep
}
