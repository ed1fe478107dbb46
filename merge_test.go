package blocksort

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func mergeCase(t *testing.T, name string, merge func(s *sorter[int, int], A, B Range)) {
	t.Helper()
	aGen := gen.SliceOf(gen.IntRange(0, 50))
	bGen := gen.SliceOf(gen.IntRange(0, 50))

	properties := gopter.NewProperties(nil)
	properties.Property(name, prop.ForAll(func(a, b []int) bool {
		sort.Ints(a)
		sort.Ints(b)

		combined := append(append([]int(nil), a...), b...)
		s := newSorter(combined, func(v int) int { return v }, cmpInt)

		A := NewRange(0, len(a))
		B := NewRange(len(a), len(a)+len(b))
		merge(s, A, B)

		want := append(append([]int(nil), a...), b...)
		sort.Ints(want)
		for i := range want {
			if s.a[i] != want[i] {
				return false
			}
		}
		return true
	}, aGen, bGen))
	properties.TestingRun(t)
}

func TestMergeInPlace(t *testing.T) {
	mergeCase(t, "MergeInPlace merges two sorted runs", func(s *sorter[int, int], A, B Range) {
		s.mergeInPlace(A, B, nil)
	})
}

func TestMergeInPlaceWithBuffer2Offered(t *testing.T) {
	mergeCase(t, "MergeInPlace merges two sorted runs when a buffer2 covering A is offered", func(s *sorter[int, int], A, B Range) {
		buf := NewRange(B.End, B.End+A.Length())
		s.a = append(s.a, make([]int, A.Length())...)
		lb := &levelBuffers{
			active:  true,
			block:   1,
			pull2:   pull{count: maxInt(A.Length(), 1)},
			buffer2: buf,
		}
		s.mergeInPlace(A, B, lb)
		s.a = s.a[:buf.Start]
	})
}

func TestMergeExternal(t *testing.T) {
	mergeCase(t, "MergeExternal merges two sorted runs", func(s *sorter[int, int], A, B Range) {
		if A.Length() > CacheSize {
			return
		}
		copy(s.cache[:A.Length()], s.a[A.Start:A.End])
		s.mergeExternal(A, B)
	})
}

func TestMergeInternal(t *testing.T) {
	mergeCase(t, "MergeInternal merges two sorted runs via a swapped buffer", func(s *sorter[int, int], A, B Range) {
		buf := NewRange(B.End, B.End+A.Length())
		s.a = append(s.a, make([]int, A.Length())...)
		s.blockSwap(buf.Start, A.Start, A.Length())
		s.mergeInternal(A, B, buf)
		s.a = s.a[:buf.Start]
	})
}

func TestMergeIntoIsStable(t *testing.T) {
	keyGen := gen.IntRange(0, 3)
	aGen := gen.SliceOf(keyGen)
	bGen := gen.SliceOf(keyGen)

	properties := gopter.NewProperties(nil)
	properties.Property("mergeInto keeps A before B on ties", prop.ForAll(func(aKeys, bKeys []int) bool {
		a := make([]keyed, len(aKeys))
		for i, k := range aKeys {
			a[i] = keyed{key: k, seq: i}
		}
		sort.Slice(a, func(i, j int) bool { return a[i].key < a[j].key })

		b := make([]keyed, len(bKeys))
		for i, k := range bKeys {
			b[i] = keyed{key: k, seq: 1000 + i}
		}
		sort.Slice(b, func(i, j int) bool { return b[i].key < b[j].key })

		combined := append(append([]keyed(nil), a...), b...)
		s := newSorter(combined, func(e keyed) int { return e.key }, cmpInt)
		dst := make([]keyed, len(a)+len(b))
		s.mergeInto(NewRange(0, len(a)), NewRange(len(a), len(a)+len(b)), dst)

		lastSeqByKey := map[int]int{}
		for _, e := range dst {
			if prev, ok := lastSeqByKey[e.key]; ok && e.seq < prev {
				return false
			}
			lastSeqByKey[e.key] = e.seq
		}
		return true
	}, aGen, bGen))
	properties.TestingRun(t)
}
