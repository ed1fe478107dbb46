package blocksort

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNetworkSortMatchesLength(t *testing.T) {
	for length := 0; length <= 8; length++ {
		length := length
		t.Run("", func(t *testing.T) {
			sliceGenerator := gen.SliceOfN(length, gen.IntRange(0, 4))
			properties := gopter.NewProperties(nil)

			properties.Property("networkSort produces the sorted order", prop.ForAll(func(input []int) bool {
				s := newSorter(append([]int(nil), input...), func(v int) int { return v }, cmpInt)
				s.networkSort(NewRange(0, len(s.a)))

				want := append([]int(nil), input...)
				sort.Ints(want)
				for i := range want {
					if s.a[i] != want[i] {
						return false
					}
				}
				return true
			}, sliceGenerator))

			properties.TestingRun(t)
		})
	}
}

func TestNetworkSortIsStable(t *testing.T) {
	for length := 2; length <= 8; length++ {
		length := length
		t.Run("", func(t *testing.T) {
			keyGenerator := gen.IntRange(0, 2)
			sliceGenerator := gen.SliceOfN(length, keyGenerator)
			properties := gopter.NewProperties(nil)

			properties.Property("equal keys keep their relative order", prop.ForAll(func(keys []int) bool {
				input := make([]keyed, len(keys))
				for i, k := range keys {
					input[i] = keyed{key: k, seq: i}
				}
				s := newSorter(input, func(k keyed) int { return k.key }, cmpInt)
				s.networkSort(NewRange(0, len(s.a)))

				lastSeqByKey := map[int]int{}
				for _, e := range s.a {
					if prev, ok := lastSeqByKey[e.key]; ok && e.seq < prev {
						return false
					}
					lastSeqByKey[e.key] = e.seq
				}
				return true
			}, sliceGenerator))

			properties.TestingRun(t)
		})
	}
}
