package seq

import (
	"iter"
	"math"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/hasbyte1/go-iter-utils/rng"
)

// keyed is an item with its sampling priority.
type keyed[T any] struct {
	item     T
	priority float64
}

// WeightedSample draws size items from pairs without replacement. The chance
// of an item being drawn is proportional to its weight.
//
// Each item gets the priority ln(U)/weight for an independent U uniform on
// (0, 1]; the size highest priorities win (Efraimidis–Spirakis exponential
// clocks). The result is ordered by priority, highest first. If size is at
// least the number of pairs, every item is returned.
//
// The input is consumed in a single pass holding at most size candidates.
// Weights must be > 0: a zero, negative or NaN weight yields
// [ErrNonPositiveWeight], a negative size yields [ErrInvalidSize]. Nothing is
// returned alongside an error.
//
//	picks, err := seq.WeightedSample(maps.All(map[string]float64{
//	    "common": 10, "rare": 1,
//	}), 1)
func WeightedSample[T any](pairs iter.Seq2[T, float64], size int, src ...rng.Source) ([]T, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "sample size %d", size)
	}
	r := rng.Pick(src...)

	// min-heap on priority: the root is the weakest kept candidate
	heap := binaryheap.NewWith(func(a, b interface{}) int {
		pa, pb := a.(keyed[T]).priority, b.(keyed[T]).priority
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		default:
			return 0
		}
	})

	index := 0
	for item, weight := range pairs {
		if !(weight > 0) {
			return nil, errors.Wrapf(ErrNonPositiveWeight, "item %d has weight %v", index, weight)
		}
		index++

		candidate := keyed[T]{item: item, priority: math.Log(1-r.Float64()) / weight}
		if size == 0 {
			continue
		}
		if heap.Size() < size {
			heap.Push(candidate)
			continue
		}
		if root, _ := heap.Peek(); candidate.priority > root.(keyed[T]).priority {
			heap.Pop()
			heap.Push(candidate)
		}
	}

	out := make([]T, 0, heap.Size())
	for {
		v, ok := heap.Pop()
		if !ok {
			break
		}
		out = append(out, v.(keyed[T]).item)
	}
	slices.Reverse(out)
	return out, nil
}

// Pairs adapts parallel item and weight slices to the input of
// [WeightedSample]. It stops at the shorter slice.
func Pairs[T any](items []T, weights []float64) iter.Seq2[T, float64] {
	return func(yield func(T, float64) bool) {
		n := min(len(items), len(weights))
		for i := 0; i < n; i++ {
			if !yield(items[i], weights[i]) {
				return
			}
		}
	}
}
