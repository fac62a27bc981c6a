package arr

import (
	"cmp"
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/hasbyte1/go-iter-utils/rng"
	"github.com/hasbyte1/go-iter-utils/seq"
)

// Pair holds two values of possibly different types.
// Pair[T, float64] is the (item, weight) input of [WeightedSample].
type Pair[A, B any] struct {
	First  A
	Second B
}

// ─────────────────────────────────────────────────────────────────────────────
// Keying & deduplication
// ─────────────────────────────────────────────────────────────────────────────

// KeyBy creates a map[K]T from items keyed by fn.
// When multiple items share the same key, the last one wins.
func KeyBy[T any, K comparable](items []T, fn func(T) K) map[K]T {
	return lo.KeyBy(items, fn)
}

// Unique returns the distinct values of items in ascending order.
// opts may set a custom comparator or descending order.
func Unique[T cmp.Ordered](items []T, opts ...seq.UniqueOptions[T]) []T {
	return seq.Uniquify(slices.Values(items), opts...)
}

// UniqueBy keeps one element per key, the last one seen, sorted by key
// unless opts say otherwise.
func UniqueBy[T any, K cmp.Ordered](items []T, fn func(T) K, opts ...seq.UniqueOptions[T]) []T {
	return seq.UniquifyBy(slices.Values(items), fn, opts...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
// Returns an empty result when size <= 0 or items is empty.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for chunk := range seq.Partition(slices.Values(items), size) {
		chunks = append(chunks, chunk)
	}
	return chunks
}

// GroupN lazily yields n-element groups from consecutive, non-overlapping
// windows of items (element i of group k is items[k*n+i]), followed by one
// shorter group holding the last len(items)%n elements when that is non-zero.
// Every group is a copy.
//
// GroupN panics if n <= 0.
func GroupN[T any](items []T, n int) iter.Seq[[]T] {
	if n <= 0 {
		panic(errors.Wrapf(ErrInvalidSize, "group size %d", n))
	}

	return func(yield func([]T) bool) {
		full := len(items) - len(items)%n
		for k := 0; k < full; k += n {
			if !yield(slices.Clone(items[k : k+n])) {
				return
			}
		}
		if rest := len(items) % n; rest > 0 {
			yield(slices.Clone(items[len(items)-rest:]))
		}
	}
}

// Interleave merges the slices round-robin: the first element of each, then
// the second of each, and so on, skipping slices that have run out.
//
//	Interleave([]string{"A", "B", "C"}, []string{"D"}, []string{"E", "F"})
//	// → [A D E B F C]
func Interleave[T any](collections ...[]T) []T {
	return lo.Interleave(collections...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T, src ...rng.Source) []T {
	r := rng.Pick(src...)
	out := slices.Clone(items)
	// Source has no Shuffle, so Fisher–Yates over IntN
	for i := len(out) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Random returns n randomly selected items (without replacement).
// If n >= len(items), a shuffled copy of all items is returned.
func Random[T any](items []T, n int, src ...rng.Source) []T {
	s := Shuffle(items, src...)
	if n >= len(s) {
		return s
	}
	return s[:max(n, 0)]
}

// OrderedInsert inserts insert[i] into target at position
// onePerN*i + offset, with offset drawn uniformly from [0, onePerN) for each
// element. Elements are inserted one after another, so every insertion
// shifts the positions that follow it: insert[i] lands inside its own slot
// of width onePerN and the inserted elements keep their relative order.
// Positions past the end of target append.
//
// Like append, OrderedInsert may reuse target's backing array; always use
// the returned slice. A nil or empty insert returns target unchanged.
func OrderedInsert[S ~[]E, E any](target S, insert []E, onePerN int, src ...rng.Source) (S, error) {
	if len(insert) == 0 {
		return target, nil
	}
	if onePerN <= 0 {
		return target, errors.Wrapf(ErrInvalidSize, "slot width %d", onePerN)
	}

	r := rng.Pick(src...)
	for i, elem := range insert {
		target = slices.Insert(target, slotPosition(i, onePerN, len(target), r), elem)
	}
	return target, nil
}

// slotPosition returns min(onePerN*i + offset, size) without overflowing
// for large onePerN.
func slotPosition(i, onePerN, size int, r rng.Source) int {
	if i > 0 && onePerN > size/i {
		return size
	}
	base := onePerN * i
	if offset := r.IntN(onePerN); offset <= size-base {
		return base + offset
	}
	return size
}

// WeightedSample draws size items without replacement, each pair's First
// being drawn with probability proportional to its Second (the weight).
// The result is ordered by sampling priority. See [seq.WeightedSample] for
// the algorithm and error conditions.
func WeightedSample[T any](pairs []Pair[T, float64], size int, src ...rng.Source) ([]T, error) {
	return seq.WeightedSample(func(yield func(T, float64) bool) {
		for _, p := range pairs {
			if !yield(p.First, p.Second) {
				return
			}
		}
	}, size, src...)
}
