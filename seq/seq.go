package seq

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// maxChunkPrealloc caps the capacity Partition reserves up front; larger
// chunks grow through append.
const maxChunkPrealloc = 64

// ─────────────────────────────────────────────────────────────────────────────
// Partitioning
// ─────────────────────────────────────────────────────────────────────────────

// Partition lazily splits s into chunks of size consecutive elements.
// The last chunk holds the remainder and may be shorter. Every yielded chunk
// is a new slice that the caller may keep.
//
// Partition panics if size <= 0.
//
//	for chunk := range seq.Partition(slices.Values([]int{0, 1, 2, 3, 4}), 2) {
//	    fmt.Println(chunk) // [0 1], [2 3], [4]
//	}
func Partition[T any](s iter.Seq[T], size int) iter.Seq[[]T] {
	if size <= 0 {
		panic(errors.Wrapf(ErrInvalidSize, "partition size %d", size))
	}

	// size bounds the chunk length, not the allocation
	prealloc := min(size, maxChunkPrealloc)

	return func(yield func([]T) bool) {
		chunk := make([]T, 0, prealloc)
		for item := range s {
			chunk = append(chunk, item)
			if len(chunk) < size {
				continue
			}
			if !yield(chunk) {
				return
			}
			chunk = make([]T, 0, prealloc)
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Counting
// ─────────────────────────────────────────────────────────────────────────────

// Count consumes s and returns the number of elements it produced.
// It keeps no elements. Count never returns on an infinite sequence.
func Count[T any](s iter.Seq[T]) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Count2 is [Count] for two-value sequences.
func Count2[K, V any](s iter.Seq2[K, V]) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Keying
// ─────────────────────────────────────────────────────────────────────────────

// KeyDict builds a map from key(item) to item.
// When several items share a key the last one wins.
//
//	seq.KeyDict(slices.Values([]string{"hello", "world"}),
//	    func(s string) byte { return s[0] }) // → map[h:hello w:world]
func KeyDict[T any, K comparable](s iter.Seq[T], key func(T) K) map[K]T {
	out := make(map[K]T)
	for item := range s {
		out[key(item)] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Interleaving
// ─────────────────────────────────────────────────────────────────────────────

// RoundRobin lazily takes one element from each sequence in turn.
// An exhausted sequence leaves the rotation for good; the others keep their
// relative order. The result ends when every input is exhausted.
//
//	RoundRobin("ABC", "D", "EF") → A D E B F C
func RoundRobin[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		nexts := make([]func() (T, bool), 0, len(seqs))
		stops := make([]func(), 0, len(seqs))
		defer func() {
			for _, stop := range stops {
				stop()
			}
		}()
		for _, s := range seqs {
			next, stop := iter.Pull(s)
			nexts = append(nexts, next)
			stops = append(stops, stop)
		}

		for len(nexts) > 0 {
			live := nexts[:0]
			for _, next := range nexts {
				item, ok := next()
				if !ok {
					continue
				}
				live = append(live, next)
				if !yield(item) {
					return
				}
			}
			nexts = live
		}
	}
}
