// Package arr provides the slice-facing counterparts of the lazy helpers in
// [github.com/hasbyte1/go-iter-utils/seq], plus the operations that need
// random access to their input.
//
// # Slice helpers
//
// All helpers are generic and operate on plain []T values, no wrapper type
// required:
//
//	chunks := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)             // → [[1 2] [3 4] [5]]
//	words  := arr.Unique([]string{"b", "a", "b"})             // → [a b]
//	mixed  := arr.Interleave([]int{1, 2, 3}, []int{10})       // → [1 10 2 3]
//
// # Random access
//
// [GroupN] reads its trailing remainder by slicing, so it takes a slice
// rather than an iterator. For streams use [seq.Partition], which yields the
// same groups.
//
// # Randomised helpers
//
// [Shuffle], [Random], [OrderedInsert] and [WeightedSample] take an optional
// trailing [rng.Source]. Pass a seeded source (rng.New(seed)) for
// reproducible results; omit it to use the process-wide source.
//
//	playlist, err := arr.OrderedInsert(tracks, adverts, 4)
//	// one advert somewhere in each run of four slots, adverts kept in order
package arr
