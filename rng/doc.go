// Package rng provides the pseudorandom source used by the randomized
// helpers in [github.com/hasbyte1/go-iter-utils/seq] and
// [github.com/hasbyte1/go-iter-utils/arr].
//
// Every randomized helper accepts an optional trailing source argument:
//
//	arr.Shuffle(items)                 // process-wide source
//	arr.Shuffle(items, rng.New(42))    // reproducible order
//
// [Source] is satisfied by *math/rand/v2.Rand, so any generator from the
// standard library (PCG, ChaCha8) can be passed directly.
package rng
