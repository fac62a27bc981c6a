// Package seq provides lazy, generic helpers for Go 1.23+ iterators
// ([iter.Seq] and [iter.Seq2]).
//
// # Laziness
//
// Functions that return an [iter.Seq] ([Partition], [RoundRobin]) do no work
// until the result is ranged over. They visit each input element at most
// once and stop pulling from their inputs as soon as the consumer breaks out
// of the loop:
//
//	for chunk := range seq.Partition(slices.Values(ids), 100) {
//	    if err := store.DeleteMany(ctx, chunk); err != nil {
//	        return err
//	    }
//	}
//
// The returned sequences are single-use whenever their inputs are.
//
// # Consuming helpers
//
// [Count], [KeyDict], [Uniquify] and [WeightedSample] consume their input
// fully. [Count] and [WeightedSample] keep bounded memory (constant and
// O(size) respectively), independent of the input length.
//
// # Preconditions
//
// Lazy constructors panic at call time on a non-positive size, before any
// element is produced. Consuming helpers return an error instead:
//
//	sample, err := seq.WeightedSample(weights, 3)
//	if errors.Is(err, seq.ErrNonPositiveWeight) {
//	    // a weight was zero, negative or NaN
//	}
package seq
