package seq_test

import (
	"slices"
	"testing"

	"github.com/hasbyte1/go-iter-utils/rng"
	"github.com/hasbyte1/go-iter-utils/seq"
)

func BenchmarkPartition(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for range seq.Partition(intRange(10_000), 64) {
		}
	}
}

func BenchmarkUniquify(b *testing.B) {
	items := make([]int, 10_000)
	for i := range items {
		items[i] = (i * 7919) % 2_500
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq.Uniquify(slices.Values(items))
	}
}

func BenchmarkWeightedSample(b *testing.B) {
	items, weights := equalWeights(10_000)
	src := rng.New(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := seq.WeightedSample(seq.Pairs(items, weights), 100, src); err != nil {
			b.Fatal(err)
		}
	}
}
